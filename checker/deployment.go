package checker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	waitPollInterval = 10 * time.Second
	slowThreshold    = 2 * time.Second
)

// DeploymentValidator probes a freshly deployed instance over HTTP and
// reports whether the deployment is serving correctly.
type DeploymentValidator struct {
	baseURL string
	client  *http.Client
}

// NewDeploymentValidator targets the given base URL, e.g. "https://api.example.com".
func NewDeploymentValidator(baseURL string) *DeploymentValidator {
	return &DeploymentValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WaitForDeployment polls the health endpoint at a fixed interval until it
// answers 200 or the timeout elapses. There is no backoff; deploys settle on
// the order of minutes and a steady cadence keeps the logs readable.
func (v *DeploymentValidator) WaitForDeployment(timeout time.Duration) Result {
	deadline := time.Now().Add(timeout)
	start := time.Now()
	for {
		resp, err := v.client.Get(v.baseURL + "/health")
		if err == nil {
			drain(resp)
			if resp.StatusCode == http.StatusOK {
				return pass("deployment_ready", "health endpoint responding", time.Since(start))
			}
		}
		if time.Now().After(deadline) {
			return fail("deployment_ready",
				fmt.Sprintf("health endpoint not ready after %s", timeout), time.Since(start))
		}
		time.Sleep(waitPollInterval)
	}
}

// ValidateCoreEndpoints checks the endpoints every deployment must serve.
func (v *DeploymentValidator) ValidateCoreEndpoints() []Result {
	var results []Result
	results = append(results, v.expectStatus("health_endpoint", http.MethodGet, "/health", nil, http.StatusOK))
	results = append(results, v.expectStatus("unknown_route_404", http.MethodGet, "/definitely-not-a-route", nil, http.StatusNotFound))
	return results
}

// ValidateGDPRCompliance checks that the privacy endpoints are mounted and
// that the protected ones actually reject unauthenticated requests.
func (v *DeploymentValidator) ValidateGDPRCompliance() []Result {
	var results []Result
	results = append(results, v.expectStatus("gdpr_privacy_policy", http.MethodGet, "/gdpr/privacy-policy", nil, http.StatusOK))
	results = append(results, v.expectStatus("gdpr_export_requires_auth", http.MethodGet, "/gdpr/export-data", nil, http.StatusUnauthorized))
	results = append(results, v.expectStatus("gdpr_summary_requires_auth", http.MethodGet, "/gdpr/data-summary", nil, http.StatusUnauthorized))
	return results
}

// ValidateFeedbackEndpoint checks the minimal feedback endpoint rejects an
// out-of-range rating instead of storing it.
func (v *DeploymentValidator) ValidateFeedbackEndpoint() []Result {
	body := map[string]any{"content_id": "deploy-check", "rating": 0}
	return []Result{
		v.expectStatus("feedback_rejects_invalid_rating", http.MethodPost, "/feedback-minimal", body, http.StatusBadRequest),
	}
}

// ValidatePerformance measures health endpoint latency against the slow
// threshold.
func (v *DeploymentValidator) ValidatePerformance() []Result {
	start := time.Now()
	resp, err := v.client.Get(v.baseURL + "/health")
	elapsed := time.Since(start)
	if err != nil {
		return []Result{fail("response_time", err.Error(), elapsed)}
	}
	drain(resp)
	if resp.StatusCode != http.StatusOK {
		return []Result{fail("response_time",
			fmt.Sprintf("health returned %d", resp.StatusCode), elapsed)}
	}
	if elapsed > slowThreshold {
		return []Result{fail("response_time",
			fmt.Sprintf("health responded in %s, threshold %s", elapsed, slowThreshold), elapsed)}
	}
	return []Result{pass("response_time", fmt.Sprintf("health responded in %s", elapsed), elapsed)}
}

// RunFullValidation runs every probe group. Groups never short-circuit: a
// failing group still lets the rest run so the report covers everything.
func (v *DeploymentValidator) RunFullValidation(waitTimeout time.Duration) *Report {
	var results []Result
	results = append(results, v.WaitForDeployment(waitTimeout))
	results = append(results, v.ValidateCoreEndpoints()...)
	results = append(results, v.ValidateGDPRCompliance()...)
	results = append(results, v.ValidateFeedbackEndpoint()...)
	results = append(results, v.ValidatePerformance()...)
	return NewReport(v.baseURL, results)
}

func (v *DeploymentValidator) expectStatus(name, method, path string, body any, want int) Result {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fail(name, err.Error(), 0)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, v.baseURL+path, reader)
	if err != nil {
		return fail(name, err.Error(), 0)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	start := time.Now()
	resp, err := v.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return fail(name, err.Error(), elapsed)
	}
	drain(resp)
	if resp.StatusCode != want {
		return fail(name, fmt.Sprintf("%s %s returned %d, want %d", method, path, resp.StatusCode, want), elapsed)
	}
	return pass(name, fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode), elapsed)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
}
