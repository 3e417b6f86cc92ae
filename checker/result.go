// Package checker implements the operational verification tools run against a
// live deployment: a post-deploy validator and a production readiness checker.
package checker

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Probe statuses.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Result is the outcome of one probe.
type Result struct {
	TestName       string  `json:"test_name"`
	Status         string  `json:"status"`
	Passed         bool    `json:"passed"`
	Details        string  `json:"details"`
	ResponseTimeMS float64 `json:"response_time_ms"`
	Timestamp      float64 `json:"timestamp"`
}

func pass(name, details string, elapsed time.Duration) Result {
	return newResult(name, true, details, elapsed)
}

func fail(name, details string, elapsed time.Duration) Result {
	return newResult(name, false, details, elapsed)
}

func newResult(name string, passed bool, details string, elapsed time.Duration) Result {
	status := StatusFail
	if passed {
		status = StatusPass
	}
	return Result{
		TestName:       name,
		Status:         status,
		Passed:         passed,
		Details:        details,
		ResponseTimeMS: float64(elapsed.Microseconds()) / 1000.0,
		Timestamp:      float64(time.Now().UnixNano()) / 1e9,
	}
}

// Report aggregates every probe outcome of one checker run.
type Report struct {
	Target      string   `json:"target"`
	GeneratedAt float64  `json:"generated_at"`
	Overall     string   `json:"overall_status"`
	Passed      int      `json:"passed"`
	Failed      int      `json:"failed"`
	Results     []Result `json:"results"`
}

// NewReport folds results into a report. Overall status is the conjunction of
// every probe: a single failure fails the run.
func NewReport(target string, results []Result) *Report {
	report := &Report{
		Target:      target,
		GeneratedAt: float64(time.Now().UnixNano()) / 1e9,
		Results:     results,
	}
	for _, r := range results {
		if r.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	report.Overall = StatusPass
	if report.Failed > 0 {
		report.Overall = StatusFail
	}
	return report
}

// AllPassed reports whether every probe passed.
func (r *Report) AllPassed() bool { return r.Failed == 0 }

// WriteFile persists the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Print renders a human readable summary to stdout.
func (r *Report) Print() {
	fmt.Printf("\n%s — %d passed, %d failed\n", r.Overall, r.Passed, r.Failed)
	for _, res := range r.Results {
		fmt.Printf("  [%s] %s (%.1fms) %s\n", res.Status, res.TestName, res.ResponseTimeMS, res.Details)
	}
}
