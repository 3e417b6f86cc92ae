package checker

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthyAPI mimics the deployed app closely enough for the validator.
func healthyAPI() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gdpr/privacy-policy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gdpr/export-data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/gdpr/data-summary", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/feedback-minimal", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func TestRunFullValidationAgainstHealthyAPI(t *testing.T) {
	srv := healthyAPI()
	defer srv.Close()

	report := NewDeploymentValidator(srv.URL).RunFullValidation(time.Second)

	assert.True(t, report.AllPassed(), "unexpected failures: %+v", report.Results)
	assert.Equal(t, StatusPass, report.Overall)
	assert.Len(t, report.Results, 8)
}

func TestAllProbesRunDespiteFailures(t *testing.T) {
	// Everything is broken; every probe must still execute.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	report := NewDeploymentValidator(srv.URL).RunFullValidation(0)

	assert.Len(t, report.Results, 8)
	assert.Equal(t, StatusFail, report.Overall)
	assert.Equal(t, 8, report.Failed)
}

func TestWaitForDeploymentTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	result := NewDeploymentValidator(srv.URL).WaitForDeployment(0)

	assert.False(t, result.Passed)
	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Details, "not ready")
}

func TestProbeRecordsLatency(t *testing.T) {
	srv := healthyAPI()
	defer srv.Close()

	results := NewDeploymentValidator(srv.URL).ValidatePerformance()
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Greater(t, results[0].ResponseTimeMS, 0.0)
	assert.Greater(t, results[0].Timestamp, 0.0)
}

func TestReportCountsAndOverall(t *testing.T) {
	results := []Result{
		pass("a", "", time.Millisecond),
		fail("b", "boom", time.Millisecond),
		pass("c", "", time.Millisecond),
	}
	report := NewReport("http://example", results)

	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, StatusFail, report.Overall)
	assert.False(t, report.AllPassed())
}
