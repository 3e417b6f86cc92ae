package checker

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoforge/backend/config"
)

func readinessCfg() config.AppConfig {
	return config.AppConfig{
		Environment:    "staging",
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		AllowedOrigins: []string{"https://app.example.com"},
		S3Bucket:       "videoforge-media",
		S3AccessKey:    "key",
		S3SecretKey:    "secret",
	}
}

func TestCheckSecurityRejectsWeakSecret(t *testing.T) {
	cfg := readinessCfg()
	cfg.JWTSecret = "short"
	srv := corsAPI()
	defer srv.Close()

	results := NewReadinessChecker(srv.URL, cfg).CheckSecurity()

	byName := indexResults(results)
	assert.False(t, byName["jwt_secret_strength"].Passed)
	assert.True(t, byName["https_enforced"].Passed)
}

func TestCheckSecurityRequiresHTTPSInProduction(t *testing.T) {
	cfg := readinessCfg()
	cfg.Environment = "production"
	srv := corsAPI()
	defer srv.Close()

	results := NewReadinessChecker(srv.URL, cfg).CheckSecurity()

	byName := indexResults(results)
	assert.False(t, byName["https_enforced"].Passed, "httptest serves plain http")
}

func TestCheckSecurityCORSPreflight(t *testing.T) {
	srv := corsAPI()
	defer srv.Close()

	results := NewReadinessChecker(srv.URL, readinessCfg()).CheckSecurity()

	byName := indexResults(results)
	assert.True(t, byName["cors_preflight"].Passed)
}

func TestCheckStorageReportsMissingSettings(t *testing.T) {
	cfg := readinessCfg()
	cfg.S3Bucket = ""
	cfg.S3SecretKey = ""

	results := NewReadinessChecker("http://localhost", cfg).CheckStorage()

	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Details, "S3_BUCKET")
	assert.Contains(t, results[0].Details, "S3_SECRET_KEY")
}

func TestCheckAPIEndpoints(t *testing.T) {
	srv := healthyAPI()
	defer srv.Close()

	results := NewReadinessChecker(srv.URL, readinessCfg()).CheckAPIEndpoints()

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.TestName, r.Details)
	}
}

func TestReportWriteFile(t *testing.T) {
	report := NewReport("http://example", []Result{pass("a", "ok", 0)})
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, report.WriteFile(path))
	assert.FileExists(t, path)
}

// corsAPI answers preflight requests the way the real router's CORS
// middleware does.
func corsAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func indexResults(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.TestName] = r
	}
	return m
}
