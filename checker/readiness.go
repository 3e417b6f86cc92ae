package checker

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"

	"github.com/videoforge/backend/config"
)

const minJWTSecretLength = 32

// ReadinessChecker verifies that an environment is fit for production before
// traffic is pointed at it: configuration, database, endpoints, security
// posture, and storage settings.
type ReadinessChecker struct {
	baseURL string
	cfg     config.AppConfig
	client  *http.Client
}

func NewReadinessChecker(baseURL string, cfg config.AppConfig) *ReadinessChecker {
	return &ReadinessChecker{
		baseURL: strings.TrimRight(baseURL, "/"),
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckEnvironment verifies required environment variables are present.
func (c *ReadinessChecker) CheckEnvironment() []Result {
	required := []string{"JWT_SECRET", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME"}
	var results []Result
	start := time.Now()
	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		results = append(results, fail("environment_variables",
			"missing: "+strings.Join(missing, ", "), time.Since(start)))
	} else {
		results = append(results, pass("environment_variables",
			fmt.Sprintf("all %d required variables set", len(required)), time.Since(start)))
	}
	return results
}

// CheckDatabase verifies connectivity and that the schema is migrated to the
// latest version goose knows about.
func (c *ReadinessChecker) CheckDatabase(ctx context.Context) []Result {
	var results []Result
	start := time.Now()

	dsn := c.cfg.DatabaseURI
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			c.cfg.DBUser, c.cfg.DBPassword, c.cfg.DBHost, c.cfg.DBPort, c.cfg.DBName)
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return append(results, fail("database_connectivity", err.Error(), time.Since(start)))
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return append(results, fail("database_connectivity", err.Error(), time.Since(start)))
	}
	results = append(results, pass("database_connectivity", "ping ok", time.Since(start)))

	start = time.Now()
	if err := goose.SetDialect("mysql"); err != nil {
		return append(results, fail("database_migrations", err.Error(), time.Since(start)))
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return append(results, fail("database_migrations", err.Error(), time.Since(start)))
	}
	if version == 0 {
		return append(results, fail("database_migrations", "no migrations applied", time.Since(start)))
	}
	return append(results, pass("database_migrations",
		fmt.Sprintf("schema at version %d", version), time.Since(start)))
}

// CheckAPIEndpoints verifies the critical endpoints answer.
func (c *ReadinessChecker) CheckAPIEndpoints() []Result {
	checks := []struct {
		name string
		path string
		want int
	}{
		{"api_health", "/health", http.StatusOK},
		{"api_privacy_policy", "/gdpr/privacy-policy", http.StatusOK},
		{"api_protected_routes", "/gdpr/export-data", http.StatusUnauthorized},
	}
	var results []Result
	for _, check := range checks {
		start := time.Now()
		resp, err := c.client.Get(c.baseURL + check.path)
		elapsed := time.Since(start)
		if err != nil {
			results = append(results, fail(check.name, err.Error(), elapsed))
			continue
		}
		drain(resp)
		if resp.StatusCode != check.want {
			results = append(results, fail(check.name,
				fmt.Sprintf("GET %s returned %d, want %d", check.path, resp.StatusCode, check.want), elapsed))
			continue
		}
		results = append(results, pass(check.name,
			fmt.Sprintf("GET %s returned %d", check.path, resp.StatusCode), elapsed))
	}
	return results
}

// CheckSecurity verifies the security posture: secret strength, transport,
// and CORS configuration.
func (c *ReadinessChecker) CheckSecurity() []Result {
	var results []Result

	start := time.Now()
	if len(c.cfg.JWTSecret) < minJWTSecretLength {
		results = append(results, fail("jwt_secret_strength",
			fmt.Sprintf("secret shorter than %d characters", minJWTSecretLength), time.Since(start)))
	} else {
		results = append(results, pass("jwt_secret_strength", "secret length ok", time.Since(start)))
	}

	start = time.Now()
	if c.cfg.Environment == "production" && !strings.HasPrefix(c.baseURL, "https://") {
		results = append(results, fail("https_enforced", "production API not served over https", time.Since(start)))
	} else {
		results = append(results, pass("https_enforced", "transport ok", time.Since(start)))
	}

	start = time.Now()
	req, err := http.NewRequest(http.MethodOptions, c.baseURL+"/gdpr/privacy-policy", nil)
	if err != nil {
		return append(results, fail("cors_preflight", err.Error(), time.Since(start)))
	}
	origin := "https://app.videoforge.dev"
	if len(c.cfg.AllowedOrigins) > 0 && c.cfg.AllowedOrigins[0] != "*" {
		origin = c.cfg.AllowedOrigins[0]
	}
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return append(results, fail("cors_preflight", err.Error(), elapsed))
	}
	drain(resp)
	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		return append(results, fail("cors_preflight", "no Access-Control-Allow-Origin in preflight response", elapsed))
	}
	return append(results, pass("cors_preflight", "preflight allows "+origin, elapsed))
}

// CheckStorage verifies the object storage configuration is complete.
func (c *ReadinessChecker) CheckStorage() []Result {
	start := time.Now()
	var missing []string
	if c.cfg.S3Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if c.cfg.S3AccessKey == "" {
		missing = append(missing, "S3_ACCESS_KEY")
	}
	if c.cfg.S3SecretKey == "" {
		missing = append(missing, "S3_SECRET_KEY")
	}
	if len(missing) > 0 {
		return []Result{fail("storage_configuration", "missing: "+strings.Join(missing, ", "), time.Since(start))}
	}
	return []Result{pass("storage_configuration", "bucket "+c.cfg.S3Bucket+" configured", time.Since(start))}
}

// RunAllChecks runs every check group; none of them short-circuits the rest.
func (c *ReadinessChecker) RunAllChecks(ctx context.Context) *Report {
	var results []Result
	results = append(results, c.CheckEnvironment()...)
	results = append(results, c.CheckDatabase(ctx)...)
	results = append(results, c.CheckAPIEndpoints()...)
	results = append(results, c.CheckSecurity()...)
	results = append(results, c.CheckStorage()...)
	return NewReport(c.baseURL, results)
}
