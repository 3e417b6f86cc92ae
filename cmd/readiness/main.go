// Command readiness verifies an environment is fit for production traffic:
// configuration, database schema, endpoints, security posture, storage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/videoforge/backend/checker"
	"github.com/videoforge/backend/config"
)

func main() {
	apiURL := flag.String("api-url", "http://localhost:8080", "base URL of the running API")
	reportPath := flag.String("report", "production-readiness-report.json", "where to write the JSON report")
	flag.Parse()

	// Inspect instead of Load: a missing JWT secret must show up as a
	// failed check, not kill the checker at boot.
	cfg := config.Inspect()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	readiness := checker.NewReadinessChecker(*apiURL, cfg)
	report := readiness.RunAllChecks(ctx)
	report.Print()

	if err := report.WriteFile(*reportPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
	} else {
		fmt.Printf("report written to %s\n", *reportPath)
	}

	if !report.AllPassed() {
		os.Exit(1)
	}
}
