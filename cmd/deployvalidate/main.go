// Command deployvalidate probes a deployed instance and writes a validation
// report. It exits non-zero when any probe fails, which makes it usable as a
// deployment pipeline gate.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/videoforge/backend/checker"
)

func main() {
	apiURL := flag.String("api-url", "http://localhost:8080", "base URL of the deployed API")
	timeout := flag.Duration("timeout", 5*time.Minute, "how long to wait for the deployment to become healthy")
	reportPath := flag.String("report", "deployment-validation-report.json", "where to write the JSON report")
	flag.Parse()

	validator := checker.NewDeploymentValidator(*apiURL)
	report := validator.RunFullValidation(*timeout)
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
