// Command api-contract-tests is an external black-box test harness for a
// deployed breed-recognition service. It runs a fixed battery of HTTP probes
// against one API root, prints per-case progress and a tiered summary, writes
// a JSON run summary to disk, and exits nonzero if any case failed.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cattlescan/api-contract-tests/apitests"
	"github.com/cattlescan/api-contract-tests/client"
	"github.com/cattlescan/api-contract-tests/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	fmt.Println("🧪 Starting Backend API Tests...")
	fmt.Printf("🌐 Testing against: %s\n", params.baseURL)
	fmt.Println(strings.Repeat("=", 60))

	apiClient := client.New(params.baseURL, nil)
	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(apiClient, params.filters.AsFilter, testLogger)

	fmt.Println(strings.Repeat("=", 60))
	printSummary(results)

	summary := framework.NewRunSummary(results, time.Now())
	if err := summary.WriteFile(params.outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Could not save results: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n📄 Detailed results saved to: %s\n", params.outputPath)

	if !results.OK() {
		os.Exit(1)
	}
}
