package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cattlescan/api-contract-tests/framework"
)

// The harness targets one known deployment and writes one known artifact;
// both can be pointed elsewhere for local runs.
const defaultBaseURL = "https://cattle-breed-scan-1.preview.emergentagent.com"
const defaultOutputPath = "/app/backend_test_results.json"

type commandParams struct {
	baseURL    string
	outputPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the deployed service")
	fs.StringVar(&c.outputPath, "out", defaultOutputPath, "path of the JSON results file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
