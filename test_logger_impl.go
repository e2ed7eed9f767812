package main

import (
	"fmt"
	"os"

	"github.com/cattlescan/api-contract-tests/framework"

	"github.com/fatih/color"
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(name string) {}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	if result.Success {
		color.Green("✅ %s - PASSED", result.Name)
	} else {
		color.Red("❌ %s - FAILED: %s", result.Name, result.Details)
	}
	if len(debugOutput) > 0 &&
		((!result.Success && c.DebugOutputOnFailure) || (result.Success && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(name string, reason string) {
	if reason == "" {
		color.Yellow("⏭️  %s - SKIPPED", name)
	} else {
		color.Yellow("⏭️  %s - SKIPPED (%s)", name, reason)
	}
}

func printSummary(results framework.Results) {
	fmt.Printf("📊 Backend Tests Summary: %d/%d passed\n", results.TestsPassed, results.TestsRun)
	switch {
	case results.OK():
		color.Green("🎉 All backend tests passed!")
	case results.SuccessRate() >= 0.8:
		color.Yellow("⚠️  Most backend tests passed - minor issues detected")
	default:
		color.Red("🚨 Multiple backend failures detected")
	}
}
