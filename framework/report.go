package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunSummary is the artifact persisted at the end of a run. The file it is
// written to is overwritten on every invocation; nothing in the harness ever
// reads it back.
type RunSummary struct {
	Timestamp string          `json:"timestamp"`
	Summary   RunSummaryStats `json:"summary"`
	Tests     []TestResult    `json:"tests"`
}

type RunSummaryStats struct {
	Passed      int     `json:"passed"`
	Total       int     `json:"total"`
	SuccessRate float64 `json:"success_rate"`
}

// NewRunSummary captures the ledger into a persistable summary, timestamped
// at the moment reporting begins.
func NewRunSummary(results Results, now time.Time) RunSummary {
	tests := results.Tests
	if tests == nil {
		tests = []TestResult{}
	}
	return RunSummary{
		Timestamp: now.Format(time.RFC3339),
		Summary: RunSummaryStats{
			Passed:      results.TestsPassed,
			Total:       results.TestsRun,
			SuccessRate: results.SuccessRate(),
		},
		Tests: tests,
	}
}

// WriteFile serializes the summary as indented JSON, creating the parent
// directory if needed and replacing any artifact from a previous run.
func (s RunSummary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}
