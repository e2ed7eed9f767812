package framework

// TestResult is the recorded outcome of one test case. It is immutable once
// appended to the ledger.
type TestResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Details string `json:"details"`
}

// Results is the ledger for one harness run: the pass/run counters plus the
// ordered sequence of per-case results. It is owned by a single run and is
// only ever touched by the one goroutine executing that run.
//
// After every completed case, TestsRun == len(Tests) and TestsRun is the sum
// of passed and failed cases. Both counters only ever increase.
type Results struct {
	Tests       []TestResult
	TestsRun    int
	TestsPassed int
}

func (r Results) OK() bool {
	return r.TestsPassed == r.TestsRun
}

// SuccessRate returns the passed/run ratio, or 0 for an empty run so that
// callers never divide by zero.
func (r Results) SuccessRate() float64 {
	if r.TestsRun == 0 {
		return 0
	}
	return float64(r.TestsPassed) / float64(r.TestsRun)
}
