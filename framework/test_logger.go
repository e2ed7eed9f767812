package framework

// TestLogger receives progress callbacks during a run, so the caller can
// render console output however it likes.
type TestLogger interface {
	TestStarted(name string)
	TestFinished(result TestResult, debugOutput CapturedOutput)
	TestSkipped(name string, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string)                      {}
func (n nullTestLogger) TestFinished(TestResult, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(string, string)              {}
