package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished []TestResult
	skipped  []string
}

func (l *recordingTestLogger) TestStarted(name string) {
	l.started = append(l.started, name)
}

func (l *recordingTestLogger) TestFinished(result TestResult, debugOutput CapturedOutput) {
	l.finished = append(l.finished, result)
}

func (l *recordingTestLogger) TestSkipped(name string, reason string) {
	l.skipped = append(l.skipped, name)
}

func TestRunRecordsResultsInDeclaredOrder(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("first", func(c *Context) { c.Detail("ok") })
		c.Run("second", func(c *Context) { c.Errorf("boom") })
		c.Run("third", func(c *Context) {})
	})

	require.Len(t, results.Tests, 3)
	assert.Equal(t, "first", results.Tests[0].Name)
	assert.Equal(t, "second", results.Tests[1].Name)
	assert.Equal(t, "third", results.Tests[2].Name)
	assert.Equal(t, 3, results.TestsRun)
	assert.Equal(t, 2, results.TestsPassed)
	assert.False(t, results.OK())
}

func TestFailedCaseDoesNotHaltRemainingCases(t *testing.T) {
	var ranAfterFailure bool
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails", func(c *Context) {
			c.Errorf("deliberate failure")
			c.FailNow()
		})
		c.Run("still runs", func(c *Context) { ranAfterFailure = true })
	})

	assert.True(t, ranAfterFailure)
	assert.Equal(t, 2, results.TestsRun)
	assert.Equal(t, 1, results.TestsPassed)
}

func TestPanicInCaseIsCountedAsRunButNotPassed(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("crashes", func(c *Context) {
			panic("something unexpected")
		})
		c.Run("survivor", func(c *Context) {})
	})

	require.Len(t, results.Tests, 2)
	assert.Equal(t, 2, results.TestsRun)
	assert.Equal(t, 1, results.TestsPassed)

	crashed := results.Tests[0]
	assert.False(t, crashed.Success)
	assert.Contains(t, crashed.Details, "unexpected panic in test")
	assert.Contains(t, crashed.Details, "something unexpected")
}

func TestFailNowWithoutMessageStillRecordsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails silently", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Tests, 1)
	assert.False(t, results.Tests[0].Success)
	assert.Contains(t, results.Tests[0].Details, "test failed with no failure message")
}

func TestFailNowExitsCaseImmediately(t *testing.T) {
	var reachedAfterFailNow bool
	_ = Run(nil, nil, func(c *Context) {
		c.Run("exits early", func(c *Context) {
			c.Errorf("first problem")
			c.FailNow()
			reachedAfterFailNow = true
		})
	})

	assert.False(t, reachedAfterFailNow)
}

func TestDetailsAndFailureMessagesAreComposed(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("status then failure", func(c *Context) {
			c.Detail("Status: %d", 200)
			c.Detail("Cattle breeds: %d", 4)
			c.Errorf("insufficient breed data")
		})
		c.Run("failure only", func(c *Context) {
			c.Errorf("connection refused")
		})
		c.Run("details only", func(c *Context) {
			c.Detail("Status: %d", 200)
		})
	})

	require.Len(t, results.Tests, 3)
	assert.Equal(t, "Status: 200, Cattle breeds: 4 - insufficient breed data", results.Tests[0].Details)
	assert.Equal(t, "connection refused", results.Tests[1].Details)
	assert.Equal(t, "Status: 200", results.Tests[2].Details)
}

func TestFilteredOutCaseIsNeitherRunNorCounted(t *testing.T) {
	logger := &recordingTestLogger{}
	filter := func(name string) bool { return !strings.Contains(name, "excluded") }

	var excludedRan bool
	results := Run(filter, logger, func(c *Context) {
		c.Run("included", func(c *Context) {})
		c.Run("excluded", func(c *Context) { excludedRan = true })
	})

	assert.False(t, excludedRan)
	assert.Equal(t, 1, results.TestsRun)
	assert.Equal(t, 1, results.TestsPassed)
	assert.Equal(t, []string{"included"}, logger.started)
	assert.Equal(t, []string{"excluded"}, logger.skipped)
}

func TestDebugOutputIsDeliveredWithResult(t *testing.T) {
	logger := &recordingTestLogger{}
	var captured CapturedOutput
	_ = Run(nil, &capturingFinishLogger{inner: logger, captured: &captured}, func(c *Context) {
		c.Run("logs things", func(c *Context) {
			c.Debug("request sent to %s", "somewhere")
		})
	})

	require.Len(t, captured, 1)
	assert.Equal(t, "request sent to somewhere", captured[0].Message)
}

type capturingFinishLogger struct {
	inner    TestLogger
	captured *CapturedOutput
}

func (l *capturingFinishLogger) TestStarted(name string) { l.inner.TestStarted(name) }

func (l *capturingFinishLogger) TestFinished(result TestResult, debugOutput CapturedOutput) {
	*l.captured = debugOutput
	l.inner.TestFinished(result, debugOutput)
}

func (l *capturingFinishLogger) TestSkipped(name string, reason string) {
	l.inner.TestSkipped(name, reason)
}
