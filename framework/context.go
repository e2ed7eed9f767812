package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the state of one test case while it is running. It is used
// similarly to Go's *testing.T: it provides Errorf and FailNow so standard
// assertion libraries can drive it, plus Detail for accumulating the
// free-text details string that ends up in the recorded result.
type Context struct {
	env         *environment
	name        string
	debugLogger CapturingLogger
	failed      bool
	details     []string
	errors      []error
}

// Run executes a harness run. The action receives a root Context whose Run
// method executes one named test case at a time; the returned Results ledger
// reflects every case that was executed, whether it passed or not.
func Run(filter Filter, testLogger TestLogger, action func(*Context)) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	action(&Context{env: env})
	return env.results
}

// Run executes a single named test case. A case that fails, or that panics,
// is recorded as a failure in the ledger and does not prevent later cases
// from running. A case excluded by the run's filter is skipped entirely: it
// is neither run nor counted.
func (c *Context) Run(name string, action func(*Context)) {
	if c.env.filter != nil && !c.env.filter(name) {
		c.env.testLogger.TestSkipped(name, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(name)
	c1 := &Context{env: c.env, name: name}
	c1.run(action)
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); ok {
				// normal early exit via FailNow
				c.failed = true
				if len(c.errors) == 0 {
					c.errors = append(c.errors, errors.New("test failed with no failure message"))
				}
			} else {
				c.failed = true
				c.errors = append(c.errors,
					fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
			}
		}
		result := TestResult{Name: c.name, Success: !c.failed, Details: c.detailString()}
		c.env.results.Tests = append(c.env.results.Tests, result)
		c.env.results.TestsRun++
		if result.Success {
			c.env.results.TestsPassed++
		}
		c.env.testLogger.TestFinished(result, c.debugLogger.Output())
	}()

	action(c)
}

// Name returns the name of the test case this context belongs to.
func (c *Context) Name() string {
	return c.name
}

// Detail appends a fragment to the details string that will be recorded with
// this case's result, whether it passes or fails.
func (c *Context) Detail(format string, args ...interface{}) {
	c.details = append(c.details, fmt.Sprintf(format, args...))
}

// Errorf marks the test case as failed and records the failure message. It
// does not cause an immediate exit; assertion libraries call this for
// non-fatal assertions.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.errors = append(c.errors, fmt.Errorf(format, args...))
}

// FailNow marks the test case as failed and immediately exits it. Assertion
// libraries call this for fatal assertions.
func (c *Context) FailNow() {
	panic(c)
}

// Debug writes to the per-case capturing logger. The captured output is
// handed to the TestLogger when the case finishes, so it can be dumped for
// failed cases without cluttering successful ones.
func (c *Context) Debug(format string, args ...interface{}) {
	c.debugLogger.Printf(format, args...)
}

// DebugLogger returns the per-case capturing logger, for handing to lower
// level components such as the HTTP client.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// detailString flattens the accumulated detail fragments and failure
// messages into the single details string recorded with the result. A case
// that fails before producing any detail fragments (for example on a
// transport error) records just the failure text.
func (c *Context) detailString() string {
	var errorTexts []string
	for _, err := range c.errors {
		errorTexts = append(errorTexts, err.Error())
	}
	details := strings.Join(c.details, ", ")
	failures := strings.Join(errorTexts, "; ")
	switch {
	case details == "":
		return failures
	case failures == "":
		return details
	default:
		return details + " - " + failures
	}
}
