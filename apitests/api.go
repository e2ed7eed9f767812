package apitests

import (
	"time"

	"github.com/cattlescan/api-contract-tests/client"
	"github.com/cattlescan/api-contract-tests/framework"
)

// Most probes give the service a short bounded time to answer; the
// recognition endpoints get longer budgets because inference can be slow.
const (
	defaultTimeout     = 10 * time.Second
	invalidDataTimeout = 30 * time.Second
	recognitionTimeout = 60 * time.Second
)

// T represents one test case in the breed API suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner. To make test
// assertions, you can use the assert and require packages, passing the *T as
// if it were a *testing.T. Test cases also accumulate a free-text details
// string via Detail, which is recorded with the result whether the case
// passes or fails.
type T struct {
	context *framework.Context
	client  *client.APIClient
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Detail appends a fragment to the details string recorded with this case's
// result.
func (t *T) Detail(format string, args ...interface{}) {
	t.context.Detail(format, args...)
}

// Debug writes to the case's captured debug output.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Client returns an API client whose request logging is routed into this
// case's captured debug output.
func (t *T) Client() *client.APIClient {
	return t.client
}
