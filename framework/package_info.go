// Package framework contains the harness infrastructure that is not specific
// to the breed-recognition API: the results ledger, the test context that
// runs cases and accumulates outcomes, regex-based test filters, logging, and
// the JSON run-summary artifact.
//
// The general model is:
//
// 1. A run executes a fixed, ordered battery of named test cases against one
// remote service. Each case produces a pass/fail verdict plus a free-text
// details string.
//
// 2. There is a notion of a test context which is similar to Go's *testing.T,
// allowing a piece of test logic to fail, to accumulate detail text, and to
// capture debug output, without any single failure halting the rest of the
// run.
//
// 3. When all cases have run, the accumulated ledger can be persisted as a
// JSON run summary for CI tooling to pick up.
//
// The domain-specific code that knows what is being tested lives in the
// apitests package.
package framework
