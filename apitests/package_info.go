// Package apitests contains the breed-recognition API contract tests
// themselves and their supporting API.
//
// Harness infrastructure that is not specific to this service, such as the
// results ledger and the test context, is in the lower-level framework
// package; HTTP access to the deployed service is in the client package.
package apitests
