package apitests

import (
	"net/http"
	"strings"
)

// DoHealthCheckTest verifies basic connectivity: the API root must answer
// with a 200 within the default timeout.
func DoHealthCheckTest(t *T) {
	resp, err := t.Client().Get("/", defaultTimeout)
	if err != nil {
		t.Errorf("%s", err)
		return
	}
	t.Detail("Status: %d", resp.Status)
	if resp.Status != http.StatusOK {
		t.Errorf("expected status 200")
		return
	}
	t.Detail("Response: %s", strings.TrimSpace(string(resp.Body)))
}
