package apitests

var corsHeaders = []string{
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Headers",
}

// DoCORSHeadersTest issues the same preflight OPTIONS request a browser
// would. At least one of the well-known CORS response headers must be
// present; the status code itself does not matter here.
func DoCORSHeadersTest(t *T) {
	resp, err := t.Client().Options("/recognize-breed", defaultTimeout)
	if err != nil {
		t.Errorf("%s", err)
		return
	}

	var present []string
	for _, h := range corsHeaders {
		if resp.Header.Get(h) != "" {
			present = append(present, h)
		}
	}
	t.Detail("Status: %d, CORS headers: %v", resp.Status, present)

	if len(present) == 0 {
		t.Errorf("no CORS headers in response")
	}
}
