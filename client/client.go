// Package client provides HTTP access to one deployment of the
// breed-recognition service. All calls are synchronous and fire-once; there
// are no retries, and the only cancellation mechanism is each call's own
// timeout.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cattlescan/api-contract-tests/framework"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// All service endpoints live under a fixed path segment of the deployment's
// base URL.
const apiPathPrefix = "/api"

const maxLoggedBodyBytes = 500

// APIClient issues requests against the service's API root. Each request is
// also logged to the configured logger as a copy-pasteable curl command, so
// a failure seen during a run can be reproduced by hand.
type APIClient struct {
	baseURL    string
	apiURL     string
	httpClient *http.Client
	logger     framework.Logger
}

// Response is what a test case needs from one completed HTTP exchange.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON parses the response body as a JSON value. A malformed body parses as
// the null value, which never matches any shape a test case looks for.
func (r *Response) JSON() ldvalue.Value {
	return ldvalue.Parse(r.Body)
}

func New(baseURL string, logger framework.Logger) *APIClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	base := strings.TrimSuffix(baseURL, "/")
	return &APIClient{
		baseURL:    base,
		apiURL:     base + apiPathPrefix,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// WithLogger returns a copy of the client that logs to the given logger.
// Test cases use this to route request logging into their own captured
// debug output.
func (c *APIClient) WithLogger(logger framework.Logger) *APIClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c2 := *c
	c2.logger = logger
	return &c2
}

func (c *APIClient) BaseURL() string { return c.baseURL }

func (c *APIClient) APIURL() string { return c.apiURL }

// Get issues a GET to the given path under the API root.
func (c *APIClient) Get(path string, timeout time.Duration) (*Response, error) {
	return c.do("GET", path, nil, timeout)
}

// Options issues an OPTIONS request to the given path under the API root,
// as a browser would for a CORS preflight.
func (c *APIClient) Options(path string, timeout time.Duration) (*Response, error) {
	return c.do("OPTIONS", path, nil, timeout)
}

// PostJSON issues a POST with the given value serialized as a JSON body.
func (c *APIClient) PostJSON(path string, body interface{}, timeout time.Duration) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	return c.do("POST", path, data, timeout)
}

func (c *APIClient) do(method, path string, body []byte, timeout time.Duration) (*Response, error) {
	url := c.apiURL + path

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Printf("Request: %s", curlCommand(method, url, body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("Request failed: %s", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	c.logger.Printf("Response: %d %s", resp.StatusCode, truncateForLog(respBody))

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}

// curlCommand renders a request as a shell-safe curl invocation for debug
// output.
func curlCommand(method, url string, body []byte) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", method)
	if body != nil {
		b.add("-H", "Content-Type: application/json", "-d", string(body))
	}
	b.add(url)
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

func truncateForLog(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxLoggedBodyBytes {
		return s[:maxLoggedBodyBytes] + "...(truncated)"
	}
	return s
}
