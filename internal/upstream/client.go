// Package upstream is the HTTP client for the external ControlDoc API, which
// performs authentication and owns all document data.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/controldoc/web/internal/metrics"
)

// maxBodySize caps how much of an upstream response body is read.
const maxBodySize = 1 << 20

// DefaultTimeout bounds a single upstream request when none is configured.
const DefaultTimeout = 10 * time.Second

// Client talks to the external API.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics records the outcome of every call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the API at baseURL. An empty or relative baseURL
// is resolved per request against the origin stored with WithOrigin.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base, possibly empty.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint builds the absolute URL for path.
func (c *Client) endpoint(ctx context.Context, op, path string) (string, *Error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", &Error{Kind: KindNetworkFailure, Op: op, Err: fmt.Errorf("invalid API base URL %q: %w", c.baseURL, err)}
	}
	if u.IsAbs() {
		return u.String(), nil
	}

	origin, ok := OriginFromContext(ctx)
	if !ok {
		return "", &Error{Kind: KindNetworkFailure, Op: op, Err: fmt.Errorf("relative endpoint %q without a request origin", u.String())}
	}
	return origin.ResolveReference(u).String(), nil
}

// send executes req and reads the (bounded) body. Transport failures are
// reported as KindNetworkFailure; non-2xx statuses as KindUpstreamUnavailable
// with the "detail" of the error body when one is present.
func (c *Client) send(op string, req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(&Error{Kind: KindNetworkFailure, Op: op, Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.fail(&Error{Kind: KindNetworkFailure, Op: op, Status: resp.StatusCode, Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(&Error{
			Kind:   KindUpstreamUnavailable,
			Op:     op,
			Status: resp.StatusCode,
			Detail: parseDetail(body),
		})
	}
	return body, nil
}

// fail records err and returns it.
func (c *Client) fail(err *Error) error {
	c.metrics.ObserveUpstream(err.Op, err.Kind.String())
	slog.Debug("Upstream request failed", "operation", err.Op, "kind", err.Kind.String(), "status", err.Status, "error", err.Err)
	return err
}

func (c *Client) succeed(op string) {
	c.metrics.ObserveUpstream(op, "ok")
}

// errorBody is the shape of an API error response. "detail" is a string for
// handled errors but may be a list for request validation failures.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseDetail returns the string "detail" of an error body, or "".
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
