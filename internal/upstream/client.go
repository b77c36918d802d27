package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/illumination-k/lifesci-mcp/internal/logging"
)

// Client is the shared GET transport for the upstream APIs. It owns the one
// concern the per-API clients delegate: issuing the request, retrying
// transient failures, and classifying HTTP errors. Query translation and
// response mapping stay in the API packages.
type Client struct {
	base    string
	http    *http.Client
	retries int
	delay   time.Duration
	extra   url.Values
	log     logging.Logger
}

type Option func(*Client)

// WithRetries sets the number of attempts for transient failures. Values
// below one are treated as a single attempt.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 1 {
			c.retries = n
		}
	}
}

// WithRetryDelay sets the pause between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithTimeout bounds each individual request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithExtraParams appends the given parameters to every request. NCBI uses
// this for api_key, email and tool identification.
func WithExtraParams(params url.Values) Option {
	return func(c *Client) { c.extra = params }
}

// WithLogger attaches a scoped logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		retries: 3,
		delay:   3 * time.Second,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured endpoint root.
func (c *Client) BaseURL() string { return c.base }

// Get issues a GET against path (joined to the base URL) with the given
// query parameters and returns the response body. Network errors and 5xx
// responses are retried up to the configured attempt count; a 404 comes
// back as a NotFound failure so callers can attach the missing identifier,
// and any other non-2xx status is an Upstream failure.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, c.delay); err != nil {
				return nil, Upstreamf(err, "request cancelled while retrying %s", reqURL)
			}
		}

		body, retryable, err := c.do(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.log.Debug("request failed", "url", reqURL, "attempt", attempt, "error", err)
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, reqURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, Upstreamf(err, "build request for %s", reqURL)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, Upstreamf(err, "fetch %s", reqURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, NotFoundf("%s returned 404", reqURL)
	case resp.StatusCode >= 500:
		return nil, true, Upstreamf(nil, "%s returned status %d", reqURL, resp.StatusCode)
	default:
		return nil, false, Upstreamf(nil, "%s returned status %d", reqURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, Upstreamf(err, "read response from %s", reqURL)
	}
	return data, false, nil
}

func (c *Client) buildURL(path string, params url.Values) (string, error) {
	u, err := url.Parse(c.base + path)
	if err != nil {
		return "", fmt.Errorf("invalid request url: %w", err)
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	for key, values := range c.extra {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
