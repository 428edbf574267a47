package github

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the GitHub REST API host every request is issued
// against unless a test overrides Client.BaseURL.
const DefaultBaseURL = "https://api.github.com"

const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
	userAgent    = "runsweep"
)

// Client issues raw REST requests against the GitHub API. It surfaces
// status codes, bodies and headers unmodified so callers can make their
// own policy decisions (pagination, per-item failure reporting).
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

type options struct {
	verbose bool
	// writer controls where verbose HTTP logs are written (typically stderr)
	// so operator-facing output on stdout stays clean and tests can capture
	// the log.
	writer io.Writer
}

type Option func(*options)

func WithVerbose(enabled bool, writer io.Writer) Option {
	return func(o *options) {
		o.verbose = enabled
		o.writer = writer
	}
}

// loggingRoundTripper wraps an underlying transport and emits one line per
// request and response (including latency) when verbose logging is enabled.
type loggingRoundTripper struct {
	base http.RoundTripper
	w    io.Writer
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	if t.w != nil {
		_, _ = fmt.Fprintf(t.w, "[verbose] github api: %s %s\n", req.Method, req.URL.String())
	}
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start)
	if t.w != nil {
		if err != nil {
			_, _ = fmt.Fprintf(t.w, "[verbose] github api: error after %s: %v\n", dur.Truncate(time.Millisecond), err)
		} else {
			_, _ = fmt.Fprintf(t.w, "[verbose] github api: %d %s (%s)\n", resp.StatusCode, http.StatusText(resp.StatusCode), dur.Truncate(time.Millisecond))
		}
	}
	return resp, err
}

// NewClient builds a client authenticated with token. An empty token
// yields an unauthenticated client, which still works for public
// listings but cannot delete anything.
func NewClient(token string, opts ...Option) (*Client, error) {
	o := &options{}
	for _, apply := range opts {
		if apply != nil {
			apply(o)
		}
	}
	if o.verbose && o.writer == nil {
		o.writer = os.Stderr
	}

	transport := http.DefaultTransport
	if o.verbose {
		transport = &loggingRoundTripper{base: transport, w: o.writer}
	}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		transport = &oauth2.Transport{Source: ts, Base: transport}
	}

	base, err := url.Parse(DefaultBaseURL)
	if err != nil {
		return nil, fmt.Errorf("github client: parse base url: %w", err)
	}

	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Transport: transport},
	}, nil
}
