package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Response is the raw outcome of a single API request. Non-success
// statuses are data, not errors; callers inspect StatusCode and decide.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Success reports whether the response carries a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NextLink returns the rel="next" continuation URL from the Link header,
// or the empty string when the response carries none.
func (r *Response) NextLink() string {
	return ParseLink(r.Header.Get("Link"))["next"]
}

// StatusError reports a non-success API status that halted an operation.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, body)
}

// Get issues a GET for path. Path may be relative to the client's base
// URL or an absolute continuation URL taken from a Link header. If the
// URL already carries a query string, params are ignored; continuation
// links embed their own parameters and must be used verbatim.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, params)
}

// Delete issues a DELETE for path. Same URL resolution rules as Get.
func (c *Client) Delete(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, params)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values) (*Response, error) {
	if ctx == nil {
		return nil, fmt.Errorf("github %s: ctx is nil", strings.ToLower(method))
	}

	target, err := c.resolve(path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("github %s: build request: %w", strings.ToLower(method), err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github %s %s: %w", strings.ToLower(method), target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github %s %s: read body: %w", strings.ToLower(method), target, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// resolve builds the request URL. A URL whose query string is already
// populated wins over params; appending both would produce malformed
// double-query URLs when following continuation links.
func (c *Client) resolve(path string, params url.Values) (string, error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("github: parse path %q: %w", path, err)
	}
	if !u.IsAbs() {
		if c.BaseURL == nil {
			return "", fmt.Errorf("github: base url is nil")
		}
		u = c.BaseURL.ResolveReference(u)
	}
	if u.RawQuery == "" && len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}
