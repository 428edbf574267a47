// Package pagination follows Link-header continuation across the pages
// of a GitHub REST collection.
package pagination

import (
	"context"
	"iter"
	"net/url"

	gh "runsweep/internal/github"
)

// Source fetches a single page of a collection.
type Source interface {
	Get(ctx context.Context, path string, params url.Values) (*gh.Response, error)
}

// Pages returns a lazy sequence of successful pages starting at path.
// The first request carries params; every subsequent request uses the
// previous response's rel="next" URL verbatim, with nothing appended.
// The sequence ends when a response has no "next" relation. A transport
// failure or a non-success status ends the sequence with a non-nil
// error (a *github.StatusError for the latter) and no page, so a failed
// first request yields zero pages.
func Pages(ctx context.Context, src Source, path string, params url.Values) iter.Seq2[*gh.Response, error] {
	return func(yield func(*gh.Response, error) bool) {
		next := path
		for first := true; next != ""; first = false {
			p := params
			if !first {
				p = nil
			}
			resp, err := src.Get(ctx, next, p)
			if err != nil {
				yield(nil, err)
				return
			}
			if !resp.Success() {
				yield(nil, &gh.StatusError{StatusCode: resp.StatusCode, Body: resp.Body})
				return
			}
			if !yield(resp, nil) {
				return
			}
			next = resp.NextLink()
		}
	}
}

// Collect drains Pages in server order. On an early halt the pages
// gathered so far are returned alongside the error; callers choose
// whether a partial collection is still worth acting on.
func Collect(ctx context.Context, src Source, path string, params url.Values) ([]*gh.Response, error) {
	var pages []*gh.Response
	for resp, err := range Pages(ctx, src, path, params) {
		if err != nil {
			return pages, err
		}
		pages = append(pages, resp)
	}
	return pages, nil
}
