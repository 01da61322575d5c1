// Package fetch retrieves pages over HTTP with browser-like request headers.
// Some news sites reject requests that don't look like they came from a real
// browser, so the fetcher presents a desktop Chrome profile.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Browser-profile request headers sent with every fetch.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.9"
)

// Client fetches the raw markup behind a URL. The pipeline depends on this
// interface rather than a concrete HTTP client so tests can supply canned
// pages without network access.
type Client interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError describes a failed page fetch. StatusCode is zero when the
// request never produced an HTTP response (network error, timeout).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher is the production Client backed by net/http.
type Fetcher struct {
	client  *http.Client
	referer string
}

// New creates a Fetcher with the given per-request timeout. The referer is
// sent with every request; sites that check it typically expect their own
// origin.
func New(timeout time.Duration, referer string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		referer: referer,
	}
}

// Fetch issues a GET for the URL and returns the response body as text. A
// network failure or non-2xx status is returned as a *FetchError; callers
// decide whether that is fatal (the listing page) or skippable (a single
// article).
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	return string(body), nil
}
