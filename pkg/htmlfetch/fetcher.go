// Package htmlfetch provides the concrete HTTP collaborator the
// date-discovery pipeline treats as out of scope: given a URL, fetch its
// body and decode it to UTF-8 text regardless of the server's declared
// (or undeclared) charset.
package htmlfetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Fetcher downloads HTML documents over HTTP.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// NewFetcher creates a Fetcher with a bounded timeout, matching the
// teacher's asset downloader convention.
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  "htmldate-go/1.0 (date discovery)",
	}
}

// Fetch retrieves url and returns its body decoded to UTF-8. A non-2xx
// status, a transport error, or an empty body all map to ("", false),
// matching the out-of-scope fetch_url(url) -> string | null contract.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", false
	}

	body, err := io.ReadAll(reader)
	if err != nil || len(body) == 0 {
		return "", false
	}
	return string(body), true
}
