package resume

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Fetcher downloads resume documents referenced by URL. The download and
// the follow-up text extraction are the only I/O in the analysis path.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: 15 << 20, // 15MB
	}
}

// Fetch returns the document bytes and a filename guess taken from the URL
// path (used to pick the text extractor by extension).
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("invalid document url %q", rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch document: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &FetchStatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	limited := io.LimitReader(resp.Body, f.maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, "", fmt.Errorf("read document body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", fmt.Errorf("document too large: limit is %d bytes", f.maxBytes)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = "resume.pdf"
	}
	return data, name, nil
}

// FetchStatusError marks a non-2xx response from the document host.
// 5xx responses are worth retrying, 4xx are not.
type FetchStatusError struct {
	URL        string
	StatusCode int
}

func (e *FetchStatusError) Error() string {
	return fmt.Sprintf("fetch %s: http %d", e.URL, e.StatusCode)
}

// Transient reports whether the failure is likely to clear on retry.
func (e *FetchStatusError) Transient() bool { return e.StatusCode >= 500 }
