package domaingate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const feedTimeout = 10 * time.Second

// Feed fetches the plain-text denylist over HTTP. The feed is public and
// unauthenticated; fetching is best-effort.
type Feed struct {
	url    string
	client *http.Client
}

// NewFeed constructs a fetcher with a shared HTTP client.
func NewFeed(url string) *Feed {
	return &Feed{
		url:    url,
		client: &http.Client{Timeout: feedTimeout},
	}
}

// FetchRaw downloads the current denylist body verbatim, suitable for
// caching.
func (f *Feed) FetchRaw(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("denylist feed returned %d", resp.StatusCode)
	}
	return string(body), nil
}

// Fetch downloads and parses the current denylist.
func (f *Feed) Fetch(ctx context.Context) (Set, error) {
	raw, err := f.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return ParseList(raw), nil
}
