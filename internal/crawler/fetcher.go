package crawler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"github.com/nao1215/hadithscraper/internal/config"
)

// Fetcher downloads HTML pages from the hadith site.
// Every request is bounded by the client timeout and is never retried.
type Fetcher struct {
	// client is the resty client with base URL, timeout and headers set.
	client *resty.Client
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(c *resty.Client) {
		c.SetHeader("User-Agent", ua)
	}
}

// NewFetcher creates a Fetcher for the site at baseURL (e.g., "https://sunnah.com").
func NewFetcher(baseURL string, opts ...FetcherOption) *Fetcher {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(config.DefaultTimeout)
	client.SetRetryCount(0)
	client.SetHeader("User-Agent", config.DefaultUserAgent)
	client.SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	for _, opt := range opts {
		opt(client)
	}

	return &Fetcher{client: client}
}

// Fetch GETs path (relative to the base URL) and parses the response as HTML.
// The body is decoded to UTF-8 according to its Content-Type and meta tags.
func (f *Fetcher) Fetch(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, fmt.Errorf("%w: %d for %s", ErrUnexpectedStatus, res.StatusCode(), path)
	}

	body, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
