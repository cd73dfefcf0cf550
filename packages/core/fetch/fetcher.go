// Package fetch retrieves raw pages from the ranking sites.
//
// Every failure (transport error, timeout, non-2xx status) is reported as
// ErrNotAvailable so callers can record the item and move on.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"courtiq-api/packages/core/metrics"
)

var ErrNotAvailable = errors.New("source not available")

const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Fetcher returns the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url, referer string) (string, error)
}

type Options struct {
	// Source labels metrics and errors, e.g. "itf".
	Source    string
	UserAgent string
	Timeout   time.Duration
	Accept    string
	Metrics   *metrics.Metrics
}

// Client is a resty backed Fetcher sending browser-like headers.
type Client struct {
	http    *resty.Client
	source  string
	metrics *metrics.Metrics
}

func NewClient(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Accept == "" {
		opts.Accept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetHeader("Accept", opts.Accept)
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")

	return &Client{http: client, source: opts.Source, metrics: opts.Metrics}
}

func (c *Client) Fetch(ctx context.Context, url, referer string) (string, error) {
	started := time.Now()

	req := c.http.R().SetContext(ctx)
	if referer != "" {
		req.SetHeader("Referer", referer)
	}
	res, err := req.Get(url)
	if err != nil {
		c.metrics.ObserveFetch(c.source, "error", time.Since(started))
		return "", fmt.Errorf("%w: %s %s: %v", ErrNotAvailable, c.source, url, err)
	}
	if !res.IsSuccess() {
		c.metrics.ObserveFetch(c.source, "status", time.Since(started))
		return "", fmt.Errorf("%w: %s %s: status %d", ErrNotAvailable, c.source, url, res.StatusCode())
	}

	c.metrics.ObserveFetch(c.source, "ok", time.Since(started))
	return res.String(), nil
}
