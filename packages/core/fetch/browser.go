package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"courtiq-api/packages/core/metrics"
)

// chromeMu serializes browser use so only one page renders at a time.
var chromeMu sync.Mutex

// Browser renders pages in headless Chrome. It serves the ITF profile pages,
// which refuse plain server-side requests.
type Browser struct {
	userAgent string
	wsURL     string
	timeout   time.Duration
	settle    time.Duration
	metrics   *metrics.Metrics
}

type BrowserOptions struct {
	UserAgent string
	// WebSocketURL points at a remote Chrome; empty starts a local one.
	WebSocketURL string
	Timeout      time.Duration
	Metrics      *metrics.Metrics
}

func NewBrowser(opts BrowserOptions) *Browser {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Browser{
		userAgent: opts.UserAgent,
		wsURL:     opts.WebSocketURL,
		timeout:   opts.Timeout,
		settle:    2 * time.Second,
		metrics:   opts.Metrics,
	}
}

func (b *Browser) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.wsURL != "" {
		return chromedp.NewRemoteAllocator(ctx, b.wsURL)
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(b.userAgent),
	)
	return chromedp.NewExecAllocator(ctx, opts...)
}

func (b *Browser) Fetch(ctx context.Context, url, _ string) (string, error) {
	chromeMu.Lock()
	defer chromeMu.Unlock()

	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	allocCtx, cancelAlloc := b.allocator(ctx)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		slog.Debug(fmt.Sprintf(format, v...), "component", "chromedp")
	}))
	defer cancelTab()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(b.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		b.metrics.ObserveFetch("browser", "error", time.Since(started))
		return "", fmt.Errorf("%w: browser %s: %v", ErrNotAvailable, url, err)
	}

	b.metrics.ObserveFetch("browser", "ok", time.Since(started))
	return html, nil
}
