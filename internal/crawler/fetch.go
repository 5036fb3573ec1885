package crawler

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/starikov/sitetools/internal/model"
)

// Fetcher is the HTTP fetch capability consumed by the Spider.
// Given a URL, it returns the response status and body, or a transport
// error when no HTTP response was received at all.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*FetchResult, error)
}

// FetchResult is the outcome of a fetch that produced an HTTP response,
// broken or not. Transport failures are reported as errors instead.
type FetchResult struct {
	// StatusCode is the final HTTP status after redirects.
	StatusCode int

	// Body is the response body, bounded by the fetcher's size limit.
	Body []byte
}

// Success reports whether the response status is in the 2xx range.
func (r *FetchResult) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DefaultMaxBodySize bounds how much of a response body is read.
// 5MB is ample for HTML pages while keeping memory flat on sites that
// link to large assets.
const DefaultMaxBodySize = 5 * 1024 * 1024

// HTTPFetcher fetches pages with net/http under a fixed per-request
// timeout. It is the production Fetcher implementation.
type HTTPFetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size to read.
func WithMaxBodySize(size int64) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.maxBodySize = size
	}
}

// NewHTTPFetcher creates an HTTPFetcher whose requests time out after the
// given duration. The timeout covers the whole request, so a stalled body
// read cannot hang the sequential crawl loop.
func NewHTTPFetcher(timeout time.Duration, opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client:      &http.Client{Timeout: timeout},
		userAgent:   "linkcheck",
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs a GET request and returns the response, or a transport
// error when no response was received.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close on read path

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, err
	}

	return &FetchResult{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// ClassifyError maps a transport error onto a model.ErrorKind so reports
// can tag timeouts, DNS failures, and refused connections distinctly.
func ClassifyError(err error) model.ErrorKind {
	if err == nil {
		return ""
	}

	// Timeouts first: a DNS lookup that timed out should read as a
	// timeout, not a resolution failure.
	if errors.Is(err, context.DeadlineExceeded) {
		return model.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.KindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.KindDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return model.KindConnectionRefused
	}

	return model.KindNetwork
}
