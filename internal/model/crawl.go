package model

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrorKind classifies a transport-level fetch failure.
//
// Design decision: We represent a fetch result as a tagged variant rather
// than an untyped error string because:
//  1. Reports distinguish HTTP failures from transport failures
//  2. Tests can assert on the kind without parsing messages
//  3. New kinds can be added without touching the report writers
type ErrorKind string

// Transport failure kinds recorded on broken links.
const (
	// KindTimeout indicates the request exceeded the per-request timeout.
	KindTimeout ErrorKind = "timeout"

	// KindDNS indicates the host could not be resolved.
	KindDNS ErrorKind = "dns"

	// KindConnectionRefused indicates the target refused the connection.
	KindConnectionRefused ErrorKind = "connection-refused"

	// KindNetwork is the fallback for transport failures that don't match
	// a more specific kind.
	KindNetwork ErrorKind = "network"
)

// BrokenLink records a same-domain link whose fetch returned a non-2xx
// status or failed at the transport layer, together with the page that
// linked to it.
type BrokenLink struct {
	// Target is the normalized URL that failed.
	Target string `json:"target"`

	// Referrer is the URL of the page the link was discovered on.
	// Empty when the seed itself returned a broken status (a direct visit).
	Referrer string `json:"referrer,omitempty"`

	// StatusCode is the HTTP status code when the fetch completed.
	// Zero for transport failures.
	StatusCode int `json:"status_code,omitempty"`

	// Kind tags transport failures. Empty for HTTP-level failures.
	Kind ErrorKind `json:"kind,omitempty"`
}

// IsTransport reports whether the link failed before an HTTP status
// was received.
func (b BrokenLink) IsTransport() bool {
	return b.Kind != ""
}

// StatusText returns the status code or the error kind for display,
// e.g. "404" or "timeout".
func (b BrokenLink) StatusText() string {
	if b.IsTransport() {
		return string(b.Kind)
	}
	return strconv.Itoa(b.StatusCode)
}

// PageRecord describes one successfully fetched page.
type PageRecord struct {
	// URL is the normalized URL of the page.
	URL string `json:"url"`

	// StatusCode is the HTTP status code of the successful fetch.
	StatusCode int `json:"status_code"`
}

// Segments splits the record's URL path into its components for tree
// building. The root path yields a single empty segment, which the tree
// renders as "/".
func (p PageRecord) Segments() []string {
	u, err := url.Parse(p.URL)
	if err != nil {
		return []string{p.URL}
	}

	trimmed := strings.Trim(u.Path, "/")
	if trimmed == "" {
		return []string{""}
	}
	return strings.Split(trimmed, "/")
}

// CrawlResult holds everything a single crawl run produced.
// It is created fresh per run and discarded after the report is written.
type CrawlResult struct {
	// Seed is the normalized starting URL.
	Seed string `json:"seed"`

	// Visited lists successfully fetched pages in breadth-first order.
	Visited []PageRecord `json:"visited"`

	// Broken lists same-domain links that failed, with referrers.
	Broken []BrokenLink `json:"broken"`

	// PagesCrawled is the number of successfully fetched pages.
	// Always equal to len(Visited) and never above the page cap.
	PagesCrawled int `json:"pages_crawled"`

	// Truncated is true when the page cap ended the crawl while the
	// frontier still held pending URLs.
	Truncated bool `json:"truncated"`

	// DateScanned is when the crawl started.
	DateScanned time.Time `json:"date_scanned"`

	// Duration is the total crawl wall time.
	Duration time.Duration `json:"duration"`
}

// NewCrawlResult creates an empty result for the given seed URL.
func NewCrawlResult(seed string) *CrawlResult {
	return &CrawlResult{
		Seed:        seed,
		Visited:     make([]PageRecord, 0),
		Broken:      make([]BrokenLink, 0),
		DateScanned: time.Now(),
	}
}

// AddPage appends a successfully fetched page and bumps the counter.
func (r *CrawlResult) AddPage(record PageRecord) {
	r.Visited = append(r.Visited, record)
	r.PagesCrawled++
}

// AddBroken appends a broken link entry.
func (r *CrawlResult) AddBroken(link BrokenLink) {
	r.Broken = append(r.Broken, link)
}

// HasBroken reports whether any broken links were recorded.
func (r *CrawlResult) HasBroken() bool {
	return len(r.Broken) > 0
}
