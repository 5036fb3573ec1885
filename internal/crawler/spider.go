package crawler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/starikov/sitetools/internal/model"
)

// ErrSeedUnreachable is returned when the seed URL itself cannot be
// fetched at all. This is the only failure that aborts a crawl.
var ErrSeedUnreachable = errors.New("seed URL unreachable")

// Spider crawls a site breadth-first from a seed URL, restricted to the
// seed's registrable domain, recording visited pages and broken links.
//
// Design decision: We call it "Spider" rather than "Crawler" because:
//  1. "Spider" is the traditional term for web crawlers
//  2. Distinguishes the component from the package name
//  3. Clearer in code: crawler.NewSpider() vs crawler.NewCrawler()
type Spider struct {
	// fetcher performs HTTP requests. Replaceable in tests.
	fetcher Fetcher

	// extractor pulls anchor targets out of page bodies.
	extractor LinkExtractor

	// maxPages caps the number of successfully fetched pages.
	maxPages int

	// ignorePatterns are URL path globs that are never enqueued.
	ignorePatterns []string

	// progress receives the live page counter. Nil disables it.
	progress io.Writer

	// logger is used for debug output.
	logger *slog.Logger
}

// Option configures a Spider.
type Option func(*Spider)

// WithLinkExtractor replaces the default HTML link extractor.
func WithLinkExtractor(e LinkExtractor) Option {
	return func(s *Spider) {
		s.extractor = e
	}
}

// WithMaxPages caps the number of pages fetched in one run.
func WithMaxPages(maxPages int) Option {
	return func(s *Spider) {
		s.maxPages = maxPages
	}
}

// WithIgnorePatterns sets URL path globs to skip during crawling,
// e.g. "/tags/*" or "*.pdf". Matching links are never enqueued.
func WithIgnorePatterns(patterns []string) Option {
	return func(s *Spider) {
		s.ignorePatterns = patterns
	}
}

// WithProgress enables the live page counter on the given writer.
func WithProgress(w io.Writer) Option {
	return func(s *Spider) {
		s.progress = w
	}
}

// WithLogger sets a custom logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Spider) {
		s.logger = logger
	}
}

// NewSpider creates a Spider using the given Fetcher.
//
// Design decision: We require the fetcher as an argument rather than
// constructing it internally because:
//  1. The per-request timeout and User-Agent belong to the fetcher
//  2. Tests inject a fake HTTP layer through the same seam
//  3. Consistent with the capability contract: the spider only consumes
//     fetch and extraction, it never implements them
func NewSpider(fetcher Fetcher, opts ...Option) *Spider {
	s := &Spider{
		fetcher:   fetcher,
		extractor: NewHTMLExtractor(),
		maxPages:  10000,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// frontierItem is one pending fetch in the breadth-first queue.
type frontierItem struct {
	url      string
	depth    int
	referrer string
}

// Crawl traverses the site starting from seedURL and returns the result.
//
// The traversal is breadth-first: the frontier is FIFO and ordering is
// determined solely by discovery order. It terminates when the frontier
// empties (full coverage) or the page cap is reached (truncated, flagged
// on the result). A transport failure on the seed returns
// ErrSeedUnreachable; every other failure is recorded and skipped.
func (s *Spider) Crawl(ctx context.Context, seedURL string) (*model.CrawlResult, error) {
	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid seed URL: %w", err)
	}
	if seed.Scheme != "http" && seed.Scheme != "https" {
		return nil, fmt.Errorf("invalid seed URL %q: scheme must be http or https", seedURL)
	}

	start := normalizeURL(seedURL)
	result := model.NewCrawlResult(start)

	frontier := []frontierItem{{url: start, depth: 0}}
	seen := map[string]bool{start: true}

	bar := s.newProgressBar()

	for len(frontier) > 0 && result.PagesCrawled < s.maxPages {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		item := frontier[0]
		frontier = frontier[1:]

		res, err := s.fetcher.Fetch(ctx, item.url)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			if item.referrer == "" {
				return nil, fmt.Errorf("%w: %s: %v", ErrSeedUnreachable, item.url, err)
			}
			kind := ClassifyError(err)
			s.logger.Debug("transport failure", "url", item.url, "kind", kind, "error", err)
			result.AddBroken(model.BrokenLink{
				Target:   item.url,
				Referrer: item.referrer,
				Kind:     kind,
			})
			continue
		}

		if !res.Success() {
			s.logger.Debug("broken page", "url", item.url, "status", res.StatusCode)
			result.AddBroken(model.BrokenLink{
				Target:     item.url,
				Referrer:   item.referrer,
				StatusCode: res.StatusCode,
			})
			continue
		}

		result.AddPage(model.PageRecord{URL: item.url, StatusCode: res.StatusCode})
		if bar != nil {
			_ = bar.Add(1) //nolint:errcheck // Progress is observational only
		}

		links, err := s.extractor.Extract(item.url, bytes.NewReader(res.Body))
		if err != nil {
			s.logger.Debug("extraction failed", "url", item.url, "error", err)
			continue
		}

		for _, link := range links {
			target := normalizeURL(link)

			u, err := url.Parse(target)
			if err != nil {
				continue
			}
			if !SameRegistrableDomain(seed.Host, u.Host) {
				continue
			}
			if s.ignored(u.Path) {
				s.logger.Debug("ignored by pattern", "url", target)
				continue
			}
			if seen[target] {
				continue
			}
			seen[target] = true
			frontier = append(frontier, frontierItem{
				url:      target,
				depth:    item.depth + 1,
				referrer: item.url,
			})
		}
	}

	if bar != nil {
		_ = bar.Finish() //nolint:errcheck // Progress is observational only
	}

	result.Truncated = len(frontier) > 0
	result.Duration = time.Since(result.DateScanned)

	return result, nil
}

// newProgressBar creates the live page counter, or nil when disabled.
func (s *Spider) newProgressBar() *progressbar.ProgressBar {
	if s.progress == nil {
		return nil
	}
	return progressbar.NewOptions(s.maxPages,
		progressbar.OptionSetDescription("pages crawled"),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)
}

// ignored reports whether a URL path matches any ignore pattern.
func (s *Spider) ignored(path string) bool {
	if path == "" {
		path = "/"
	}
	for _, pattern := range s.ignorePatterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

// normalizeURL normalizes a URL for deduplication and recording:
// the fragment is stripped, scheme and host are lowercased, and trailing
// slashes are removed so /about/ and /about are one page. The root path
// becomes the bare authority.
func normalizeURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}

	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(u.Path, "/")

	return u.String()
}

// matchPattern checks if a path matches a glob pattern.
// Patterns can use:
//   - * to match any sequence of non-separator characters
//   - ? to match any single character
//
// Examples:
//   - "/admin/*" matches "/admin/dashboard", "/admin/users"
//   - "*.pdf" matches "/docs/file.pdf"
func matchPattern(pattern, path string) bool {
	// Prefix patterns like "/admin/*" should match the whole subtree.
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		if strings.HasPrefix(path, prefix+"/") || path == prefix {
			return true
		}
	}

	// Extension patterns like "*.pdf" match anywhere in the tree.
	if strings.HasPrefix(pattern, "*.") {
		if strings.HasSuffix(path, strings.TrimPrefix(pattern, "*")) {
			return true
		}
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Also try the filename alone for patterns without a separator.
	if strings.Contains(pattern, "*") && !strings.Contains(pattern, "/") {
		if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}

	return false
}
