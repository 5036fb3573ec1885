// Package crawler implements the same-domain link checker.
//
// # Architecture
//
// The Spider performs a strictly sequential breadth-first traversal from a
// seed URL. A FIFO frontier of (url, depth, referrer) items guarantees
// first-discovered, first-fetched order; a seen-set keyed on normalized
// URLs guarantees each URL is fetched at most once. One fetch is in flight
// at a time, so the frontier and seen-set are mutated by a single loop and
// need no locking. This absence of concurrency is deliberate: the tool is
// meant for bounded personal-site audits, not fleet-scale crawling.
//
// # Capabilities
//
// The Spider does not implement HTTP or HTML itself. It consumes two
// capabilities, both replaceable in tests:
//
//   - Fetcher: given a URL, returns a status code and body, or a transport
//     error. The default is a net/http client with a fixed per-request
//     timeout.
//   - LinkExtractor: given a page body, returns the absolute href targets.
//     The default walks the document with golang.org/x/net/html.
//
// # URL normalization
//
// Before deduplication and recording, URLs are normalized: the fragment is
// stripped, scheme and host are lowercased, and trailing slashes are
// removed (the root path becomes the bare authority). Trailing-slash and
// slashless forms of the same path therefore count as one page.
//
// # Failure semantics
//
// A transport failure on the seed aborts the run with ErrSeedUnreachable.
// Every other failed fetch, whether a non-2xx status or a transport
// error, is recorded as a broken link with its referring page and never
// stops the traversal. No retries are performed.
package crawler
