// Package report renders crawl results for humans.
//
// Two writers share the Writer interface: SimpleWriter produces the
// terminal text report (directory tree of visited pages plus the broken
// link list), and MarkdownWriter produces the same content as GitHub
// Flavored Markdown for sharing. JSON output needs no writer here; the
// CLI encodes the CrawlResult directly.
//
// Broken links are grouped by target: one line per failing URL with its
// status or error kind, followed by the sorted list of pages that linked
// to it.
package report
