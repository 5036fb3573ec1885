// Package main provides the entry point for the linkcheck CLI.
//
// linkcheck crawls a website breadth-first, staying within the seed's
// domain, and reports every broken link together with the pages that
// reference it.
//
// Usage:
//
//	linkcheck https://example.com
//	linkcheck --max-pages 500 --markdown -o report.md https://example.com
//
// See --help for all available options.
package main

// main is the entry point for linkcheck.
func main() {
	Execute()
}
