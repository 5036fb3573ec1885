// Package main provides the entry point for the opml2md CLI.
//
// opml2md converts an OPML subscription list into a "starter pack"
// Markdown document, grouping feeds by their outline folder.
//
// Usage:
//
//	opml2md feeds.opml > starter-pack.md
//	opml2md --title "My Feeds" -o starter-pack.md feeds.opml
//
// See --help for all available options.
package main

// main is the entry point for opml2md.
func main() {
	Execute()
}
