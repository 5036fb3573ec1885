// Package model defines the data structures shared across sitetools.
//
// The central type is CrawlResult, which accumulates everything a single
// crawl run produces: the visited pages, the broken links with their
// referrers, and the termination state. All structures live only for the
// duration of a run; nothing here is persisted.
//
// PageTree converts the set of visited URL paths into a directory-style
// tree for rendering. Building the tree is a pure function of the visited
// set, so it can be tested without any network involvement.
package model
