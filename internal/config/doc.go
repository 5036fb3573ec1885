// Package config holds the configuration for the linkcheck crawler.
//
// Configuration comes from two places: CLI flags (which populate Config
// directly) and an optional YAML file (.sitetools) that can override crawl
// settings per host. The file is discovered in this order: an explicitly
// given path, the current directory, the XDG config directory, and the
// user's home directory.
//
// Validation happens once, after flag parsing and before any network
// activity, so misconfiguration fails fast with a specific sentinel error.
package config
