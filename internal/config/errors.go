package config

import "errors"

// Configuration validation errors.
// These are package-level sentinel errors rather than values created inside
// Validate() so callers can use errors.Is() for programmatic handling while
// still getting a human-readable message.
var (
	// ErrNoSeed is returned when no starting URL was given.
	ErrNoSeed = errors.New("no seed URL specified: provide a starting URL as the first argument")

	// ErrMalformedSeed is returned when the seed URL cannot be parsed or
	// has no host.
	ErrMalformedSeed = errors.New("malformed seed URL")

	// ErrUnsupportedScheme is returned when the seed URL scheme is not
	// http or https.
	ErrUnsupportedScheme = errors.New("unsupported seed URL scheme: must be http or https")

	// ErrInvalidMaxPages is returned when the page cap is not positive.
	// A cap of zero would mean fetching nothing at all.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrInvalidTimeout is returned when the per-request timeout is not
	// positive. A zero timeout would fail every request immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are requested. Only one output format is emitted per run.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
