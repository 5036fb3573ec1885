package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. Defaults mirror the tool's intended use:
// bounded audits of personal-sized sites, not fleet-scale crawling.
const (
	// DefaultMaxPages caps the number of pages fetched in one run.
	// 10000 comfortably covers a personal site while stopping runaway
	// crawls on calendar pages and other infinitely-generating URL spaces.
	DefaultMaxPages = 10000

	// DefaultTimeout is the fixed per-request timeout. Ten seconds is
	// generous for ordinary sites; anything slower is reported as a
	// timeout rather than stalling the whole sequential crawl.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the crawler in server logs.
	// A descriptive User-Agent lets site operators recognize audit traffic.
	DefaultUserAgent = "linkcheck/1.2 (+https://github.com/starikov/sitetools)"

	// AppName is the application name used for XDG directory paths.
	AppName = "sitetools"
)

// Config holds all options for a single crawl run.
// It is populated from CLI flags plus the optional config file and passed
// by dependency injection rather than global state.
type Config struct {
	// Seed is the starting URL. Must be well-formed with an http or
	// https scheme.
	Seed string

	// MaxPages caps the number of successfully fetched pages.
	MaxPages int

	// Timeout is the per-request timeout applied to every fetch.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// IgnorePatterns are URL path globs that are never enqueued,
	// e.g. "/tags/*" or "*.pdf". Loaded from the config file.
	IgnorePatterns []string

	// Verbose enables slog.LevelDebug output.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport emits the crawl result as indented JSON instead of the
	// human-readable report. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport emits the report as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, receives the report instead of stdout.
	ReportFile string

	// ConfigFilePath is an explicitly requested config file. Empty means
	// search the standard locations.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because most defaults are non-zero, and the constructor doubles as
// documentation of what those defaults are.
func NewConfig() *Config {
	return &Config{
		MaxPages:  DefaultMaxPages,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for sitetools.
// On Linux: ~/.config/sitetools
// On macOS: ~/Library/Application Support/sitetools
// On Windows: %APPDATA%\sitetools
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns a specific sentinel error
// describing the first problem found. It is called once after CLI parsing,
// before any fetching begins.
func (c *Config) Validate() error {
	if c.Seed == "" {
		return ErrNoSeed
	}

	u, err := url.Parse(c.Seed)
	if err != nil || u.Host == "" {
		return ErrMalformedSeed
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrUnsupportedScheme
	}

	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// SeedHost returns the host of the seed URL. Validate must have passed.
func (c *Config) SeedHost() string {
	u, err := url.Parse(c.Seed)
	if err != nil {
		return ""
	}
	return u.Host
}
