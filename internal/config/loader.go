package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".sitetools"

// ErrConfigNotFound is returned when the configuration file does not exist.
// Callers decide whether that matters: an explicitly requested file that is
// missing is an error, a missing default file is not.
var ErrConfigNotFound = errors.New("configuration file not found")

// HostConfig holds crawl overrides for a single host.
type HostConfig struct {
	// UserAgent overrides the User-Agent header for this host.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxPages overrides the page cap for this host. Zero keeps the
	// global value.
	MaxPages int `yaml:"maxPages,omitempty"`

	// Timeout overrides the per-request timeout. Zero keeps the global
	// value.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// IgnorePatterns are URL path globs that are never enqueued when
	// crawling this host.
	IgnorePatterns []string `yaml:"ignorePatterns,omitempty"`
}

// File represents the .sitetools configuration file.
type File struct {
	// Hosts maps host names (e.g. "example.com") to their overrides.
	Hosts map[string]HostConfig `yaml:"hosts,omitempty"`

	// Defaults applies to every host unless overridden.
	Defaults HostConfig `yaml:"defaults,omitempty"`
}

// HostConfig returns the merged configuration for a host: defaults with
// any host-specific overrides applied on top.
func (f *File) HostConfig(host string) HostConfig {
	result := f.Defaults

	if hc, ok := f.Hosts[host]; ok {
		if hc.UserAgent != "" {
			result.UserAgent = hc.UserAgent
		}
		if hc.MaxPages > 0 {
			result.MaxPages = hc.MaxPages
		}
		if hc.Timeout > 0 {
			result.Timeout = hc.Timeout
		}
		if len(hc.IgnorePatterns) > 0 {
			result.IgnorePatterns = hc.IgnorePatterns
		}
	}

	return result
}

// LoadConfigFile loads host overrides from a YAML file.
// Returns ErrConfigNotFound when the file does not exist.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Hosts == nil {
		f.Hosts = make(map[string]HostConfig)
	}

	return &f, nil
}

// FindConfigFile searches for the configuration file:
//  1. The explicitly given path, if any
//  2. .sitetools in the current directory
//  3. .sitetools in the XDG config directory
//  4. .sitetools in the user's home directory
//
// Returns the path if found, or the empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}

	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply merges a host's file overrides into the Config. Flag values win
// only where the file has nothing to say; explicit file settings replace
// the built-in defaults.
func (c *Config) Apply(hc HostConfig) {
	if hc.UserAgent != "" {
		c.UserAgent = hc.UserAgent
	}
	if hc.MaxPages > 0 && c.MaxPages == DefaultMaxPages {
		c.MaxPages = hc.MaxPages
	}
	if hc.Timeout > 0 && c.Timeout == DefaultTimeout {
		c.Timeout = hc.Timeout
	}
	if len(hc.IgnorePatterns) > 0 {
		c.IgnorePatterns = hc.IgnorePatterns
	}
}
