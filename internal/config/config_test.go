package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfigDefaults tests that the constructor sets documented defaults.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.MaxPages != DefaultMaxPages {
		t.Errorf("MaxPages = %d, want %d", cfg.MaxPages, DefaultMaxPages)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
}

// TestConfigValidate tests each validation failure class.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) { c.Seed = "https://example.com" },
			wantErr: nil,
		},
		{
			name:    "no seed",
			mutate:  func(_ *Config) {},
			wantErr: ErrNoSeed,
		},
		{
			name:    "malformed seed",
			mutate:  func(c *Config) { c.Seed = "://bad" },
			wantErr: ErrMalformedSeed,
		},
		{
			name:    "seed without host",
			mutate:  func(c *Config) { c.Seed = "https://" },
			wantErr: ErrMalformedSeed,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(c *Config) { c.Seed = "ftp://example.com" },
			wantErr: ErrUnsupportedScheme,
		},
		{
			name: "zero max pages",
			mutate: func(c *Config) {
				c.Seed = "https://example.com"
				c.MaxPages = 0
			},
			wantErr: ErrInvalidMaxPages,
		},
		{
			name: "negative timeout",
			mutate: func(c *Config) {
				c.Seed = "https://example.com"
				c.Timeout = -time.Second
			},
			wantErr: ErrInvalidTimeout,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.Seed = "https://example.com"
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSeedHost tests host extraction from the seed URL.
func TestSeedHost(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Seed = "https://example.com:8080/start"

	if got := cfg.SeedHost(); got != "example.com:8080" {
		t.Errorf("SeedHost() = %q, want %q", got, "example.com:8080")
	}
}
