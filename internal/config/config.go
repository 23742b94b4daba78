package config

import (
	"fmt"
	"net/url"
)

// Config holds all runtime configuration parameters
type Config struct {
	InputFile           string
	DBPath              string
	MaxURLsPerDomain    int
	Concurrency         int
	RequestTimeoutMs    int
	ExcludedExtensions  []string
	MetricsPath         string
	ProgressIntervalSec int
}

// DefaultExcludedExtensions lists URL suffixes that are never enqueued
// (binary/document content that cannot contain crawlable links)
var DefaultExcludedExtensions = []string{".jpg", ".jpeg", ".pdf", ".png"}

// New returns a Config populated with defaults for unset fields
func New() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for unspecified fields
func applyDefaults(cfg *Config) {
	if cfg.DBPath == "" {
		cfg.DBPath = "emails.db"
	}
	if cfg.MaxURLsPerDomain == 0 {
		cfg.MaxURLsPerDomain = 100
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 5
	}
	if cfg.RequestTimeoutMs == 0 {
		cfg.RequestTimeoutMs = 5000
	}
	if len(cfg.ExcludedExtensions) == 0 {
		cfg.ExcludedExtensions = DefaultExcludedExtensions
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "metrics.log"
	}
	if cfg.ProgressIntervalSec == 0 {
		cfg.ProgressIntervalSec = 10
	}
}

// Validate checks that required fields are present and values are sensible
func (cfg *Config) Validate() error {
	applyDefaults(cfg)

	if cfg.MaxURLsPerDomain < 1 {
		return fmt.Errorf("maxurls must be >= 1")
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1")
	}
	if cfg.RequestTimeoutMs < 1000 {
		return fmt.Errorf("request timeout must be >= 1000ms")
	}
	return nil
}

// IsValidURL reports whether s is an absolute http(s) URL with a host
func IsValidURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
