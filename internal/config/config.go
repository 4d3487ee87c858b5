// Package config loads xlfmt settings from the environment.  Every variable
// is prefixed with XLFMT_; command-line flags override the loaded values.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/TsubasaBE/go-xlnumfmt/culture"
)

// Prefix is the environment variable prefix.
const Prefix = "xlfmt"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all xlfmt settings.
type Config struct {
	// --- Rendering ---
	Culture  string `envconfig:"CULTURE" default:"en-US"`
	Date1904 bool   `envconfig:"DATE1904" default:"false"`
	// Upper bound of parsed formats kept in memory.
	CacheSize int `envconfig:"CACHE_SIZE" default:"1024"`

	// --- Output ---
	Output string `envconfig:"OUTPUT" default:"text"`

	// --- Logging ---
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := culture.Lookup(c.Culture); err != nil {
		return fmt.Errorf("config: XLFMT_CULTURE: %w", err)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("config: XLFMT_CACHE_SIZE must be > 0, got %d", c.CacheSize)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("config: XLFMT_OUTPUT must be %q or %q, got %q", OutputText, OutputYAML, c.Output)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: XLFMT_LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: XLFMT_LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// Load reads the environment and returns a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
