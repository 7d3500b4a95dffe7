// Package config loads the process-wide configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gdgqassim/robo-roadmap/internal"
)

const (
	DefaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-2.5-flash"
	DefaultBackend  = BackendREST
	DefaultLanguage = "English"
)

// Dispatcher backends
const (
	BackendREST   = "rest"
	BackendGenAI  = "genai"
	BackendOpenAI = "openai"
)

// Config is the immutable application configuration
type Config struct {
	APIKey   string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string        `yaml:"base_url" mapstructure:"base_url"`
	Model    string        `yaml:"model" mapstructure:"model"`
	Backend  string        `yaml:"backend" mapstructure:"backend"`
	Language string        `yaml:"language" mapstructure:"language"`
	Catalog  string        `yaml:"catalog" mapstructure:"catalog"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Log      LogConfig     `yaml:"log" mapstructure:"log"`

	// File is the config file that was read, empty if none.
	File string `yaml:"-" mapstructure:"-"`
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// HasAPIKey reports whether a credential is configured
func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Validate checks values that would make every request fail locally
func (c Config) Validate() error {
	switch c.Backend {
	case BackendREST, BackendGenAI, BackendOpenAI:
	default:
		return &internal.ConfigError{
			Key: "backend",
			Err: fmt.Errorf("unsupported backend %q (supported: %s, %s, %s)", c.Backend, BackendREST, BackendGenAI, BackendOpenAI),
		}
	}
	if strings.TrimSpace(c.Model) == "" {
		return &internal.ConfigError{Key: "model", Err: errors.New("must not be empty")}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return &internal.ConfigError{Key: "base_url", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &internal.ConfigError{Key: "base_url", Err: fmt.Errorf("scheme must be http or https, got %q", u.Scheme)}
	}
	if strings.TrimSpace(c.Language) == "" {
		return &internal.ConfigError{Key: "language", Err: errors.New("must not be empty")}
	}
	if c.Timeout < 0 {
		return &internal.ConfigError{Key: "timeout", Err: errors.New("must not be negative")}
	}
	return nil
}

// Redacted returns a copy safe to print
func (c Config) Redacted() Config {
	if c.HasAPIKey() {
		k := c.APIKey
		if len(k) > 4 {
			k = k[len(k)-4:]
		}
		c.APIKey = "****" + k
	}
	return c
}
