package httpclient

import (
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP client. It is validated and normalized once
// in New and treated as read-only afterwards.
type Config struct {
	// BaseURL is the base URL prepended to all request paths. Required.
	// Trailing slashes are stripped during normalization.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Headers are default headers applied to all requests. Per-request
	// headers override these on key collision.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Tokens supplies the bearer token for each request. Nil means no auth.
	Tokens TokenSource `yaml:"-" mapstructure:"-"`

	// Timeout is the default per-request timeout. Defaults to 30s.
	// Individual requests can override it.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return NewValidationError("base URL is required")
	}
	if c.Timeout <= 0 {
		return NewValidationError("timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return NewValidationError(err.Error())
		}
	}
	return nil
}

// normalize strips trailing slashes from the base URL so URL building is
// insensitive to how the caller wrote it.
func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}
