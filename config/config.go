package config

import (
	"errors"
	"fmt"
	"net/textproto"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/retailkit/retailkit/httpclient"
	"github.com/retailkit/retailkit/logger"
)

// envPrefix is the prefix for environment variable overrides
// (e.g. RETAIL_BASE_URL, RETAIL_TOKEN).
const envPrefix = "RETAIL"

// Settings holds everything needed to construct a retailkit client.
type Settings struct {
	// BaseURL is the API base address.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Token is a static bearer token. Programmatic construction can
	// supply a dynamic httpclient.TokenSource instead.
	Token string `yaml:"token" mapstructure:"token"`

	// Timeout is the default per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Logging configures the structured logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	s.Logging.ApplyDefaults()
}

// Validate checks the settings via struct tags plus nested validation.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ClientConfig converts the settings into an engine configuration.
func (s *Settings) ClientConfig() httpclient.Config {
	cfg := httpclient.Config{
		BaseURL: s.BaseURL,
		Headers: s.Headers,
		Timeout: s.Timeout,
	}
	if s.Token != "" {
		cfg.Tokens = httpclient.StaticToken(s.Token)
	}
	return cfg
}

// Load reads settings from an optional YAML file, a .env file if one is
// present, and RETAIL_* environment variables. Environment variables win
// over file values. An empty path searches the working directory and
// $HOME/.retailkit for retailkit.yml.
func Load(path string) (*Settings, error) {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as key registrations so AutomaticEnv picks the
	// keys up during Unmarshal.
	v.SetDefault("base_url", "")
	v.SetDefault("token", "")
	v.SetDefault("timeout", "30s")
	v.SetDefault("headers", map[string]string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("retailkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.retailkit")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// Viper lowercases map keys; restore canonical MIME form so loaded
	// header names match hand-written ones.
	if len(s.Headers) > 0 {
		canonical := make(map[string]string, len(s.Headers))
		for k, val := range s.Headers {
			canonical[textproto.CanonicalMIMEHeaderKey(k)] = val
		}
		s.Headers = canonical
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
