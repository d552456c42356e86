package client

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config groups the settings NewFromEnv reads from environment variables with
// the prefix "OCS_". Example: OCS_BASE_URL=http://search:9000 OCS_SITE=bcs.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL"     default:"http://localhost:9000" validate:"required,url"`
	Site        string        `envconfig:"SITE"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"                   validate:"gt=0"`
	Debug       bool          `envconfig:"DEBUG"        default:"false"`
}

// LoadConfig populates Config from environment variables (prefix OCS_).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("OCS", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid client configuration: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into client options.
func (cfg Config) Options() []Option {
	opts := []Option{WithHTTPTimeout(cfg.HTTPTimeout), WithDebugLogging(cfg.Debug)}
	if cfg.Site != "" {
		opts = append(opts, WithSite(cfg.Site))
	}
	return opts
}

// NewFromEnv constructs a Client from LoadConfig. Explicit opts are applied
// after the environment-derived ones and win.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}
