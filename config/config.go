// Package config loads gateway client settings from YAML files and the
// environment.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skyway-ai/skyway-go/gateway"
)

// Config holds gateway client settings.
//
//	api_key: sk-...
//	virtual_key: my-openai-key
//	base_url: https://api.skyway.ai/v1
//	timeout: 60s
//	headers:
//	  x-team: research
type Config struct {
	APIKey            string            `yaml:"api_key"`
	VirtualKey        string            `yaml:"virtual_key"`
	Provider          string            `yaml:"provider"`
	ProviderAuthToken string            `yaml:"provider_auth_token"`
	ConfigID          string            `yaml:"config"`
	CustomHost        string            `yaml:"custom_host"`
	BaseURL           string            `yaml:"base_url"`
	Timeout           Duration          `yaml:"timeout"`
	Headers           map[string]string `yaml:"headers"`
}

// Duration wraps time.Duration so YAML values like "60s" parse.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("timeout must be a duration string like \"60s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing timeout: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadWithEnv reads a YAML config file and applies SKYWAY_* environment
// overrides on top.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// FromEnv builds a config from SKYWAY_* environment variables alone.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

// applyEnv overrides fields from the environment. Set variables win over
// file values.
func (c *Config) applyEnv() {
	setFromEnv(&c.APIKey, "SKYWAY_API_KEY")
	setFromEnv(&c.VirtualKey, "SKYWAY_VIRTUAL_KEY")
	setFromEnv(&c.Provider, "SKYWAY_PROVIDER")
	setFromEnv(&c.ProviderAuthToken, "SKYWAY_PROVIDER_AUTH_TOKEN")
	setFromEnv(&c.ConfigID, "SKYWAY_CONFIG")
	setFromEnv(&c.CustomHost, "SKYWAY_CUSTOM_HOST")
	setFromEnv(&c.BaseURL, "SKYWAY_BASE_URL")

	if v := os.Getenv("SKYWAY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration(d)
		}
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Options translates the config into gateway client options.
func (c *Config) Options() []gateway.Option {
	var opts []gateway.Option

	if c.APIKey != "" {
		opts = append(opts, gateway.WithAPIKey(c.APIKey))
	}
	if c.VirtualKey != "" {
		opts = append(opts, gateway.WithVirtualKey(c.VirtualKey))
	}
	if c.Provider != "" {
		opts = append(opts, gateway.WithProvider(c.Provider))
	}
	if c.ProviderAuthToken != "" {
		opts = append(opts, gateway.WithProviderAuth(c.ProviderAuthToken))
	}
	if c.ConfigID != "" {
		opts = append(opts, gateway.WithConfig(c.ConfigID))
	}
	if c.CustomHost != "" {
		opts = append(opts, gateway.WithCustomHost(c.CustomHost))
	}
	if c.BaseURL != "" {
		opts = append(opts, gateway.WithBaseURL(c.BaseURL))
	}
	if c.Timeout != 0 {
		opts = append(opts, gateway.WithTimeout(time.Duration(c.Timeout)))
	}
	for name, value := range c.Headers {
		opts = append(opts, gateway.WithHeader(name, value))
	}

	return opts
}

// NewClient builds a gateway client from the config.
func (c *Config) NewClient() (*gateway.Client, error) {
	return gateway.New(c.Options()...)
}
