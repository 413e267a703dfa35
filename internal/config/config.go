// Package config loads the server configuration from a YAML file, with a few values
// overridable from the environment or a .env file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	EnvRedisURL   = "REDIS_URL"
	EnvLogLevel   = "LOG_LEVEL"
	EnvConfigJSON = "CONFIG_JSON"

	DefaultPollInterval   = 2 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

type Endpoint struct {
	Name        string            `yaml:"name" json:"name"`
	RPCURL      string            `yaml:"rpc_url" json:"rpc_url"`
	AuthHeaders map[string]string `yaml:"auth_headers" json:"auth_headers"`
}

type BeaconEndpoint struct {
	Name      string `yaml:"name" json:"name"`
	BeaconURL string `yaml:"beacon_url" json:"beacon_url"`
}

type Polling struct {
	Interval string `yaml:"interval" json:"interval"`
	Timeout  string `yaml:"timeout" json:"timeout"`
}

type Config struct {
	Endpoints       []Endpoint       `yaml:"endpoints" json:"endpoints"`
	BeaconURLs      []BeaconEndpoint `yaml:"beacon_urls" json:"beacon_urls"`
	Polling         Polling          `yaml:"polling" json:"polling"`
	LogLevel        string           `yaml:"log_level" json:"log_level"`
	FocilEnabled    bool             `yaml:"focil_enabled" json:"focil_enabled"`
	MaxTransactions uint             `yaml:"max_transactions" json:"max_transactions"`
	RedisURL        string           `yaml:"redis_url" json:"redis_url"`

	pollInterval   time.Duration
	requestTimeout time.Duration
}

// Load reads the config at path. When the file doesn't exist, the JSON in CONFIG_JSON
// is used instead. A .env file in the working directory is loaded first, without
// overriding variables already set.
func Load(path string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return Parse(data, yaml.Unmarshal)
	case errors.Is(err, fs.ErrNotExist):
		raw := os.Getenv(EnvConfigJSON)
		if raw == "" {
			return nil, fmt.Errorf("config file %q not found and %s is not set", path, EnvConfigJSON)
		}
		return Parse([]byte(raw), json.Unmarshal)
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}
}

// Parse decodes data with unmarshal, applies the env overrides and validates the result.
func Parse(data []byte, unmarshal func([]byte, any) error) (*Config, error) {
	var cfg Config
	err := unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv(EnvRedisURL); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Endpoints) == 0 {
		return errors.New("at least one endpoint is required")
	}

	seen := make(map[string]struct{}, len(c.Endpoints))
	for i, e := range c.Endpoints {
		if e.Name == "" || e.RPCURL == "" {
			return fmt.Errorf("endpoint %d: name and rpc_url are required", i)
		}
		if _, ok := seen[e.Name]; ok {
			return fmt.Errorf("endpoint %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	if c.FocilEnabled && len(c.BeaconURLs) == 0 {
		return errors.New("focil_enabled requires at least one beacon url")
	}
	for i, b := range c.BeaconURLs {
		if b.BeaconURL == "" {
			return fmt.Errorf("beacon url %d: beacon_url is required", i)
		}
	}

	var err error
	c.pollInterval, err = duration(c.Polling.Interval, DefaultPollInterval)
	if err != nil {
		return fmt.Errorf("polling interval: %w", err)
	}
	c.requestTimeout, err = duration(c.Polling.Timeout, DefaultRequestTimeout)
	if err != nil {
		return fmt.Errorf("polling timeout: %w", err)
	}

	if c.LogLevel != "" {
		_, err = logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}

	return nil
}

func duration(s string, def time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}

func (c *Config) PollInterval() time.Duration {
	return c.pollInterval
}

// RequestTimeout bounds every request made to an execution client.
func (c *Config) RequestTimeout() time.Duration {
	return c.requestTimeout
}

// ClientNames returns the endpoint names in configuration order.
func (c *Config) ClientNames() []string {
	names := make([]string, 0, len(c.Endpoints))
	for _, e := range c.Endpoints {
		names = append(names, e.Name)
	}
	return names
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
