package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Remote struct {
		// BaseURL is the address of the prediction service.
		BaseURL string `yaml:"base_url" default:"http://localhost:8000" validate:"required,url"`
		// Timeout of zero leaves requests bounded only by their context.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"remote"`
	Dashboard struct {
		HistoryDays int `yaml:"history_days" default:"180" validate:"gte=1"`
		ListLimit   int `yaml:"list_limit" default:"50" validate:"gte=1,lte=500"`
	} `yaml:"dashboard"`
	Sessions struct {
		IdleTTL       time.Duration `yaml:"idle_ttl" default:"30m" validate:"gte=1m"`
		SweepInterval time.Duration `yaml:"sweep_interval" default:"1m" validate:"gte=1s"`
	} `yaml:"sessions"`
	RateLimit struct {
		GenerateBurst     float64 `yaml:"generate_burst" default:"3" validate:"gte=1"`
		GenerateRefillSec float64 `yaml:"generate_refill_per_sec" default:"0.1" validate:"gt=0"`
	} `yaml:"rate_limit"`
	TUI struct {
		LogFile string `yaml:"log_file" default:"nivesh-tui.log"`
	} `yaml:"tui"`
}

var validate = validator.New()

// Default returns a configuration with every default applied.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(b)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file falls back to defaults. Only the service address is
// taken from the environment.
func LoadWithEnv(path string) (*Config, error) {
	var (
		c   *Config
		err error
	)
	if _, statErr := os.Stat(path); statErr == nil {
		c, err = Load(path)
	} else {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("NIVESH_API_URL"); v != "" {
		c.Remote.BaseURL = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
