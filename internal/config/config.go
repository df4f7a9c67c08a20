package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	defaultBaseURL = "https://isdayoff.ru/api"
	defaultContact = "github.com/username/isdayoff"
	defaultTimeout = 10 * time.Second
)

var countryCodePattern = regexp.MustCompile(`^[a-z]{2}$`)

// Config represents application configuration
type Config struct {
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log"`
}

// APIConfig represents isdayoff.ru client configuration
type APIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Contact    string `mapstructure:"contact"` // Sent in User-Agent
	Timeout    string `mapstructure:"timeout"`
	Country    string `mapstructure:"country"`      // ru, by, kz, uz, tr...
	PreHoliday bool   `mapstructure:"pre_holiday"`  // Report shortened pre-holiday days as 2
	SixDayWeek bool   `mapstructure:"six_day_week"` // Six-day working week
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to stderr
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, environment and defaults.
// An explicit configPath must exist; without one, a missing config file
// in the search path falls back to defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", defaultBaseURL)
	v.SetDefault("api.contact", defaultContact)
	v.SetDefault("api.timeout", defaultTimeout.String())
	v.SetDefault("api.country", "")
	v.SetDefault("api.pre_holiday", false)
	v.SetDefault("api.six_day_week", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.isdayoff")
		v.AddConfigPath("/etc/isdayoff")
	}

	// ISDAYOFF_API_COUNTRY overrides api.country
	v.SetEnvPrefix("isdayoff")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.normalize()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	c.API.Contact = strings.TrimSpace(c.API.Contact)
	c.API.Country = strings.ToLower(strings.TrimSpace(c.API.Country))
	c.Log.File = strings.TrimSpace(c.Log.File)
	c.Log.Level = strings.TrimSpace(c.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate API config
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is invalid: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got '%s'", c.API.BaseURL)
	}
	if c.API.Country != "" && !countryCodePattern.MatchString(c.API.Country) {
		return fmt.Errorf("api.country must be a two-letter country code, got '%s'", c.API.Country)
	}
	if c.API.Timeout != "" {
		if _, err := time.ParseDuration(c.API.Timeout); err != nil {
			return fmt.Errorf("api.timeout is invalid: %w", err)
		}
	}

	// Validate Log config
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level is invalid: %w", err)
		}
	}

	return nil
}

// GetTimeout returns HTTP client timeout duration
func (c *APIConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return defaultTimeout
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultTimeout
	}
	return duration
}

// GetLevel returns the zap level, info when unset
func (c *LogConfig) GetLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
