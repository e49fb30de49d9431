package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CMS       CMSConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CMSConfig holds headless-CMS API configuration
type CMSConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	DefaultLocale string        `mapstructure:"default_locale"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// StoreConfig holds state-store configuration
type StoreConfig struct {
	Type     string `mapstructure:"type"` // "memory", "file" or "redis"
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis_url"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
	CMS   int `mapstructure:"cms"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/lumina/")

	// Environment variable settings
	v.SetEnvPrefix("LUMINA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// CMS defaults
	v.SetDefault("cms.api_key", "") // registered so the env override binds
	v.SetDefault("cms.base_url", "https://cms.lumina.agency/api")
	v.SetDefault("cms.default_locale", "en")
	v.SetDefault("cms.timeout", "30s")

	// Store defaults
	v.SetDefault("store.type", "memory")
	v.SetDefault("store.path", "./data/state")
	v.SetDefault("store.redis_url", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.cms", 600)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.CMS.APIKey == "" {
		return fmt.Errorf("CMS API key is required (set LUMINA_CMS_API_KEY)")
	}

	switch config.Store.Type {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("store type must be 'memory', 'file' or 'redis', got: %s", config.Store.Type)
	}

	if config.Store.Type == "file" && config.Store.Path == "" {
		return fmt.Errorf("store path is required when store type is 'file'")
	}

	if config.Store.Type == "redis" && config.Store.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when store type is 'redis'")
	}

	return nil
}
