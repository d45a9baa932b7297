// Package config loads the lexicon-web configuration from environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds HTTP server settings for the frontend.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LexiconConfig holds upstream lexicon API settings.
type LexiconConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"LEXICON_BASE_URL"   env-default:"http://localhost:5000"`
	PerPage   int           `yaml:"per_page"   env:"LEXICON_PER_PAGE"   env-default:"0"`
	Timeout   time.Duration `yaml:"timeout"    env:"LEXICON_TIMEOUT"    env-default:"30s"`
	UserAgent string        `yaml:"user_agent" env:"LEXICON_USER_AGENT" env-default:"lexicon-viewer/0.1.0"`
}

// RedisConfig holds response cache settings.
// An empty Addr disables the cache entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false"`
}

// Validate checks invariants cleanenv cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	if c.Lexicon.BaseURL == "" {
		return fmt.Errorf("lexicon base URL is required")
	}
	u, err := url.Parse(c.Lexicon.BaseURL)
	if err != nil {
		return fmt.Errorf("lexicon base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("lexicon base URL must be http or https (got %q)", c.Lexicon.BaseURL)
	}

	if c.Lexicon.PerPage < 0 {
		return fmt.Errorf("lexicon per_page must be >= 0 (got %d)", c.Lexicon.PerPage)
	}

	return nil
}
