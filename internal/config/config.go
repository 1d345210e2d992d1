package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	teamsd "github.com/information-sharing-networks/teamsd"
)

// Config is shared by the ui-api gateway and the cli. Values are read from the environment.
type Config struct {
	Environment     string        `env:"ENVIRONMENT,default=dev"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=3000"`
	LogLevel        string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	APIBaseURL      string        `env:"API_BASE_URL,default=http://localhost:8080"`
	ClientTimeout   time.Duration `env:"CLIENT_TIMEOUT,default=0s"` // 0 = no timeout on backend calls
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS,separator=|"`
	MaxRequestBytes int64         `env:"MAX_API_REQUEST_SIZE,default=65536"` // 64KB
	RateLimitRPS    int32         `env:"RATE_LIMIT_RPS,default=100"`         // 0 disables rate limiting
	RateLimitBurst  int32         `env:"RATE_LIMIT_BURST,default=20"`
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Addr returns host:port for the gateway listener
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func validateConfig(cfg *Config) error {
	if !teamsd.ValidEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, perf, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}
	if cfg.ClientTimeout < 0 {
		return fmt.Errorf("client timeout must not be negative, got %v", cfg.ClientTimeout)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}
	if err := ValidateBaseURL(cfg.APIBaseURL); err != nil {
		return err
	}

	if cfg.MaxRequestBytes < 1 {
		return fmt.Errorf("MAX_API_REQUEST_SIZE must be at least 1, got %d", cfg.MaxRequestBytes)
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if cfg.Environment == "prod" || cfg.Environment == "staging" {
		if len(cfg.AllowedOrigins) == 0 {
			return fmt.Errorf("ALLOWED_ORIGINS must be set in %v", cfg.Environment)
		}
		if cfg.AllowedOrigins[0] == "*" {
			return fmt.Errorf("ALLOWED_ORIGINS must not be set to '*' in %v", cfg.Environment)
		}
	}

	// default to all origins when not in prod/staging
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return nil
}

// ValidateBaseURL checks the backend location is an absolute http(s) URL
func ValidateBaseURL(baseURL string) error {
	u, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %s", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL does not include a valid scheme (http or https): %s", baseURL)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("API_BASE_URL does not include a host: %s", baseURL)
	}
	return nil
}
