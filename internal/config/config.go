// Package config loads the client configuration from command-line flags,
// environment variables, and an optional .env file.
package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	API    APIConfig
	Server ServerConfig
	Data   DataConfig
	Login  LoginConfig
	Pages  PagesConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level string
}

// APIConfig describes the remote travel planner API.
type APIConfig struct {
	// BaseURL is the root of the remote API, e.g. http://localhost:8080/api.
	BaseURL string
	// Timeout bounds each outgoing request.
	Timeout time.Duration
}

// ServerConfig holds the local web server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DataConfig holds local persistence settings.
type DataConfig struct {
	// Path is the directory for the embedded store that keeps the
	// credential, identity, and theme across restarts.
	Path string
}

// LoginConfig bounds login attempts per client address.
type LoginConfig struct {
	RateLimit float64
	Burst     int
}

// PagesConfig holds page behavior settings.
type PagesConfig struct {
	// RedirectDelay is how long success pages linger before navigating on.
	RedirectDelay time.Duration
}

// Load reads configuration with precedence:
// 1. Command-line flags (highest).
// 2. Environment variables.
// 3. .env file.
// 4. Defaults (lowest).
func Load() (*Config, error) {
	env := flag.String("env", "", "Environment (development, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	apiBaseURL := flag.String("api-base-url", "", "Base URL of the remote travel API")
	apiTimeout := flag.String("api-timeout", "", "Remote API request timeout (default: 30s)")
	port := flag.String("port", "", "Local web server port (default: 3000)")
	dataPath := flag.String("data-path", "", "Directory for local client state (default: ./data)")
	redirectDelay := flag.String("redirect-delay", "", "Delay before success pages navigate on (default: 2s)")
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: firstOf(*env, os.Getenv("TRAVEL_ENV"), "development"),
		},
		Logger: LoggerConfig{
			Level: firstOf(*logLevel, os.Getenv("TRAVEL_LOG_LEVEL"), "info"),
		},
		API: APIConfig{
			BaseURL: firstOf(*apiBaseURL, os.Getenv("TRAVEL_API_BASE_URL"), "http://localhost:8080/api"),
		},
		Server: ServerConfig{
			Port: firstOf(*port, os.Getenv("TRAVEL_PORT"), "3000"),
		},
		Data: DataConfig{
			Path: firstOf(*dataPath, os.Getenv("TRAVEL_DATA_PATH"), "./data"),
		},
	}

	var err error
	if cfg.API.Timeout, err = durationOf(firstOf(*apiTimeout, os.Getenv("TRAVEL_API_TIMEOUT")), 30*time.Second); err != nil {
		return nil, fmt.Errorf("invalid api timeout: %w", err)
	}
	if cfg.Server.ReadTimeout, err = durationOf(os.Getenv("TRAVEL_READ_TIMEOUT"), 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = durationOf(os.Getenv("TRAVEL_WRITE_TIMEOUT"), 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = durationOf(os.Getenv("TRAVEL_IDLE_TIMEOUT"), 60*time.Second); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}
	if cfg.Pages.RedirectDelay, err = durationOf(firstOf(*redirectDelay, os.Getenv("TRAVEL_REDIRECT_DELAY")), 2*time.Second); err != nil {
		return nil, fmt.Errorf("invalid redirect delay: %w", err)
	}
	if cfg.Login.RateLimit, err = floatOf(os.Getenv("TRAVEL_LOGIN_RPS"), 1); err != nil {
		return nil, fmt.Errorf("invalid login rate limit: %w", err)
	}
	if cfg.Login.Burst, err = intOf(os.Getenv("TRAVEL_LOGIN_BURST"), 5); err != nil {
		return nil, fmt.Errorf("invalid login burst: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base url %q is not an absolute URL", c.API.BaseURL)
	}
	if c.Pages.RedirectDelay < 0 {
		return fmt.Errorf("redirect delay must not be negative")
	}
	if c.Login.RateLimit <= 0 || c.Login.Burst <= 0 {
		return fmt.Errorf("login rate limit and burst must be positive")
	}
	return nil
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func durationOf(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func floatOf(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func intOf(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
