package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string `env:"APP_ADDR" envDefault:":3000"`
	BackendOrigin string `env:"BACKEND_ORIGIN" envDefault:"http://localhost:8000"`
	DashboardURL  string `env:"DASHBOARD_URL"`

	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`
	SessionSecure bool   `env:"SESSION_SECURE" envDefault:"false"`
	// SessionMaxAge is the cookie lifetime in seconds.
	SessionMaxAge int `env:"SESSION_MAX_AGE" envDefault:"2592000"`

	// SubmitGuard is one of "off", "reject" or "ignore".
	SubmitGuard string `env:"SUBMIT_GUARD" envDefault:"reject"`
	// FormValidation is one of "none" or "required".
	FormValidation string `env:"FORM_VALIDATION" envDefault:"none"`
	ClearOnSuccess bool   `env:"CLEAR_ON_SUCCESS" envDefault:"false"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// TokenFile is where the CLI keeps its session token. Empty means the
	// user config directory.
	TokenFile string `env:"TOKEN_FILE"`
}

// New loads configuration from a .env file (if present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SubmitGuard {
	case "off", "reject", "ignore":
	default:
		return fmt.Errorf("invalid SUBMIT_GUARD %q: want off, reject or ignore", c.SubmitGuard)
	}
	if err := validateFormValidation(c.FormValidation); err != nil {
		return err
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	return nil
}

// CLI holds the configuration of the portalctl command. It shares the
// environment variables of the server but needs no session secret.
type CLI struct {
	BackendOrigin  string `env:"BACKEND_ORIGIN" envDefault:"http://localhost:8000"`
	TokenFile      string `env:"TOKEN_FILE"`
	FormValidation string `env:"FORM_VALIDATION" envDefault:"none"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"warn"`
}

// ParseCLI reads the CLI configuration from a .env file (if present) and the environment.
func ParseCLI() (*CLI, error) {
	_ = godotenv.Load()
	cfg := &CLI{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validateFormValidation(cfg.FormValidation); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateFormValidation(name string) error {
	switch name {
	case "none", "required":
		return nil
	}
	return fmt.Errorf("invalid FORM_VALIDATION %q: want none or required", name)
}
