package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL"`

	// Bot verification (reCAPTCHA v3)
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaVerifyURL string  `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0.5"`

	// Transactional mail relay
	MailAPIKey  string `env:"MAIL_API_KEY"`
	MailBaseURL string `env:"MAIL_BASE_URL" envDefault:"https://api.resend.com"`
	MailFrom    string `env:"MAIL_FROM" envDefault:"Foliolink <notifications@foliolink.app>"`

	// Contact rate limiting
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"120"`
	RateLimitMaxRequests   int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"3"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for .env file. godotenv never overwrites
	// variables that are already set, so the process environment wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
