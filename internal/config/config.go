package config

import (
	"os"
	"time"
)

// Config holds the mail and tracking settings read from the environment
type Config struct {
	// BaseURL is the externally reachable address embedded in tracking links
	BaseURL string
	// DecoyURL is where recorded clicks are redirected
	DecoyURL string

	MailFrom string
	// MailMode selects the Mailer implementation: "smtp" (default) or "log"
	MailMode string

	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SMTPTimeout time.Duration

	ExportsDir string
}

// Load reads the configuration from environment variables
func Load() *Config {
	timeout := 10 * time.Second
	if v := os.Getenv("SMTP_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return &Config{
		BaseURL:     getEnv("TRACKING_BASE_URL", "http://localhost:8080"),
		DecoyURL:    getEnv("DECOY_URL", "http://localhost:8080/decoy"),
		MailFrom:    getEnv("MAIL_FROM", "it-support@example.com"),
		MailMode:    getEnv("MAIL_MODE", "smtp"),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnv("SMTP_PORT", "25"),
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		SMTPTimeout: timeout,
		ExportsDir:  getEnv("EXPORTS_DIR", "exports"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
