package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EmailConfig holds the outbound SMTP relay settings.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type Config struct {
	Port        int
	Environment string

	AllowedOrigins []string

	RateLimitWindow time.Duration
	RateLimitMax    int64

	Email EmailConfig

	AdminToken string

	MaxFileSize      int64
	AllowedFileTypes []string

	DataDir string
}

// Load reads the configuration from the environment. Defaults mirror a
// local development setup; EMAIL_* and ADMIN_TOKEN have no safe defaults
// and must be set in production.
func Load() Config {
	return Config{
		Port:        envInt("PORT", 3000),
		Environment: envString("ENVIRONMENT", "development"),

		AllowedOrigins: envList("ALLOWED_ORIGINS", []string{"http://localhost:5500"}),

		RateLimitWindow: time.Duration(envInt64("RATE_LIMIT_WINDOW_MS", 15*60*1000)) * time.Millisecond,
		RateLimitMax:    envInt64("RATE_LIMIT_MAX_REQUESTS", 5),

		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     envInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     os.Getenv("EMAIL_FROM"),
			To:       os.Getenv("EMAIL_TO"),
		},

		AdminToken: os.Getenv("ADMIN_TOKEN"),

		MaxFileSize: envInt64("MAX_FILE_SIZE", 5*1024*1024),
		AllowedFileTypes: envList("ALLOWED_FILE_TYPES", []string{
			"image/jpeg",
			"image/png",
			"image/gif",
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}),

		DataDir: envString("DATA_DIR", "data"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
