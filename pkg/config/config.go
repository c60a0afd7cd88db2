package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	AIProvider     string
	GeminiAPIKey   string
	OllamaBaseURL  string
	OllamaModel    string
	EmailUsername  string
	EmailPassword  string
	SMTPHost       string
	SMTPPort       int
	MaxUploadBytes int64
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	maxUploadMB := int64(16)
	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUploadMB = parsed
		}
	}

	smtpPort := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			smtpPort = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AIProvider:     getEnv("AI_PROVIDER", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", ""),
		OllamaModel:    getEnv("OLLAMA_MODEL", ""),
		EmailUsername:  getEnv("EMAIL_USERNAME", ""),
		EmailPassword:  getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       smtpPort,
		MaxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// EmailConfigured reports whether both SMTP credentials are present.
// Credentials are checked lazily at send time, not at startup.
func (c *Config) EmailConfigured() bool {
	return c.EmailUsername != "" && c.EmailPassword != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
