package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// AI provider settings
	AIProvider    string
	GroqAPIKey    string
	GroqModel     string
	OllamaBaseURL string
	OllamaModel   string

	// Default SMTP settings, used when the user has no own credentials
	EmailHost         string
	EmailPort         int
	EmailUseTLS       bool
	EmailHostUser     string
	EmailHostPassword string
	DefaultFromEmail  string

	// Upload and text limits
	MaxUploadSize int64
	MaxTextLength int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=summarizer port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		AIProvider:    getEnv("AI_PROVIDER", "groq"),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModel:     getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),

		EmailHost:         getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:         getEnvInt("EMAIL_PORT", 587),
		EmailUseTLS:       getEnvBool("EMAIL_USE_TLS", true),
		EmailHostUser:     getEnv("EMAIL_HOST_USER", ""),
		EmailHostPassword: getEnv("EMAIL_HOST_PASSWORD", ""),
		DefaultFromEmail:  getEnv("DEFAULT_FROM_EMAIL", "noreply@aisummarizer.com"),

		MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE", 5*1024*1024)),
		MaxTextLength: getEnvInt("MAX_TEXT_LENGTH", 50000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
