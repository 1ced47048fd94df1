package ai

import (
	"fmt"

	"summarizer-backend/pkg/groq"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "groq", "ollama" or "auto"

	// Groq config
	GroqAPIKey string
	GroqModel  string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// DynamicConfig is like Config but with runtime getters for the settings
// that can be changed through the settings API without a restart.
type DynamicConfig struct {
	Provider ProviderType

	GroqAPIKey       string
	GetGroqModel     func() string
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewSummarizerService creates a SummarizerService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizerService(cfg Config) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewService(cfg.GroqAPIKey, cfg.GroqModel), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	case ProviderAuto:
		if cfg.GroqAPIKey == "" {
			return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
		}
		return NewFallbackService(
			groq.NewService(cfg.GroqAPIKey, cfg.GroqModel),
			NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel),
		), nil

	default:
		// Default to Groq if an API key is available, otherwise Ollama
		if cfg.GroqAPIKey != "" {
			return groq.NewService(cfg.GroqAPIKey, cfg.GroqModel), nil
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}

// NewSummarizerServiceWithDynamicConfig creates a SummarizerService whose
// model and endpoint settings are read through getters on every call.
func NewSummarizerServiceWithDynamicConfig(cfg DynamicConfig) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return groq.NewServiceWithGetter(cfg.GroqAPIKey, cfg.GetGroqModel), nil

	case ProviderOllama:
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		if cfg.GroqAPIKey == "" {
			return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil
		}
		return NewFallbackService(
			groq.NewServiceWithGetter(cfg.GroqAPIKey, cfg.GetGroqModel),
			NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel),
		), nil
	}
}
