package ai

import "context"

// SummarizerService is the interface for AI text completion.
// Implement this interface to add new AI providers (Groq, Ollama, etc.)
// tokensUsed is 0 when the provider does not report usage.
type SummarizerService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (text string, tokensUsed int, err error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGroq   ProviderType = "groq"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
