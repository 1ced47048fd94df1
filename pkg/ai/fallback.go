package ai

import (
	"context"
	"log"
	"net"
	"strings"
)

// FallbackService routes completions to Groq first and falls back to a
// local Ollama instance when Groq is unreachable or out of quota.
type FallbackService struct {
	groq   SummarizerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(groq SummarizerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		groq:   groq,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}

// Complete implements SummarizerService
func (f *FallbackService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, int, error) {
	text, tokens, err := f.groq.Complete(ctx, systemPrompt, userPrompt)
	if err == nil {
		return text, tokens, nil
	}

	if f.ollama != nil && (isConnectionError(err) || isQuotaError(err)) {
		log.Printf("[AI] Groq unavailable (%v), falling back to Ollama", err)
		return f.ollama.Complete(ctx, systemPrompt, userPrompt)
	}

	return "", 0, err
}
