package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const apiURL = "https://api.groq.com/openai/v1/chat/completions"

// Service calls the Groq OpenAI-compatible chat completions API
type Service struct {
	apiKey   string
	getModel func() string
}

// NewService creates a new Groq service with a static model
func NewService(apiKey, model string) *Service {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	return &Service{
		apiKey:   apiKey,
		getModel: func() string { return model },
	}
}

// NewServiceWithGetter creates a new Groq service with a dynamic model getter
func NewServiceWithGetter(apiKey string, getModel func() string) *Service {
	return &Service{apiKey: apiKey, getModel: getModel}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete implements the SummarizerService interface
func (s *Service) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, int, error) {
	payload := chatRequest{
		Model: s.getModel(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
		MaxTokens:   2048,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("groq API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", 0, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", 0, fmt.Errorf("no completion returned")
	}

	return result.Choices[0].Message.Content, result.Usage.TotalTokens, nil
}
