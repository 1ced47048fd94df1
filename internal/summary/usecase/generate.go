package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"summarizer-backend/internal/summary/domain"
	"summarizer-backend/internal/summary/dto"
)

const (
	// systemPrompt frames every completion call
	systemPrompt = "You are an expert at summarizing text. Provide clear, well-structured summaries that capture the key points and important details."

	// defaultInstruction is used when the record has no custom prompt
	defaultInstruction = "Please summarize the following text in a clear and concise manner:"
)

// buildPrompt prepends the custom instruction when present, otherwise the
// default one.
func buildPrompt(customPrompt, originalText string) string {
	instruction := strings.TrimSpace(customPrompt)
	if instruction == "" {
		instruction = defaultInstruction
	}
	return instruction + "\n\nText to summarize:\n" + originalText
}

// GenerateSummary runs the AI processing workflow for one record:
// draft -> processing -> completed/error, with exactly one processing log
// row per invocation. The workflow never retries.
func (u *summaryUsecase) GenerateSummary(ctx context.Context, userID, id string) (*dto.GenerateResult, error) {
	summary, err := u.GetSummaryByID(userID, id)
	if err != nil {
		return nil, err
	}

	if summary.Status == domain.StatusProcessing {
		return nil, errors.New("summary is already being processed")
	}

	apiKey := u.config.GroqAPIKey
	profile, err := u.profileRepo.FindByUserID(userID)
	if err == nil && profile != nil && profile.GroqAPIKey != "" {
		apiKey = profile.GroqAPIKey
	}

	if u.aiResolver == nil {
		return nil, errors.New("AI service not configured")
	}
	aiService, err := u.aiResolver(apiKey)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(summary.CustomPrompt, summary.OriginalText)

	// Visibility hint for concurrent page loads, not a lock: duplicate
	// submissions can still race and each will write its own log row.
	if err := u.summaryRepo.UpdateFields(summary.ID, map[string]interface{}{
		"status": domain.StatusProcessing,
	}); err != nil {
		return nil, err
	}

	start := time.Now()
	text, tokens, aiErr := aiService.Complete(ctx, systemPrompt, prompt)
	elapsed := time.Since(start).Seconds()

	if aiErr != nil {
		if err := u.summaryRepo.UpdateFields(summary.ID, map[string]interface{}{
			"status": domain.StatusError,
		}); err != nil {
			log.Printf("[Generate] Failed to mark summary %s as error: %v", summary.ID, err)
		}

		if err := u.logRepo.Create(&domain.AIProcessingLog{
			SummaryID:      summary.ID,
			PromptUsed:     prompt,
			ProcessingTime: elapsed,
			Success:        false,
			ErrorMessage:   aiErr.Error(),
		}); err != nil {
			log.Printf("[Generate] Failed to write processing log for %s: %v", summary.ID, err)
		}

		log.Printf("[Generate] Error generating summary for %q: %v", summary.Title, aiErr)

		return &dto.GenerateResult{
			Success:        false,
			ProcessingTime: elapsed,
			Error:          aiErr.Error(),
		}, nil
	}

	now := time.Now()
	summary.AIGeneratedSummary = text
	summary.Status = domain.StatusCompleted
	summary.ProcessingTime = elapsed
	summary.ProcessedAt = &now

	if err := u.summaryRepo.Save(summary); err != nil {
		return nil, err
	}

	logEntry := &domain.AIProcessingLog{
		SummaryID:        summary.ID,
		PromptUsed:       prompt,
		ResponseReceived: text,
		ProcessingTime:   elapsed,
		Success:          true,
	}
	if tokens > 0 {
		logEntry.TokensUsed = &tokens
	}
	if err := u.logRepo.Create(logEntry); err != nil {
		log.Printf("[Generate] Failed to write processing log for %s: %v", summary.ID, err)
	}

	log.Printf("[Generate] Generated summary for %q in %.2fs", summary.Title, elapsed)

	return &dto.GenerateResult{
		Success:        true,
		Summary:        text,
		ProcessingTime: elapsed,
		TokensUsed:     tokens,
	}, nil
}
