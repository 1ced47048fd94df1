package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"summarizer-backend/internal/summary/domain"
)

func TestGenerateSummarySuccess(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createSummary(t, user.ID, "Sprint review", "long original text goes here")

	fake := &fakeAI{text: "short version", tokens: 42}
	env.uc.SetAIServiceResolver(resolverFor(fake))

	result, err := env.uc.GenerateSummary(context.Background(), user.ID, summary.ID)
	if err != nil {
		t.Fatalf("GenerateSummary failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("result.Success = false, error: %s", result.Error)
	}
	if result.Summary != "short version" {
		t.Errorf("result.Summary = %q", result.Summary)
	}
	if result.TokensUsed != 42 {
		t.Errorf("result.TokensUsed = %d, want 42", result.TokensUsed)
	}
	if fake.calls != 1 {
		t.Errorf("AI service called %d times, want 1", fake.calls)
	}

	stored, err := env.summaryRepo.FindByID(summary.ID)
	if err != nil || stored == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Status != domain.StatusCompleted {
		t.Errorf("Status = %q, want completed", stored.Status)
	}
	if stored.AIGeneratedSummary != "short version" {
		t.Errorf("AIGeneratedSummary = %q", stored.AIGeneratedSummary)
	}
	if stored.ProcessedAt == nil {
		t.Error("ProcessedAt not set")
	}
	if stored.WordCountSummary != 2 {
		t.Errorf("WordCountSummary = %d, want 2 after save hook", stored.WordCountSummary)
	}

	logs, err := env.logRepo.FindBySummary(summary.ID, 0)
	if err != nil {
		t.Fatalf("FindBySummary failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("processing log rows = %d, want exactly 1", len(logs))
	}
	if !logs[0].Success {
		t.Error("log row Success = false")
	}
	if logs[0].TokensUsed == nil || *logs[0].TokensUsed != 42 {
		t.Errorf("log TokensUsed = %v, want 42", logs[0].TokensUsed)
	}
	if !strings.Contains(logs[0].PromptUsed, "long original text") {
		t.Errorf("log PromptUsed missing original text: %q", logs[0].PromptUsed)
	}
}

func TestGenerateSummaryFailure(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createSummary(t, user.ID, "Sprint review", "original text")

	fake := &fakeAI{err: errors.New("model overloaded")}
	env.uc.SetAIServiceResolver(resolverFor(fake))

	result, err := env.uc.GenerateSummary(context.Background(), user.ID, summary.ID)
	if err != nil {
		t.Fatalf("GenerateSummary returned transport error: %v", err)
	}
	if result.Success {
		t.Fatal("result.Success = true, want false")
	}
	if !strings.Contains(result.Error, "model overloaded") {
		t.Errorf("result.Error = %q", result.Error)
	}

	stored, err := env.summaryRepo.FindByID(summary.ID)
	if err != nil || stored == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Status != domain.StatusError {
		t.Errorf("Status = %q, want error", stored.Status)
	}
	if stored.AIGeneratedSummary != "" {
		t.Errorf("AIGeneratedSummary = %q, want empty", stored.AIGeneratedSummary)
	}

	logs, err := env.logRepo.FindBySummary(summary.ID, 0)
	if err != nil {
		t.Fatalf("FindBySummary failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("processing log rows = %d, want exactly 1", len(logs))
	}
	if logs[0].Success {
		t.Error("log row Success = true, want false")
	}
	if logs[0].ErrorMessage != "model overloaded" {
		t.Errorf("log ErrorMessage = %q", logs[0].ErrorMessage)
	}
}

func TestGenerateSummaryRejectsProcessing(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createSummary(t, user.ID, "Busy", "text")

	if err := env.summaryRepo.UpdateFields(summary.ID, map[string]interface{}{
		"status": domain.StatusProcessing,
	}); err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	env.uc.SetAIServiceResolver(resolverFor(&fakeAI{text: "x"}))
	if _, err := env.uc.GenerateSummary(context.Background(), user.ID, summary.ID); err == nil {
		t.Fatal("expected error for already-processing summary")
	}
}

func TestGenerateSummaryRegenerates(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createSummary(t, user.ID, "Notes", "text to summarize")

	env.uc.SetAIServiceResolver(resolverFor(&fakeAI{text: "first version"}))
	if _, err := env.uc.GenerateSummary(context.Background(), user.ID, summary.ID); err != nil {
		t.Fatalf("first GenerateSummary failed: %v", err)
	}

	env.uc.SetAIServiceResolver(resolverFor(&fakeAI{text: "second version"}))
	result, err := env.uc.GenerateSummary(context.Background(), user.ID, summary.ID)
	if err != nil {
		t.Fatalf("second GenerateSummary failed: %v", err)
	}
	if result.Summary != "second version" {
		t.Errorf("result.Summary = %q", result.Summary)
	}

	logs, err := env.logRepo.FindBySummary(summary.ID, 0)
	if err != nil {
		t.Fatalf("FindBySummary failed: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("processing log rows = %d, want 2 after regeneration", len(logs))
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt("", "body")
	if !strings.HasPrefix(got, defaultInstruction) {
		t.Errorf("default prompt missing instruction: %q", got)
	}
	if !strings.HasSuffix(got, "Text to summarize:\nbody") {
		t.Errorf("prompt missing body: %q", got)
	}

	custom := buildPrompt("  Focus on action items  ", "body")
	if !strings.HasPrefix(custom, "Focus on action items") {
		t.Errorf("custom prompt not used: %q", custom)
	}
}
