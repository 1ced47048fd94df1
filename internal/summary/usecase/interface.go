package usecase

import (
	"context"

	"summarizer-backend/internal/summary/dto"
	"summarizer-backend/internal/summary/repository"
	"summarizer-backend/pkg/ai"
	"summarizer-backend/pkg/mailer"

	"summarizer-backend/internal/summary/domain"
)

// AIServiceResolver returns the AI service for one generation attempt,
// configured with the given API key (the user's own key or the process
// default).
type AIServiceResolver func(apiKey string) (ai.SummarizerService, error)

// SummaryUsecase defines the summary operations
type SummaryUsecase interface {
	CreateSummary(userID string, input *dto.CreateSummaryInput) (*domain.Summary, error)
	GetSummaryByID(userID, id string) (*domain.Summary, error)
	GetDetail(userID, id string) (*dto.SummaryDetail, error)
	EditSummary(userID, id, editedText string) (*domain.Summary, error)
	DeleteSummary(userID, id string) error

	GetDashboard(userID string) (*dto.Dashboard, error)
	GetHistory(userID string, filter repository.HistoryFilter) (*dto.History, error)
	GetSuggestions(userID, query string, limit int) ([]string, error)
	UserCounts(userID string) (*repository.UserCounts, error)

	// GenerateSummary runs the AI processing workflow for one record
	GenerateSummary(ctx context.Context, userID, id string) (*dto.GenerateResult, error)
	// ShareSummary emails the final summary to a list of recipients
	ShareSummary(userID, id string, req *dto.ShareSummaryRequest) (*dto.ShareResult, error)

	SetAIServiceResolver(resolver AIServiceResolver)
	SetMailDialer(dialer mailer.Dialer)
}
