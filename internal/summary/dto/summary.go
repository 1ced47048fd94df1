package dto

import "summarizer-backend/internal/summary/domain"

// CreateSummaryInput carries the fields of the creation form after the
// delivery layer has resolved pasted text vs. uploaded file.
type CreateSummaryInput struct {
	Title        string
	SummaryType  string
	CustomPrompt string
	Text         string
}

// EditSummaryRequest updates the user-edited version of the summary
type EditSummaryRequest struct {
	EditedSummary string `json:"edited_summary" binding:"required"`
}

// ShareSummaryRequest shares a summary with a raw recipients string
type ShareSummaryRequest struct {
	RecipientEmails string `json:"recipient_emails" binding:"required"`
	CustomMessage   string `json:"custom_message"`
}

// GenerateResult reports one generation attempt. Error is set when the
// external call failed; exactly one processing log row exists either way.
type GenerateResult struct {
	Success        bool    `json:"success"`
	Summary        string  `json:"summary,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
	TokensUsed     int     `json:"tokens_used,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// FailedRecipient names one address that could not be delivered to
type FailedRecipient struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// ShareResult reports the partial-success breakdown of one share attempt
type ShareResult struct {
	Success       bool              `json:"success"`
	SuccessCount  int               `json:"success_count"`
	FailedEmails  []FailedRecipient `json:"failed_emails,omitempty"`
	InvalidEmails []string          `json:"invalid_emails,omitempty"`
	Message       string            `json:"message"`
}

// Dashboard shows recent activity and aggregate counts
type Dashboard struct {
	RecentSummaries    []*domain.Summary `json:"recent_summaries"`
	TotalSummaries     int64             `json:"total_summaries"`
	CompletedSummaries int64             `json:"completed_summaries"`
	PendingSummaries   int64             `json:"pending_summaries"`
	SharedSummaries    int64             `json:"shared_summaries"`
}

// History is one page of the summary listing
type History struct {
	Summaries  []*domain.Summary `json:"summaries"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// SummaryDetail is the full view of one record
type SummaryDetail struct {
	Summary        *domain.Summary            `json:"summary"`
	FinalSummary   string                     `json:"final_summary"`
	FinalHTML      string                     `json:"final_summary_html"`
	ProcessingLogs []*domain.AIProcessingLog  `json:"processing_logs"`
	ShareLogs      []*domain.SharedSummaryLog `json:"share_logs"`
}
