package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// SummaryStatus tracks the generation lifecycle of one record
type SummaryStatus string

const (
	StatusDraft      SummaryStatus = "draft"
	StatusProcessing SummaryStatus = "processing"
	StatusCompleted  SummaryStatus = "completed"
	StatusError      SummaryStatus = "error"
)

// SummaryType categorizes the uploaded content
type SummaryType string

const (
	TypeMeeting  SummaryType = "meeting"
	TypeCall     SummaryType = "call"
	TypeDocument SummaryType = "document"
	TypeOther    SummaryType = "other"
)

// ValidStatus reports whether s is one of the known statuses
func ValidStatus(s string) bool {
	switch SummaryStatus(s) {
	case StatusDraft, StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}

// ValidType reports whether t is one of the known summary types
func ValidType(t string) bool {
	switch SummaryType(t) {
	case TypeMeeting, TypeCall, TypeDocument, TypeOther:
		return true
	}
	return false
}

// Summary stores one uploaded text, its AI-generated summary and the
// user's edits.
type Summary struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	UserID      string        `json:"user_id" gorm:"index;not null"`
	Title       string        `json:"title" gorm:"not null"`
	SummaryType SummaryType   `json:"summary_type" gorm:"default:meeting"`
	Status      SummaryStatus `json:"status" gorm:"default:draft;index"`

	OriginalText       string `json:"original_text" gorm:"type:text"`
	CustomPrompt       string `json:"custom_prompt" gorm:"type:text"`
	AIGeneratedSummary string `json:"ai_generated_summary,omitempty" gorm:"type:text"`
	EditedSummary      string `json:"edited_summary,omitempty" gorm:"type:text"`

	// Derived fields, recomputed on every save
	WordCountOriginal int `json:"word_count_original"`
	WordCountSummary  int `json:"word_count_summary"`

	ProcessingTime float64    `json:"processing_time,omitempty"` // seconds
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`

	IsShared         bool       `json:"is_shared" gorm:"default:false"`
	SharedAt         *time.Time `json:"shared_at,omitempty"`
	SharedWithEmails string     `json:"shared_with_emails,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Summary) TableName() string {
	return "summaries"
}

// BeforeSave recomputes the derived word counts so they can never drift
// from the underlying text fields.
func (s *Summary) BeforeSave(tx *gorm.DB) error {
	s.RecalculateWordCounts()
	return nil
}

// RecalculateWordCounts updates both word counts from the current text
func (s *Summary) RecalculateWordCounts() {
	s.WordCountOriginal = len(strings.Fields(s.OriginalText))
	s.WordCountSummary = len(strings.Fields(s.FinalSummary()))
}

// FinalSummary returns the edited summary if available, otherwise the
// AI-generated summary.
func (s *Summary) FinalSummary() string {
	if s.EditedSummary != "" {
		return s.EditedSummary
	}
	return s.AIGeneratedSummary
}
