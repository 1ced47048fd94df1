package domain

import "time"

// AIProcessingLog is the immutable record of one generation attempt.
// Rows are only ever created, never updated or deleted.
type AIProcessingLog struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	SummaryID        string    `json:"summary_id" gorm:"index;not null"`
	Summary          *Summary  `json:"-" gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
	PromptUsed       string    `json:"prompt_used" gorm:"type:text"`
	ResponseReceived string    `json:"response_received,omitempty" gorm:"type:text"`
	ProcessingTime   float64   `json:"processing_time"` // seconds
	TokensUsed       *int      `json:"tokens_used,omitempty"`
	Success          bool      `json:"success"`
	ErrorMessage     string    `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (AIProcessingLog) TableName() string {
	return "ai_processing_logs"
}
