package domain

import "time"

// SharedSummaryLog is the immutable record of one email-dispatch attempt
type SharedSummaryLog struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	SummaryID       string    `json:"summary_id" gorm:"index;not null"`
	Summary         *Summary  `json:"-" gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
	RecipientEmails string    `json:"recipient_emails" gorm:"type:text"` // comma-separated
	Subject         string    `json:"subject"`
	MessageBody     string    `json:"message_body,omitempty" gorm:"type:text"`
	Success         bool      `json:"success"`
	ErrorMessage    string    `json:"error_message,omitempty" gorm:"type:text"`
	SharedAt        time.Time `json:"shared_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (SharedSummaryLog) TableName() string {
	return "shared_summary_logs"
}
