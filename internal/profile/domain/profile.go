package domain

import "time"

// UserProfile holds per-user settings: the Groq API key used for AI
// processing and the SMTP credentials used when sharing summaries.
type UserProfile struct {
	ID                    string    `json:"id" gorm:"primaryKey"`
	UserID                string    `json:"user_id" gorm:"uniqueIndex;not null"`
	GroqAPIKey            string    `json:"groq_api_key,omitempty"`
	EmailHostUser         string    `json:"email_host_user,omitempty"`
	EmailHostPassword     string    `json:"-"` // Write-only, never returned
	DefaultEmailSignature string    `json:"default_email_signature,omitempty" gorm:"type:text"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (UserProfile) TableName() string {
	return "user_profiles"
}

// HasEmailCredentials reports whether the user configured their own SMTP
// account for sharing.
func (p *UserProfile) HasEmailCredentials() bool {
	return p.EmailHostUser != "" && p.EmailHostPassword != ""
}
