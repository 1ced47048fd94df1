package dto

// UpdateProfileRequest carries the editable profile and account fields.
// Nil pointers leave the current value untouched; the SMTP password is
// write-only and only overwritten when a non-empty value is sent.
type UpdateProfileRequest struct {
	Name                  *string `json:"name"`
	GroqAPIKey            *string `json:"groq_api_key"`
	EmailHostUser         *string `json:"email_host_user"`
	EmailHostPassword     *string `json:"email_host_password"`
	DefaultEmailSignature *string `json:"default_email_signature"`
}

// ProfileStats summarizes the user's activity for the profile page
type ProfileStats struct {
	TotalSummaries      int64 `json:"total_summaries"`
	CompletedSummaries  int64 `json:"completed_summaries"`
	SharedSummaries     int64 `json:"shared_summaries"`
	TotalWordsProcessed int64 `json:"total_words_processed"`
}
