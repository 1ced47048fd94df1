package usecase

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"summarizer-backend/internal/summary/domain"
	"summarizer-backend/internal/summary/dto"
	"summarizer-backend/pkg/emailaddr"
	"summarizer-backend/pkg/mailer"
)

// ShareSummary emails the final summary to a list of recipients. One
// connection is dialed and reused for all sends; a failure on one address
// does not abort the remaining sends. One share log row is written per
// attempt, and the record is marked shared when at least one send
// succeeded.
func (u *summaryUsecase) ShareSummary(userID, id string, req *dto.ShareSummaryRequest) (*dto.ShareResult, error) {
	summary, err := u.GetSummaryByID(userID, id)
	if err != nil {
		return nil, err
	}

	recipients := emailaddr.ParseList(req.RecipientEmails)
	validation := emailaddr.Validate(recipients)
	if len(validation.Valid) == 0 {
		return nil, fmt.Errorf("no valid recipient addresses: %s", strings.Join(validation.Invalid, ", "))
	}

	finalSummary := summary.FinalSummary()
	if finalSummary == "" {
		return nil, errors.New("no summary content available to share")
	}

	senderName := ""
	if user, err := u.userRepo.FindByID(userID); err == nil && user != nil {
		senderName = user.Name
	}

	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	mailCfg := mailer.Config{
		Host:     u.config.EmailHost,
		Port:     u.config.EmailPort,
		Username: u.config.EmailHostUser,
		Password: u.config.EmailHostPassword,
		From:     u.config.DefaultFromEmail,
	}
	signature := ""
	if profile != nil {
		signature = profile.DefaultEmailSignature
		if profile.HasEmailCredentials() {
			mailCfg.Username = profile.EmailHostUser
			mailCfg.Password = profile.EmailHostPassword
			mailCfg.From = profile.EmailHostUser
		}
	}

	subject := "Summary: " + summary.Title
	body := buildEmailBody(summary, finalSummary, req.CustomMessage, senderName, signature)

	successCount := 0
	var failed []dto.FailedRecipient

	sender, err := u.mailDialer.Dial(mailCfg)
	if err != nil {
		// Connection-level failure counts against every recipient
		for _, email := range validation.Valid {
			failed = append(failed, dto.FailedRecipient{Email: email, Error: err.Error()})
		}
		log.Printf("[Share] SMTP dial failed for summary %s: %v", summary.ID, err)
	} else {
		defer sender.Close()
		for _, email := range validation.Valid {
			if sendErr := sender.Send(email, subject, body); sendErr != nil {
				failed = append(failed, dto.FailedRecipient{Email: email, Error: sendErr.Error()})
				log.Printf("[Share] Failed to send to %s: %v", email, sendErr)
				continue
			}
			successCount++
		}
	}

	var errorMessage string
	if len(failed) > 0 {
		parts := make([]string, len(failed))
		for i, f := range failed {
			parts[i] = fmt.Sprintf("%s: %s", f.Email, f.Error)
		}
		errorMessage = strings.Join(parts, "; ")
	}

	if err := u.shareRepo.Create(&domain.SharedSummaryLog{
		SummaryID:       summary.ID,
		RecipientEmails: strings.Join(validation.Valid, ", "),
		Subject:         subject,
		MessageBody:     req.CustomMessage,
		Success:         len(failed) == 0,
		ErrorMessage:    errorMessage,
	}); err != nil {
		log.Printf("[Share] Failed to write share log for %s: %v", summary.ID, err)
	}

	if successCount > 0 {
		now := time.Now()
		if err := u.summaryRepo.UpdateFields(summary.ID, map[string]interface{}{
			"is_shared":          true,
			"shared_at":          now,
			"shared_with_emails": strings.Join(validation.Valid, ", "),
		}); err != nil {
			log.Printf("[Share] Failed to mark summary %s as shared: %v", summary.ID, err)
		}
	}

	result := &dto.ShareResult{
		Success:       len(failed) == 0,
		SuccessCount:  successCount,
		FailedEmails:  failed,
		InvalidEmails: validation.Invalid,
	}
	if len(failed) > 0 {
		result.Message = fmt.Sprintf("Sent to %d recipients, failed for %d recipients", successCount, len(failed))
	} else {
		result.Message = fmt.Sprintf("Successfully sent to all %d recipients", successCount)
	}

	return result, nil
}

// buildEmailBody renders the plain-text message body
func buildEmailBody(summary *domain.Summary, finalSummary, customMessage, senderName, signature string) string {
	const rule = "=================================================="

	var lines []string

	if customMessage != "" {
		lines = append(lines,
			fmt.Sprintf("Message from %s:", senderName),
			customMessage,
			"",
		)
	}

	lines = append(lines,
		"Summary: "+summary.Title,
		"Type: "+string(summary.SummaryType),
		"Created: "+summary.CreatedAt.Format("January 2, 2006 at 3:04 PM"),
		"Shared by: "+senderName,
		"Shared on: "+time.Now().Format("January 2, 2006 at 3:04 PM"),
		"",
		rule,
		"SUMMARY CONTENT",
		rule,
		"",
		finalSummary,
		"",
		rule,
		"",
		fmt.Sprintf("Original text: %d words", summary.WordCountOriginal),
		fmt.Sprintf("Summary: %d words", summary.WordCountSummary),
		"",
		"This summary was generated using AI Summarizer.",
	)

	if signature != "" {
		lines = append(lines, "", signature)
	}

	return strings.Join(lines, "\n")
}
