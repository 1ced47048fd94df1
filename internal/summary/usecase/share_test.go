package usecase

import (
	"errors"
	"strings"
	"testing"

	"summarizer-backend/internal/summary/domain"
	"summarizer-backend/internal/summary/dto"
	"summarizer-backend/pkg/mailer"
)

// fakeSender records sends and fails for addresses in failFor
type fakeSender struct {
	sent    []string
	failFor map[string]error
	closed  bool
}

func (s *fakeSender) Send(to, subject, body string) error {
	if err, ok := s.failFor[to]; ok {
		return err
	}
	s.sent = append(s.sent, to)
	return nil
}

func (s *fakeSender) Close() error {
	s.closed = true
	return nil
}

type fakeDialer struct {
	sender  *fakeSender
	dialErr error
	lastCfg mailer.Config
}

func (d *fakeDialer) Dial(cfg mailer.Config) (mailer.Sender, error) {
	d.lastCfg = cfg
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.sender, nil
}

func (e *testEnv) createCompletedSummary(t *testing.T, userID string) *domain.Summary {
	t.Helper()
	summary := e.createSummary(t, userID, "Sprint review", "long original text")
	summary.AIGeneratedSummary = "the short version"
	summary.Status = domain.StatusCompleted
	if err := e.summaryRepo.Save(summary); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return summary
}

func TestShareSummaryAllRecipients(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	sender := &fakeSender{}
	dialer := &fakeDialer{sender: sender}
	env.uc.SetMailDialer(dialer)

	result, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com; b@y.com",
	})
	if err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("result.Success = false: %s", result.Message)
	}
	if result.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", result.SuccessCount)
	}
	if len(sender.sent) != 2 {
		t.Errorf("sent to %v, want 2 recipients", sender.sent)
	}
	if !sender.closed {
		t.Error("sender connection not closed")
	}

	stored, err := env.summaryRepo.FindByID(summary.ID)
	if err != nil || stored == nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !stored.IsShared {
		t.Error("IsShared = false, want true")
	}
	if stored.SharedAt == nil {
		t.Error("SharedAt not set")
	}
	if stored.SharedWithEmails != "a@x.com, b@y.com" {
		t.Errorf("SharedWithEmails = %q", stored.SharedWithEmails)
	}

	logs, err := env.shareRepo.FindBySummary(summary.ID, 0)
	if err != nil {
		t.Fatalf("FindBySummary failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("share log rows = %d, want exactly 1", len(logs))
	}
	if !logs[0].Success {
		t.Error("log row Success = false")
	}
}

func TestShareSummaryPartialFailure(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	sender := &fakeSender{failFor: map[string]error{"b@y.com": errors.New("mailbox full")}}
	env.uc.SetMailDialer(&fakeDialer{sender: sender})

	result, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com, b@y.com",
	})
	if err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}
	if result.Success {
		t.Error("result.Success = true, want false on partial failure")
	}
	if result.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", result.SuccessCount)
	}
	if len(result.FailedEmails) != 1 || result.FailedEmails[0].Email != "b@y.com" {
		t.Errorf("FailedEmails = %v", result.FailedEmails)
	}

	// One delivered address still marks the record as shared
	stored, _ := env.summaryRepo.FindByID(summary.ID)
	if !stored.IsShared {
		t.Error("IsShared = false, want true after partial success")
	}

	logs, err := env.shareRepo.FindBySummary(summary.ID, 0)
	if err != nil {
		t.Fatalf("FindBySummary failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("share log rows = %d, want 1", len(logs))
	}
	if logs[0].Success {
		t.Error("log row Success = true, want false")
	}
	if !strings.Contains(logs[0].ErrorMessage, "b@y.com") {
		t.Errorf("log ErrorMessage %q does not name failed address", logs[0].ErrorMessage)
	}
}

func TestShareSummarySkipsInvalidAddresses(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	sender := &fakeSender{}
	env.uc.SetMailDialer(&fakeDialer{sender: sender})

	result, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com, c@bad",
	})
	if err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", result.SuccessCount)
	}
	if len(result.InvalidEmails) != 1 || result.InvalidEmails[0] != "c@bad" {
		t.Errorf("InvalidEmails = %v", result.InvalidEmails)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "a@x.com" {
		t.Errorf("sent to %v, want only the valid address", sender.sent)
	}
}

func TestShareSummaryNoValidRecipients(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	env.uc.SetMailDialer(&fakeDialer{sender: &fakeSender{}})

	if _, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "nope, also-bad",
	}); err == nil {
		t.Fatal("expected error when no recipient is valid")
	}
}

func TestShareSummaryWithoutContent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createSummary(t, user.ID, "Draft only", "never summarized")

	env.uc.SetMailDialer(&fakeDialer{sender: &fakeSender{}})

	if _, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com",
	}); err == nil || !strings.Contains(err.Error(), "no summary content") {
		t.Fatalf("expected no-content error, got %v", err)
	}
}

func TestShareSummaryDialFailure(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	env.uc.SetMailDialer(&fakeDialer{dialErr: errors.New("connection refused")})

	result, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com",
	})
	if err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}
	if result.Success || result.SuccessCount != 0 {
		t.Errorf("result = %+v, want total failure", result)
	}

	stored, _ := env.summaryRepo.FindByID(summary.ID)
	if stored.IsShared {
		t.Error("IsShared = true, want false when nothing was delivered")
	}

	logs, _ := env.shareRepo.FindBySummary(summary.ID, 0)
	if len(logs) != 1 || logs[0].Success {
		t.Errorf("expected one failed share log row, got %v", logs)
	}
}

func TestShareSummaryUsesProfileCredentials(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Alice", "alice@example.com")
	summary := env.createCompletedSummary(t, user.ID)

	profile, err := env.profileRepo.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	profile.EmailHostUser = "alice@gmail.com"
	profile.EmailHostPassword = "app-password"
	if err := env.profileRepo.Update(profile); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	dialer := &fakeDialer{sender: &fakeSender{}}
	env.uc.SetMailDialer(dialer)

	if _, err := env.uc.ShareSummary(user.ID, summary.ID, &dto.ShareSummaryRequest{
		RecipientEmails: "a@x.com",
	}); err != nil {
		t.Fatalf("ShareSummary failed: %v", err)
	}

	if dialer.lastCfg.Username != "alice@gmail.com" {
		t.Errorf("dialed with username %q, want profile credentials", dialer.lastCfg.Username)
	}
	if dialer.lastCfg.From != "alice@gmail.com" {
		t.Errorf("From = %q, want the profile address", dialer.lastCfg.From)
	}
}

func TestBuildEmailBody(t *testing.T) {
	summary := &domain.Summary{
		Title:              "Sprint review",
		SummaryType:        domain.TypeMeeting,
		OriginalText:       "a b c d",
		AIGeneratedSummary: "x y",
	}
	summary.RecalculateWordCounts()

	body := buildEmailBody(summary, "x y", "please read", "Alice", "-- Alice")

	for _, want := range []string{
		"Message from Alice:",
		"please read",
		"Summary: Sprint review",
		"Type: meeting",
		"SUMMARY CONTENT",
		"x y",
		"Original text: 4 words",
		"Summary: 2 words",
		"This summary was generated using AI Summarizer.",
		"-- Alice",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	plain := buildEmailBody(summary, "x y", "", "Alice", "")
	if strings.Contains(plain, "Message from") {
		t.Error("body contains custom-message block without a message")
	}
}
