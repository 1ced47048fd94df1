package usecase

import (
	"errors"
	"fmt"
	"strings"

	authrepo "summarizer-backend/internal/auth/repository"
	profilerepo "summarizer-backend/internal/profile/repository"
	"summarizer-backend/internal/summary/domain"
	"summarizer-backend/internal/summary/dto"
	"summarizer-backend/internal/summary/repository"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/fuzzy"
	"summarizer-backend/pkg/htmlfmt"
	"summarizer-backend/pkg/mailer"
)

// summaryUsecase implements SummaryUsecase interface
type summaryUsecase struct {
	summaryRepo repository.SummaryRepository
	logRepo     repository.ProcessingLogRepository
	shareRepo   repository.ShareLogRepository
	profileRepo profilerepo.ProfileRepository
	userRepo    authrepo.UserRepository
	config      *config.Config

	aiResolver AIServiceResolver
	mailDialer mailer.Dialer
}

// NewSummaryUsecase creates a new instance of summaryUsecase
func NewSummaryUsecase(
	summaryRepo repository.SummaryRepository,
	logRepo repository.ProcessingLogRepository,
	shareRepo repository.ShareLogRepository,
	profileRepo profilerepo.ProfileRepository,
	userRepo authrepo.UserRepository,
	cfg *config.Config,
) SummaryUsecase {
	return &summaryUsecase{
		summaryRepo: summaryRepo,
		logRepo:     logRepo,
		shareRepo:   shareRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		config:      cfg,
		mailDialer:  mailer.SMTPDialer{},
	}
}

func (u *summaryUsecase) SetAIServiceResolver(resolver AIServiceResolver) {
	u.aiResolver = resolver
}

func (u *summaryUsecase) SetMailDialer(dialer mailer.Dialer) {
	u.mailDialer = dialer
}

func (u *summaryUsecase) CreateSummary(userID string, input *dto.CreateSummaryInput) (*domain.Summary, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.New("please either enter text manually or upload a file")
	}
	if len(input.Text) > u.config.MaxTextLength {
		return nil, fmt.Errorf("text length (%d characters) exceeds maximum limit (%d characters)",
			len(input.Text), u.config.MaxTextLength)
	}

	summaryType := input.SummaryType
	if !domain.ValidType(summaryType) {
		summaryType = string(domain.TypeMeeting)
	}

	summary := &domain.Summary{
		UserID:       userID,
		Title:        input.Title,
		SummaryType:  domain.SummaryType(summaryType),
		Status:       domain.StatusDraft,
		OriginalText: input.Text,
		CustomPrompt: input.CustomPrompt,
	}
	summary.RecalculateWordCounts()

	if err := u.summaryRepo.Create(summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (u *summaryUsecase) GetSummaryByID(userID, id string) (*domain.Summary, error) {
	summary, err := u.summaryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, errors.New("summary not found")
	}
	if summary.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return summary, nil
}

func (u *summaryUsecase) GetDetail(userID, id string) (*dto.SummaryDetail, error) {
	summary, err := u.GetSummaryByID(userID, id)
	if err != nil {
		return nil, err
	}

	processingLogs, err := u.logRepo.FindBySummary(id, 5)
	if err != nil {
		return nil, err
	}

	shareLogs, err := u.shareRepo.FindBySummary(id, 5)
	if err != nil {
		return nil, err
	}

	final := summary.FinalSummary()
	return &dto.SummaryDetail{
		Summary:        summary,
		FinalSummary:   final,
		FinalHTML:      htmlfmt.SmartRender(final),
		ProcessingLogs: processingLogs,
		ShareLogs:      shareLogs,
	}, nil
}

func (u *summaryUsecase) EditSummary(userID, id, editedText string) (*domain.Summary, error) {
	summary, err := u.GetSummaryByID(userID, id)
	if err != nil {
		return nil, err
	}

	editedText = strings.TrimSpace(editedText)
	if editedText == "" {
		return nil, errors.New("edited summary cannot be empty")
	}

	summary.EditedSummary = editedText
	if err := u.summaryRepo.Save(summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (u *summaryUsecase) DeleteSummary(userID, id string) error {
	summary, err := u.GetSummaryByID(userID, id)
	if err != nil {
		return err
	}
	return u.summaryRepo.Delete(summary.ID)
}

func (u *summaryUsecase) GetDashboard(userID string) (*dto.Dashboard, error) {
	recent, err := u.summaryRepo.FindRecent(userID, 5)
	if err != nil {
		return nil, err
	}

	counts, err := u.summaryRepo.CountsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		RecentSummaries:    recent,
		TotalSummaries:     counts.Total,
		CompletedSummaries: counts.Completed,
		PendingSummaries:   counts.Pending,
		SharedSummaries:    counts.Shared,
	}, nil
}

func (u *summaryUsecase) GetHistory(userID string, filter repository.HistoryFilter) (*dto.History, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}
	if filter.Status != "" && !domain.ValidStatus(filter.Status) {
		return nil, fmt.Errorf("invalid status filter: %s", filter.Status)
	}

	summaries, total, err := u.summaryRepo.FindByUser(userID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &dto.History{
		Summaries:  summaries,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (u *summaryUsecase) GetSuggestions(userID, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	titles, err := u.summaryRepo.TitlesByUser(userID)
	if err != nil {
		return nil, err
	}

	return fuzzy.RankTitles(query, titles, limit), nil
}

func (u *summaryUsecase) UserCounts(userID string) (*repository.UserCounts, error) {
	return u.summaryRepo.CountsByUser(userID)
}
