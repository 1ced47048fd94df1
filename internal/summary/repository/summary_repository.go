package repository

import (
	"errors"
	"time"

	"summarizer-backend/internal/summary/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryFilter scopes the history listing
type HistoryFilter struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// UserCounts aggregates a user's summaries for dashboard and profile stats
type UserCounts struct {
	Total              int64
	Completed          int64
	Pending            int64 // draft + processing
	Shared             int64
	TotalWordsOriginal int64
}

// SummaryRepository defines the interface for summary data access
type SummaryRepository interface {
	Create(summary *domain.Summary) error
	FindByID(id string) (*domain.Summary, error)
	// FindByUser lists a user's summaries newest first with search,
	// status filter and pagination; returns the total matching count.
	FindByUser(userID string, filter HistoryFilter) ([]*domain.Summary, int64, error)
	FindRecent(userID string, limit int) ([]*domain.Summary, error)
	// Save persists all fields; the word-count hook fires here
	Save(summary *domain.Summary) error
	// UpdateFields performs a partial update without touching derived fields
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
	CountsByUser(userID string) (*UserCounts, error)
	TitlesByUser(userID string) ([]string, error)
}

// summaryRepository implements SummaryRepository using GORM
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new instance of summaryRepository
func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(summary *domain.Summary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}
	summary.CreatedAt = time.Now()
	summary.UpdatedAt = time.Now()
	return r.db.Create(summary).Error
}

func (r *summaryRepository) FindByID(id string) (*domain.Summary, error) {
	var summary domain.Summary
	err := r.db.Where("id = ?", id).First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepository) FindByUser(userID string, filter HistoryFilter) ([]*domain.Summary, int64, error) {
	var summaries []*domain.Summary
	var total int64

	query := r.db.Model(&domain.Summary{}).Where("user_id = ?", userID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title LIKE ? OR original_text LIKE ? OR ai_generated_summary LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&summaries).Error

	return summaries, total, err
}

func (r *summaryRepository) FindRecent(userID string, limit int) ([]*domain.Summary, error) {
	var summaries []*domain.Summary
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&summaries).Error
	return summaries, err
}

func (r *summaryRepository) Save(summary *domain.Summary) error {
	summary.UpdatedAt = time.Now()
	return r.db.Save(summary).Error
}

func (r *summaryRepository) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return r.db.Model(&domain.Summary{}).Where("id = ?", id).Updates(fields).Error
}

func (r *summaryRepository) Delete(id string) error {
	return r.db.Delete(&domain.Summary{}, "id = ?", id).Error
}

func (r *summaryRepository) CountsByUser(userID string) (*UserCounts, error) {
	counts := &UserCounts{}
	base := func() *gorm.DB {
		return r.db.Model(&domain.Summary{}).Where("user_id = ?", userID)
	}

	if err := base().Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", domain.StatusCompleted).Count(&counts.Completed).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status IN ?", []domain.SummaryStatus{domain.StatusDraft, domain.StatusProcessing}).
		Count(&counts.Pending).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_shared = ?", true).Count(&counts.Shared).Error; err != nil {
		return nil, err
	}

	var totalWords *int64
	if err := base().Select("SUM(word_count_original)").Scan(&totalWords).Error; err != nil {
		return nil, err
	}
	if totalWords != nil {
		counts.TotalWordsOriginal = *totalWords
	}

	return counts, nil
}

func (r *summaryRepository) TitlesByUser(userID string) ([]string, error) {
	var titles []string
	err := r.db.Model(&domain.Summary{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("title", &titles).Error
	return titles, err
}
