package repository

import (
	"time"

	"summarizer-backend/internal/summary/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareLogRepository defines append-only access to share logs
type ShareLogRepository interface {
	Create(log *domain.SharedSummaryLog) error
	FindBySummary(summaryID string, limit int) ([]*domain.SharedSummaryLog, error)
}

// shareLogRepository implements ShareLogRepository using GORM
type shareLogRepository struct {
	db *gorm.DB
}

// NewShareLogRepository creates a new instance of shareLogRepository
func NewShareLogRepository(db *gorm.DB) ShareLogRepository {
	return &shareLogRepository{db: db}
}

func (r *shareLogRepository) Create(log *domain.SharedSummaryLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.SharedAt.IsZero() {
		log.SharedAt = time.Now()
	}
	return r.db.Create(log).Error
}

func (r *shareLogRepository) FindBySummary(summaryID string, limit int) ([]*domain.SharedSummaryLog, error) {
	var logs []*domain.SharedSummaryLog
	query := r.db.Where("summary_id = ?", summaryID).Order("shared_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}
