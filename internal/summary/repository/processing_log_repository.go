package repository

import (
	"time"

	"summarizer-backend/internal/summary/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessingLogRepository defines append-only access to AI processing logs
type ProcessingLogRepository interface {
	Create(log *domain.AIProcessingLog) error
	FindBySummary(summaryID string, limit int) ([]*domain.AIProcessingLog, error)
}

// processingLogRepository implements ProcessingLogRepository using GORM
type processingLogRepository struct {
	db *gorm.DB
}

// NewProcessingLogRepository creates a new instance of processingLogRepository
func NewProcessingLogRepository(db *gorm.DB) ProcessingLogRepository {
	return &processingLogRepository{db: db}
}

func (r *processingLogRepository) Create(log *domain.AIProcessingLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()
	return r.db.Create(log).Error
}

func (r *processingLogRepository) FindBySummary(summaryID string, limit int) ([]*domain.AIProcessingLog, error) {
	var logs []*domain.AIProcessingLog
	query := r.db.Where("summary_id = ?", summaryID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}
