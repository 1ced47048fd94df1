package repository

import (
	"errors"
	"time"

	profiledomain "summarizer-backend/internal/profile/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for user profile data access
type ProfileRepository interface {
	Create(profile *profiledomain.UserProfile) error
	FindByUserID(userID string) (*profiledomain.UserProfile, error)
	// GetOrCreate returns the user's profile, creating an empty one when
	// none exists yet.
	GetOrCreate(userID string) (*profiledomain.UserProfile, error)
	Update(profile *profiledomain.UserProfile) error
}

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of profileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) Create(profile *profiledomain.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	return r.db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(userID string) (*profiledomain.UserProfile, error) {
	var profile profiledomain.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetOrCreate(userID string) (*profiledomain.UserProfile, error) {
	profile, err := r.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &profiledomain.UserProfile{UserID: userID}
	if err := r.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(profile *profiledomain.UserProfile) error {
	profile.UpdatedAt = time.Now()
	return r.db.Save(profile).Error
}
