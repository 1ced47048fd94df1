package usecase

import (
	authrepo "summarizer-backend/internal/auth/repository"
	profiledomain "summarizer-backend/internal/profile/domain"
	profiledto "summarizer-backend/internal/profile/dto"
	"summarizer-backend/internal/profile/repository"
)

// ProfileUsecase defines the user profile operations
type ProfileUsecase interface {
	GetProfile(userID string) (*profiledomain.UserProfile, error)
	UpdateProfile(userID string, req *profiledto.UpdateProfileRequest) (*profiledomain.UserProfile, error)
	// CreateInitial creates the profile at registration time
	CreateInitial(userID, groqAPIKey, emailHostUser, emailHostPassword string) error
}

// profileUsecase implements ProfileUsecase interface
type profileUsecase struct {
	profileRepo repository.ProfileRepository
	userRepo    authrepo.UserRepository
}

// NewProfileUsecase creates a new instance of profileUsecase
func NewProfileUsecase(profileRepo repository.ProfileRepository, userRepo authrepo.UserRepository) ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (u *profileUsecase) GetProfile(userID string) (*profiledomain.UserProfile, error) {
	return u.profileRepo.GetOrCreate(userID)
}

func (u *profileUsecase) CreateInitial(userID, groqAPIKey, emailHostUser, emailHostPassword string) error {
	profile := &profiledomain.UserProfile{
		UserID:            userID,
		GroqAPIKey:        groqAPIKey,
		EmailHostUser:     emailHostUser,
		EmailHostPassword: emailHostPassword,
	}
	return u.profileRepo.Create(profile)
}

func (u *profileUsecase) UpdateProfile(userID string, req *profiledto.UpdateProfileRequest) (*profiledomain.UserProfile, error) {
	profile, err := u.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if req.GroqAPIKey != nil {
		profile.GroqAPIKey = *req.GroqAPIKey
	}
	if req.EmailHostUser != nil {
		profile.EmailHostUser = *req.EmailHostUser
	}
	if req.EmailHostPassword != nil && *req.EmailHostPassword != "" {
		profile.EmailHostPassword = *req.EmailHostPassword
	}
	if req.DefaultEmailSignature != nil {
		profile.DefaultEmailSignature = *req.DefaultEmailSignature
	}

	if err := u.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user, err := u.userRepo.FindByID(userID)
		if err == nil && user != nil {
			user.Name = *req.Name
			if err := u.userRepo.Update(user); err != nil {
				return nil, err
			}
		}
	}

	return profile, nil
}
