package delivery

import (
	"net/http"

	profiledto "summarizer-backend/internal/profile/dto"
	"summarizer-backend/internal/profile/usecase"

	"github.com/gin-gonic/gin"
)

// StatsFetcher provides per-user summary statistics for the profile page
type StatsFetcher interface {
	UserStats(userID string) (*profiledto.ProfileStats, error)
}

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	statsFetcher   StatsFetcher
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileUsecase usecase.ProfileUsecase, statsFetcher StatsFetcher) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		statsFetcher:   statsFetcher,
	}
}

// GetProfile returns the user's profile together with activity stats
// GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.profileUsecase.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"profile":               profile,
		"has_email_credentials": profile.HasEmailCredentials(),
	}

	if h.statsFetcher != nil {
		if stats, err := h.statsFetcher.UserStats(userID); err == nil {
			response["stats"] = stats
		}
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProfile updates profile settings (and optionally the user's name)
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req profiledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}
