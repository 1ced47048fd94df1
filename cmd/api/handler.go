package api

import (
	"log"

	authUsecase "summarizer-backend/internal/auth/usecase"
	profileDelivery "summarizer-backend/internal/profile/delivery"
	profiledto "summarizer-backend/internal/profile/dto"
	profileUsecasePkg "summarizer-backend/internal/profile/usecase"
	summaryDelivery "summarizer-backend/internal/summary/delivery"
	summaryUsecasePkg "summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/ai"
	"summarizer-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	config         *config.Config
	summaryHandler *summaryDelivery.SummaryHandler
	profileHandler *profileDelivery.ProfileHandler
}

// statsAdapter adapts SummaryUsecase counts to the profile page's
// StatsFetcher interface.
type statsAdapter struct {
	summaryUc summaryUsecasePkg.SummaryUsecase
}

func (a *statsAdapter) UserStats(userID string) (*profiledto.ProfileStats, error) {
	counts, err := a.summaryUc.UserCounts(userID)
	if err != nil {
		return nil, err
	}
	return &profiledto.ProfileStats{
		TotalSummaries:      counts.Total,
		CompletedSummaries:  counts.Completed,
		SharedSummaries:     counts.Shared,
		TotalWordsProcessed: counts.TotalWordsOriginal,
	}, nil
}

func NewHandler(authUc authUsecase.AuthUsecase, profileUc profileUsecasePkg.ProfileUsecase, summaryUc summaryUsecasePkg.SummaryUsecase, cfg *config.Config) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.GroqModel, cfg.OllamaBaseURL, cfg.OllamaModel)

	// Each generation attempt resolves its own service so the user's own
	// API key (when set on the profile) takes effect without a restart.
	summaryUc.SetAIServiceResolver(func(apiKey string) (ai.SummarizerService, error) {
		aiCfg := ai.DynamicConfig{
			Provider:         ai.ProviderType(cfg.AIProvider),
			GroqAPIKey:       apiKey,
			GetGroqModel:     GetRuntimeGroqModel,
			GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
			GetOllamaModel:   GetRuntimeOllamaModel,
		}
		return ai.NewSummarizerServiceWithDynamicConfig(aiCfg)
	})
	log.Printf("AI service resolver initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)

	// Create the user's profile automatically at registration
	authUc.SetProfileCreator(profileUc.CreateInitial)

	summaryHandler := summaryDelivery.NewSummaryHandler(summaryUc, cfg)
	profileHandler := profileDelivery.NewProfileHandler(profileUc, &statsAdapter{summaryUc: summaryUc})

	return &Handler{
		authUsecase:    authUc,
		config:         cfg,
		summaryHandler: summaryHandler,
		profileHandler: profileHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.summaryHandler, h.profileHandler)

	return r.Run(addr)
}
