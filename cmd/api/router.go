package api

import (
	"net/http"

	"summarizer-backend/internal/auth/delivery"
	authUsecase "summarizer-backend/internal/auth/usecase"
	profileDelivery "summarizer-backend/internal/profile/delivery"
	summaryDelivery "summarizer-backend/internal/summary/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, summaryHandler *summaryDelivery.SummaryHandler, profileHandler *profileDelivery.ProfileHandler) {
	authHandler := delivery.NewAuthHandler(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// CSRF token for cookie-based clients (no auth required)
		api.GET("/csrf-token", GetCSRFToken)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Dashboard (protected)
		api.GET("/dashboard", delivery.AuthMiddleware(authUsecase), summaryHandler.Dashboard)

		// Summary routes (protected)
		summaries := api.Group("/summaries")
		summaries.Use(delivery.AuthMiddleware(authUsecase))
		{
			summaries.GET("", summaryHandler.List)
			summaries.POST("", summaryHandler.Create)
			summaries.GET("/suggestions", summaryHandler.Suggestions)
			summaries.GET("/:id", summaryHandler.Detail)
			summaries.PUT("/:id", summaryHandler.Edit)
			summaries.DELETE("/:id", summaryHandler.Delete)
			summaries.POST("/:id/generate", summaryHandler.Generate)
			summaries.POST("/:id/share", summaryHandler.Share)
		}

		// Profile routes (protected)
		profile := api.Group("/profile")
		profile.Use(delivery.AuthMiddleware(authUsecase))
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ai", GetAISettings)
			settings.PUT("/ai", UpdateAISettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
