package main

import (
	"log"

	api "summarizer-backend/cmd/api"
	authdomain "summarizer-backend/internal/auth/domain"
	authRepo "summarizer-backend/internal/auth/repository"
	authUsecase "summarizer-backend/internal/auth/usecase"
	profiledomain "summarizer-backend/internal/profile/domain"
	profileRepo "summarizer-backend/internal/profile/repository"
	profileUsecase "summarizer-backend/internal/profile/usecase"
	summarydomain "summarizer-backend/internal/summary/domain"
	summaryRepo "summarizer-backend/internal/summary/repository"
	summaryUsecase "summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&profiledomain.UserProfile{},
		&summarydomain.Summary{},
		&summarydomain.AIProcessingLog{},
		&summarydomain.SharedSummaryLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	profileRepository := profileRepo.NewProfileRepository(db)
	summaryRepository := summaryRepo.NewSummaryRepository(db)
	processingLogRepository := summaryRepo.NewProcessingLogRepository(db)
	shareLogRepository := summaryRepo.NewShareLogRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	profileUsecaseInstance := profileUsecase.NewProfileUsecase(profileRepository, userRepository)
	summaryUsecaseInstance := summaryUsecase.NewSummaryUsecase(
		summaryRepository,
		processingLogRepository,
		shareLogRepository,
		profileRepository,
		userRepository,
		cfg,
	)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, profileUsecaseInstance, summaryUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
