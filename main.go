package main

import (
	"log"

	api "meeting-notes-backend/cmd/api"
	"meeting-notes-backend/internal/note/domain"
	"meeting-notes-backend/internal/note/repository"
	"meeting-notes-backend/internal/note/usecase"
	"meeting-notes-backend/internal/notification"
	"meeting-notes-backend/pkg/ai"
	"meeting-notes-backend/pkg/config"
	"meeting-notes-backend/pkg/database"
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
	if err := db.AutoMigrate(&domain.MeetingNote{}, &domain.EmailShare{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	noteRepo := repository.NewNoteRepository(db)
	shareRepo := repository.NewEmailShareRepository(db)

	// The Gemini key is required at startup unless the local Ollama provider
	// was selected explicitly.
	if cfg.AIProvider != string(ai.ProviderOllama) && cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}
	summarizer, err := ai.NewSummarizer(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI summarizer:", err)
	}

	// Email is optional at startup; credentials are checked at send time
	mailer := notification.NewMailer(cfg)
	if !mailer.Configured() {
		log.Printf("[WARN] EMAIL_USERNAME/EMAIL_PASSWORD not configured, email sharing disabled")
	}

	noteUsecase := usecase.NewNoteUsecase(noteRepo, shareRepo, summarizer, mailer)

	r := api.SetupRouter(cfg, noteUsecase)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
