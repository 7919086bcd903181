package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/backend/internal/config"
	"flashcards/backend/internal/db"
	"flashcards/backend/internal/handler"
	transport "flashcards/backend/internal/http"
	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/scheduler"
	"flashcards/backend/internal/service"
	"flashcards/backend/internal/service/ai"
	"flashcards/backend/internal/service/google"
	"flashcards/backend/internal/snowflake"
)

// @title Flashcards API
// @version 1.0
// @description REST backend for the vocabulary flashcards application.
// @BasePath /
func main() {
	cfg := config.Load()

	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	topicRepo := repository.NewTopicRepository(dbConn)
	entryRepo := repository.NewEntryRepository(dbConn)
	exampleRepo := repository.NewExampleRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)
	sessionRepo := repository.NewSessionRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)

	verifier := google.NewVerifier(cfg.GoogleClientIDs)
	rateLimiter := ai.NewRateLimiter(ai.DefaultRateLimit)

	topicService := service.NewTopicService(topicRepo)
	entryService := service.NewEntryService(entryRepo, topicRepo, exampleRepo)
	authService := service.NewAuthService(verifier, userRepo, sessionRepo, cfg.SessionTTLDays)
	importService := service.NewImportService(dbConn)
	importTaskService := service.NewImportTaskService()
	statsService := service.NewStatsService(topicRepo, entryRepo, exampleRepo, userRepo, sessionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	aiService := service.NewAIService(entryRepo, exampleRepo, settingsRepo, rateLimiter)

	topicHandler := handler.NewTopicHandler(topicService)
	entryHandler := handler.NewEntryHandler(entryService, aiService)
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName, cfg.AuthCookieSecure)
	importHandler := handler.NewImportHandler(importService, importTaskService)
	statsHandler := handler.NewStatsHandler(statsService)
	aiHandler := handler.NewAIHandler(settingsService)

	router := transport.NewRouter(
		topicHandler,
		entryHandler,
		authHandler,
		importHandler,
		statsHandler,
		aiHandler,
		authService,
		transport.RouterConfig{
			CookieName:      cfg.CookieName,
			FrontendOrigins: cfg.FrontendOrigins,
		},
	)

	// Background session purge (hourly)
	sched := scheduler.New(sessionRepo, time.Hour)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
