package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"docreview/internal/config"
	"docreview/internal/handler"
	"docreview/internal/provider"
	_ "docreview/internal/provider/gemini"
	"docreview/internal/repository/postgres"
	"docreview/internal/router"
	"docreview/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sectionRepo := postgres.NewSectionRepo(db)
	rulesetRepo := postgres.NewRulesetRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	revisionRepo := postgres.NewRevisionRepo(db)
	resultRepo := postgres.NewResultRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)

	// Initialize the AI provider
	generator, err := provider.New(&cfg.Provider)
	if err != nil {
		return fmt.Errorf("failed to initialize provider: %w", err)
	}

	// Initialize services
	sectionSvc := service.NewSectionService(sectionRepo)
	rulesetSvc := service.NewRulesetService(rulesetRepo, sectionRepo)
	sessionSvc := service.NewSessionService(sessionRepo, rulesetRepo, resultRepo)
	revisionSvc := service.NewRevisionService(revisionRepo, sessionRepo, resultRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, cfg.Provider.APIKey)
	reviewSvc := service.NewReviewService(
		sessionRepo, revisionRepo, rulesetRepo, resultRepo,
		settingsSvc, generator, cfg.Review.FailOnComparisonError,
	)

	// Initialize the review runner and wire it back into the service
	runner := service.NewReviewRunner(reviewSvc, service.ReviewRunnerConfig{
		Concurrency: cfg.Review.Concurrency,
		QueueSize:   cfg.Review.QueueSize,
	})
	reviewSvc.SetTrigger(runner)

	// Initialize handlers
	sectionH := handler.NewSectionHandler(sectionSvc)
	rulesetH := handler.NewRulesetHandler(rulesetSvc)
	sessionH := handler.NewSessionHandler(sessionSvc, reviewSvc)
	revisionH := handler.NewRevisionHandler(revisionSvc, reviewSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, sectionH, rulesetH, sessionH, revisionH, settingsH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Wait for in-flight reviews to finish
	<-runnerDone
	return nil
}
