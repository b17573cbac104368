package router

import (
	"github.com/gin-gonic/gin"

	"docreview/internal/config"
	"docreview/internal/handler"
	"docreview/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sectionH *handler.SectionHandler,
	rulesetH *handler.RulesetHandler,
	sessionH *handler.SessionHandler,
	revisionH *handler.RevisionHandler,
	settingsH *handler.SettingsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Section catalog
	sections := v1.Group("/sections")
	sections.POST("", sectionH.Create)
	sections.GET("", sectionH.List)
	sections.GET("/:id", sectionH.GetByID)
	sections.PUT("/:id", sectionH.Update)
	sections.DELETE("/:id", sectionH.Delete)

	// Ruleset builder
	rulesets := v1.Group("/rulesets")
	rulesets.POST("", rulesetH.Create)
	rulesets.GET("", rulesetH.List)
	rulesets.GET("/:id", rulesetH.GetByID)
	rulesets.PUT("/:id", rulesetH.Update)
	rulesets.DELETE("/:id", rulesetH.Delete)

	// Review sessions and pipeline
	sessions := v1.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.POST("/create-with-uploads", sessionH.CreateWithUploads)
	sessions.GET("", sessionH.List)
	sessions.GET("/:id", sessionH.GetByID)
	sessions.DELETE("/:id", sessionH.Delete)
	sessions.POST("/:id/process", sessionH.Process)
	sessions.POST("/:id/process-with-progress", sessionH.Process)
	sessions.POST("/:id/reprocess", sessionH.Reprocess)
	sessions.GET("/:id/summary", sessionH.Summary)
	sessions.GET("/:id/export", sessionH.Export)

	// Revision timeline
	sessions.POST("/:id/revisions", revisionH.Create)
	sessions.GET("/:id/revisions", revisionH.List)
	sessions.GET("/:id/revisions/:rid", revisionH.GetByID)
	sessions.POST("/:id/revisions/:rid/process", revisionH.Process)

	// Settings
	settings := v1.Group("/settings")
	settings.GET("", settingsH.List)
	settings.POST("", settingsH.Upsert)

	return r
}
