package routes

import (
	"github.com/gin-gonic/gin"
	"transcript-cleaner/internal/api/handlers"
	"transcript-cleaner/internal/api/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	CleanupService       services.CleanupService
}

// RegisterRoutes registers the /api routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	router.POST("/transcribe", transcriptionHandler.Transcribe)

	cleanupHandler := handlers.NewCleanupHandler(container.CleanupService)
	router.POST("/clean", cleanupHandler.Clean)
}
