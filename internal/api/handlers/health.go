package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"transcript-cleaner/internal/api/dto"
)

// HealthHandler reports liveness and the configured backends
type HealthHandler struct {
	transcriber string
	cleanup     string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(transcriber, cleanup string) *HealthHandler {
	return &HealthHandler{transcriber: transcriber, cleanup: cleanup}
}

// Health handles GET /health. It is mounted outside /api and not part of the Swagger document.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().Unix(),
		Transcriber: h.transcriber,
		Cleanup:     h.cleanup,
	})
}
