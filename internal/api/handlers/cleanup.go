package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"transcript-cleaner/internal/api/dto"
	"transcript-cleaner/internal/api/middleware"
	"transcript-cleaner/internal/api/services"
)

// CleanupHandler handles POST /api/clean
type CleanupHandler struct {
	service services.CleanupService
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(service services.CleanupService) *CleanupHandler {
	return &CleanupHandler{
		service: service,
	}
}

// Clean handles POST /api/clean
//
// @Summary Clean up a transcript
// @Description Removes filler words and fixes punctuation using a remote language model. If the remote call fails the original text is returned unchanged.
// @Tags cleanup
// @Accept json
// @Produce json
// @Param request body dto.CleanRequest true "Raw transcript"
// @Success 200 {object} dto.CleanResponse "Cleaned or original text"
// @Failure 422 {object} errors.APIError "Malformed body or missing text"
// @Router /clean [post]
func (h *CleanupHandler) Clean(c *gin.Context) {
	var req dto.CleanRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result := h.service.Clean(c.Request.Context(), *req.Text)
	if result.Degraded && result.Err != nil {
		_ = c.Error(result.Err)
	}

	c.JSON(http.StatusOK, dto.CleanResponse{CleanedText: result.Text})
}
