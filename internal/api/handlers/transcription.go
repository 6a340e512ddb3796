package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"transcript-cleaner/internal/api/dto"
	"transcript-cleaner/internal/api/middleware"
	"transcript-cleaner/internal/api/services"
)

// TranscriptionHandler handles POST /api/transcribe
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /api/transcribe
//
// @Summary Transcribe an audio file
// @Description Uploads an audio file (at most 10,000,000 bytes) and returns its transcript. Rejections and failures are reported in the body with status 200.
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 200 {object} dto.TranscribeResponse "Transcript"
// @Success 200 {object} dto.ErrorResponse "File too large or transcription failed"
// @Failure 422 {object} errors.APIError "Missing file field"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var req dto.TranscribeRequest

	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result := h.service.Transcribe(c.Request.Context(), services.NewMultipartUpload(req.File))

	switch result.Outcome {
	case services.OutcomeTranscribed:
		c.JSON(http.StatusOK, dto.TranscribeResponse{Text: result.Text})
	case services.OutcomeRejected:
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: dto.MsgFileTooLarge})
	default:
		if result.Err != nil {
			_ = c.Error(result.Err)
		}
		c.JSON(http.StatusOK, dto.ErrorResponse{Error: dto.MsgTranscriptionFailed})
	}
}
