package dto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Timestamp   int64  `json:"timestamp"`
	Transcriber string `json:"transcriber" example:"whisper_cpp"`
	Cleanup     string `json:"cleanup" example:"openai"`
}
