package dto

// CleanRequest is the body of POST /api/clean. Text must be present; an
// empty string is accepted.
type CleanRequest struct {
	Text *string `json:"text" binding:"required" example:"um so like the the meeting is at uh 3pm"`
}

// CleanResponse carries the cleaned transcript, or the input when cleanup failed
type CleanResponse struct {
	CleanedText string `json:"cleaned_text" example:"The meeting is at 3pm."`
}
