package dto

import "mime/multipart"

// Error payloads returned by POST /api/transcribe
const (
	MsgFileTooLarge        = "File size exceeds 10MB limit"
	MsgTranscriptionFailed = "Transcription failed"
)

// TranscribeRequest is the multipart form of POST /api/transcribe
type TranscribeRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required" swaggerignore:"true"`
}

// TranscribeResponse carries the transcript of a successful upload
type TranscribeResponse struct {
	Text string `json:"text" example:"And so my fellow Americans, ask not what your country can do for you."`
}

// ErrorResponse is returned with status 200 when an upload is rejected or fails
type ErrorResponse struct {
	Error string `json:"error" example:"Transcription failed"`
}
