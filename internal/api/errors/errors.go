package errors

import (
	"net/http"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindInternal   ErrorKind = "internal"
)

// Codes narrowing down a validation failure
const (
	CodeMissingField = "missing_field"
	CodeInvalidField = "invalid_field"
	CodeMalformed    = "malformed_request"
)

// APIError is the body of every non-200 response. Outcomes of a well-formed
// transcribe or clean request never use it.
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	if e.Kind == KindValidation {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// NewValidationError creates a validation error with per-field details
func NewValidationError(code string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: fields,
		Code:    code,
	}
}

// NewInternalError creates an internal server error. The message is sent to the client as is.
func NewInternalError(requestID string) *APIError {
	return &APIError{
		Kind:      KindInternal,
		Message:   "Internal server error",
		RequestID: requestID,
	}
}
