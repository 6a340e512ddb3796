package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"transcript-cleaner/internal/api/errors"
)

// ValidateRequest binds a JSON body and validates its binding tags
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err, "request", "invalid JSON format")
	}
	return nil
}

// ValidateForm binds a multipart form, including file fields
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindWith(req, binding.FormMultipart); err != nil {
		return bindingError(err, "request", "invalid multipart form")
	}
	return nil
}

func bindingError(err error, key, fallback string) error {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.NewValidationError(errors.CodeMalformed, map[string]string{key: fallback})
	}

	code := errors.CodeInvalidField
	validationErrors := make(map[string]string)
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			validationErrors[field] = "is required"
			code = errors.CodeMissingField
		case "min":
			validationErrors[field] = "is too short"
		case "max":
			validationErrors[field] = "is too long"
		default:
			validationErrors[field] = "is invalid"
		}
	}

	return errors.NewValidationError(code, validationErrors)
}
