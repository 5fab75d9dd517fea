package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoiceqc/internal/domain"
	"invoiceqc/internal/logger"
)

// APIError is the error body for request-level failures. Validation
// findings are not errors at this layer; they travel inside the report.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"error": APIError{Code: code, Message: msg}})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidBatch):
		return http.StatusBadRequest, "INVALID_BATCH", "request body is not a JSON array of invoice objects"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; plain-text documents only"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrNoDocuments):
		return http.StatusBadRequest, "NO_DOCUMENTS", "no documents supplied"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log := logger.WithComponent("handler")
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("internal error")
	}
	RespondError(c, status, code, msg)
}
