package handlers

import (
	"net/http"

	"busstation/internal/domain"
	"busstation/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads for JSON clients.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	reqID := middleware.GetRequestID(c)
	if wantsJSON(c) {
		c.JSON(status, ErrorResponse{Error: message, Code: code, RequestID: reqID})
		return
	}
	c.HTML(status, "error.html", gin.H{
		"Title":     http.StatusText(status),
		"Message":   message,
		"RequestID": reqID,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Store failures get
// a generic message; the detail goes to the access log via c.Error.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case domain.IsUnknownTable(err):
		respondError(c, http.StatusNotFound, "unknown_table", "Table not found")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsConstraint(err):
		respondError(c, http.StatusInternalServerError, "constraint_error", "internal server error")
	case domain.IsInternal(err):
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	default:
		respondError(c, http.StatusInternalServerError, "unexpected_error", "internal server error")
	}
}
