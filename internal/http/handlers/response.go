// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints: the
// error envelope, the business-error to status mapping, and success writers.
//
// Conventions:
//   - Business CodeBadRequest maps to 400, everything else to 500.
//   - The message is the service message verbatim; nothing is redacted.
//   - fail() logs 5xx responses with the request-scoped logger.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/qa-backend/internal/http/middleware"
	"github.com/tbourn/qa-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Original error message
	Message string `json:"message" example:"invalid UUID length: 10"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get(middleware.RequestIDHeader),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failErr maps a service error to its HTTP status and writes the envelope.
func failErr(c *gin.Context, err error) {
	status, code := StatusFor(err)
	fail(c, status, code, err.Error())
}

// StatusFor returns the HTTP status and error code for a service error.
func StatusFor(err error) (int, string) {
	var be *services.Error
	if errors.As(err, &be) && be.Code == services.CodeBadRequest {
		return http.StatusBadRequest, ErrCodeBadRequest
	}
	return http.StatusInternalServerError, ErrCodeInternal
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// empty writes a success status with no body.
func empty(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
}
