// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints,
// including structured error envelopes, consistent JSON serialization, and
// helpers for common HTTP patterns. The goal is to guarantee uniform responses
// for both success and failure cases, making the API predictable and
// machine-friendly.
//
// Conventions:
//   - All error responses must return an ErrorResponse with a stable `code`.
//   - The quota-exceeded case uses the extended QuotaExceededResponse so the
//     client can render a "request more access" affordance with a live
//     contact address.
//   - `fail()` centralizes error logging and formatting, ensuring 5xx
//     responses are logged with request context for observability.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-listing-optimizer/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: Optional correlation ID, echoed from X-Request-ID header, used
//     to correlate server logs with client-side errors.
//   - Code: A stable, machine-readable string (see errors.go constants).
//   - Message: A human-readable error description, safe for display to users.
//   - Error: Duplicate of Message under the `error` key. Earlier API
//     generations exposed the description there and existing clients
//     still read it; both keys carry the same text.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"URL is required"`
	// Same text as Message, kept for clients that read `error`
	Error string `json:"error" example:"URL is required"`
}

// QuotaExceededResponse is the 429 body for a spent daily quota. The
// rate-limit extras use the same camelCase keys as the success payload's
// rateLimit object so the client handles both with one shape.
type QuotaExceededResponse struct {
	RequestID         string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code              string `json:"code" example:"too_many_requests"`
	Message           string `json:"message" example:"Daily limit reached. Request more access:"`
	Error             string `json:"error" example:"Daily limit reached. Request more access:"`
	RateLimitExceeded bool   `json:"rateLimitExceeded" example:"true"`
	ContactEmail      string `json:"contactEmail" example:"support@listingoptimizer.app"`
	Remaining         int    `json:"remaining" example:"0"`
	MaxPerDay         int    `json:"maxPerDay" example:"5"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// It constructs an ErrorResponse, writes it as JSON with the given HTTP status,
// and calls gin.Context.AbortWithStatusJSON to stop further processing.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
		Error:     msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failQuota aborts with the 429 quota body.
func failQuota(c *gin.Context, msg, contactEmail string, maxPerDay int) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, QuotaExceededResponse{
		RequestID:         c.Writer.Header().Get("X-Request-ID"),
		Code:              ErrCodeRateLimited,
		Message:           msg,
		Error:             msg,
		RateLimitExceeded: true,
		ContactEmail:      contactEmail,
		Remaining:         0,
		MaxPerDay:         maxPerDay,
	})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
