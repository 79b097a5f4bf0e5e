// Optimization HTTP handler.
//
// This file exposes the single mutation endpoint of the application:
//   - POST /optimize  (run the full optimization pipeline)
//
// The handler is transport-thin: it validates the request body and listing
// URL, calls the orchestration service, and translates service errors into
// HTTP statuses. User-facing error text is owned by the component that
// detected the failure (validator, extractor, generator) and passed
// through unchanged.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-listing-optimizer/internal/config"
	"github.com/tbourn/go-listing-optimizer/internal/domain"
	"github.com/tbourn/go-listing-optimizer/internal/listing"
	"github.com/tbourn/go-listing-optimizer/internal/services"
)

//
// Service contracts (context-aware)
//

// OptimizeService runs the full optimization pipeline for one request.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type OptimizeService interface {
	Optimize(ctx context.Context, url, email, name string) (*domain.OptimizationResult, error)
}

// EmailService registers a self-reported identity without running an
// optimization (first-time-user capture flow).
type EmailService interface {
	Register(ctx context.Context, name, email string) (*domain.Email, error)
}

// StatsService reads aggregate usage counters for the analytics endpoint.
type StatsService interface {
	Totals(ctx context.Context) (*services.Stats, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for optimization, identity capture,
// and analytics. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	optSvc   OptimizeService
	emailSvc EmailService
	statsSvc StatsService
	quota    config.QuotaConfig
}

// New constructs and returns a Handlers instance bound to the given services.
func New(optSvc OptimizeService, emailSvc EmailService, statsSvc StatsService, quota config.QuotaConfig) *Handlers {
	return &Handlers{optSvc: optSvc, emailSvc: emailSvc, statsSvc: statsSvc, quota: quota}
}

//
// DTOs
//

// OptimizeRequest is the JSON payload for running an optimization.
type OptimizeRequest struct {
	// URL is the Etsy listing to optimize.
	URL string `json:"url" example:"https://www.etsy.com/listing/1234567890/personalized-cutting-board"`
	// Email identifies the caller for quota purposes (unverified).
	Email string `json:"email" example:"seller@example.com"`
	// Name is the caller's display name, captured on first use.
	Name string `json:"name" example:"Jane Seller"`
}

//
// Handlers
//

// Optimize godoc
// @ID          optimizeListing
// @Summary     Optimize an Etsy listing
// @Description Extracts product details from the listing URL and generates SEO titles, descriptions, tags, and keyword categories. One successful run consumes one unit of the caller's daily quota.
// @Tags        Optimizer
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.OptimizeRequest  true  "Optimization payload"
//
// @Success     200  {object}  domain.OptimizationResult
// @Failure     400  {object}  handlers.ErrorResponse         "Missing field, invalid listing URL, or extraction failure"
// @Failure     429  {object}  handlers.QuotaExceededResponse "Daily quota spent"
// @Failure     500  {object}  handlers.ErrorResponse         "Generation, storage, or unexpected failure"
// @Router      /optimize [post]
func (h *Handlers) Optimize(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Field presence, checked in order; no external call happens before
	// these pass.
	if req.URL == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "URL is required")
		return
	}
	if req.Email == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Email is required")
		return
	}
	if req.Name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Name is required")
		return
	}

	if err := listing.ValidateURL(req.URL); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidURL, err.Error())
		return
	}

	result, err := h.optSvc.Optimize(c.Request.Context(), req.URL, req.Email, req.Name)
	if err != nil {
		h.failOptimize(c, err)
		return
	}
	ok(c, http.StatusOK, result)
}

// failOptimize maps pipeline errors to HTTP statuses. Extraction failures
// are the caller's problem (400); generation and storage failures are
// ours (500); a spent quota is 429 with the structured body.
func (h *Handlers) failOptimize(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrQuotaExceeded):
		failQuota(c, err.Error(), h.quota.ContactEmail, h.quota.MaxPerDay)

	case errors.Is(err, services.ErrExtractNetwork),
		errors.Is(err, services.ErrExtractFormat),
		errors.Is(err, services.ErrExtractMissingFields),
		errors.Is(err, services.ErrExtractFailed):
		fail(c, http.StatusBadRequest, ErrCodeExtractFailed, err.Error())

	case errors.Is(err, services.ErrGenerateNetwork),
		errors.Is(err, services.ErrGenerateFormat),
		errors.Is(err, services.ErrGenerateBusy),
		errors.Is(err, services.ErrGenerateFailed):
		fail(c, http.StatusInternalServerError, ErrCodeGenerateFailed, err.Error())

	default:
		// Storage failures and anything unclassified: never leak internal
		// error text to the client.
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "Unexpected error. Please try again.")
	}
}
