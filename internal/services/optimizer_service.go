// Package services implements the business logic for the optimization
// pipeline.
//
// This file implements the request-scoped orchestration of one
// optimization run: quota check, identity capture, extraction,
// generation, and the quota-ledger write, strictly in that order. Each
// stage is a single failure boundary; there is no parallelism and no
// retry. Field and URL validation happen before the service is invoked
// (see the HTTP layer), so every call that reaches Optimize carries a
// syntactically valid listing URL.
package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-listing-optimizer/internal/domain"
	"github.com/tbourn/go-listing-optimizer/internal/repo"
)

// Extractor is the extraction stage contract consumed by the orchestrator.
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.ProductDetails, error)
}

// Generator is the generation stage contract consumed by the orchestrator.
type Generator interface {
	Generate(ctx context.Context, description string) (*domain.OptimizationResult, error)
}

// OptimizerService sequences one optimization run against the quota
// ledger and the two AI-calling stages. It holds no per-request state and
// is safe for concurrent use.
type OptimizerService struct {
	// DB is the GORM handle backing the quota ledger.
	DB *gorm.DB
	// Extract and Generate are the two AI stages, injected so tests can
	// fake either side.
	Extract  Extractor
	Generate Generator
	// MaxPerDay caps successful optimizations per email per calendar day.
	MaxPerDay int
}

// Optimize runs the full pipeline for one request and returns the
// generation result decorated with rate-limit metadata.
//
// Stage order and failure mapping (statuses applied by the handler):
//   - quota read failure      → raw storage error (500)
//   - quota exhausted         → ErrQuotaExceeded (429)
//   - identity capture        → never fails the request; errors logged
//   - extraction failure      → ErrExtract* sentinel (400)
//   - generation failure      → ErrGenerate* sentinel (500)
//   - ledger write failure    → raw storage error (500), logged loudly:
//     the expensive AI work already succeeded and did not consume quota
//
// Remaining quota in the response is the pre-call remaining minus one; it
// is not re-queried after the write, so it reflects this call's
// consumption exactly once.
//
// Known race: the quota check is not re-run after the AI calls, and the
// check and the event insert are not wrapped in a transaction. Two
// concurrent requests from the same email can both pass the check and
// record maxPerDay+1 events. Accepted: the quota is a soft cost cap,
// not a billing boundary.
func (s *OptimizerService) Optimize(ctx context.Context, listingURL, email, name string) (*domain.OptimizationResult, error) {
	tr := otel.Tracer("services/OptimizerService")
	ctx, span := tr.Start(ctx, "Optimize",
		trace.WithAttributes(attribute.String("listing.url", listingURL)),
	)
	defer span.End()

	used, err := repo.CountOptimizationsSince(ctx, s.DB, email, StartOfDay(time.Now()))
	if err != nil {
		return nil, err
	}
	remaining := s.MaxPerDay - int(used)
	if int(used) >= s.MaxPerDay {
		return nil, ErrQuotaExceeded
	}

	// Identity capture is best effort and must never block the pipeline.
	if uerr := repo.UpsertEmail(ctx, s.DB, email, strings.TrimSpace(name)); uerr != nil {
		log.Warn().Err(uerr).Msg("identity capture failed")
	}

	details, err := s.Extract.Extract(ctx, listingURL)
	if err != nil {
		return nil, err
	}

	result, err := s.Generate.Generate(ctx, details.Description)
	if err != nil {
		return nil, err
	}

	if _, werr := repo.CreateOptimization(ctx, s.DB, email, &listingURL); werr != nil {
		log.Error().Err(werr).Str("email", email).
			Msg("optimization succeeded but the quota record write failed; this run consumed no quota")
		return nil, werr
	}

	result.RateLimit = &domain.RateLimitInfo{
		Remaining: remaining - 1,
		MaxPerDay: s.MaxPerDay,
	}
	return result, nil
}

// StartOfDay returns midnight of t's calendar day in t's location. The
// quota window is server-local, so the daily reset follows the server
// clock, not UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
