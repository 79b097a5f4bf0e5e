// Generation stage of the optimization pipeline: one
// AI-service invocation that turns the extracted product description into
// the full optimization payload (product type, seven keyword categories,
// scored titles, descriptions, and tags). Like extraction, the service
// owns its failure taxonomy and performs no retries.
package services

import (
	"context"
	"encoding/json"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-listing-optimizer/internal/ai"
	"github.com/tbourn/go-listing-optimizer/internal/domain"
)

// GenerateService produces a domain.OptimizationResult from a product
// description via the fixed SEO-methodology system prompt.
type GenerateService struct {
	// Provider performs the completion. Tests inject fakes.
	Provider ai.Provider
}

// Generate runs the generation call and parses the reply.
//
// The stable required contract is productType, keywords (all seven
// categories present), titles, and tags; descriptions are accepted when
// present but their absence is not an error. Entry counts and scores are
// surfaced as the AI returned them, without local validation.
//
// Failure classification:
//   - transport failure          → ErrGenerateNetwork
//   - AI-side quota / rate limit → ErrGenerateBusy
//   - unparseable or incomplete  → ErrGenerateFormat
//   - anything else              → ErrGenerateFailed
func (s *GenerateService) Generate(ctx context.Context, description string) (*domain.OptimizationResult, error) {
	tr := otel.Tracer("services/GenerateService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(attribute.Int("description.len", len(description))),
	)
	defer span.End()

	raw, err := s.Provider.Complete(ctx, ai.OptimizeSystemPrompt, description)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrRateLimited):
			return nil, ErrGenerateBusy
		case errors.Is(err, ai.ErrUnavailable):
			return nil, ErrGenerateNetwork
		default:
			return nil, ErrGenerateFailed
		}
	}

	var result domain.OptimizationResult
	if uerr := json.Unmarshal([]byte(ai.StripFence(raw)), &result); uerr != nil {
		return nil, ErrGenerateFormat
	}
	if !hasRequiredFields(&result) {
		return nil, ErrGenerateFormat
	}
	return &result, nil
}

// hasRequiredFields checks the stable schema contract: productType,
// non-empty titles and tags, and all seven keyword categories present
// (empty lists are allowed, missing ones are not).
func hasRequiredFields(r *domain.OptimizationResult) bool {
	if r.ProductType == "" || len(r.Titles) == 0 || len(r.Tags) == 0 {
		return false
	}
	kw := r.Keywords
	for _, c := range [][]string{kw.Anchor, kw.Descriptive, kw.Who, kw.What, kw.Where, kw.When, kw.Why} {
		if c == nil {
			return false
		}
	}
	return true
}
