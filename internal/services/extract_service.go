// Extraction stage of the optimization pipeline: one
// AI-service invocation that turns a validated listing URL into structured
// product details. The service owns the extraction failure taxonomy; every
// error it returns is one of the sentinels in errors.go, carrying the
// user-facing message verbatim.
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

// ExtractService turns a listing URL into domain.ProductDetails by
// delegating to the AI content service with a fixed instruction and a
// fixed output schema. One invocation, one outcome; no retries.
type ExtractService struct {
	// Provider performs the completion. Tests inject fakes.
	Provider ai.Provider
}

// Extract runs the extraction call and parses the reply.
//
// Failure classification:
//   - transport failure            → ErrExtractNetwork
//   - malformed structured reply   → ErrExtractFormat
//   - empty/absent title or description after parse → ErrExtractMissingFields
//   - anything else                → ErrExtractFailed
func (s *ExtractService) Extract(ctx context.Context, url string) (*domain.ProductDetails, error) {
	tr := otel.Tracer("services/ExtractService")
	ctx, span := tr.Start(ctx, "Extract",
		trace.WithAttributes(attribute.String("listing.url", url)),
	)
	defer span.End()

	raw, err := s.Provider.Complete(ctx, ai.ExtractSystemPrompt, url)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return nil, ErrExtractNetwork
		}
		return nil, ErrExtractFailed
	}

	var details domain.ProductDetails
	if uerr := json.Unmarshal([]byte(ai.StripFence(raw)), &details); uerr != nil {
		return nil, ErrExtractFormat
	}
	if details.Title == "" || details.Description == "" {
		return nil, ErrExtractMissingFields
	}
	if details.Tags == nil {
		details.Tags = []string{}
	}
	return &details, nil
}
