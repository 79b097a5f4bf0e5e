// Package ai wraps the generative content service behind a small Provider
// interface so the services layer depends on a contract rather than a
// vendor SDK. The concrete implementation lives in anthropic.go; tests
// inject fakes.
//
// The provider returns raw model text. Responses are frequently wrapped in
// a markdown fenced code block even when JSON output is requested, so
// StripFence must be applied before parsing.
package ai

import (
	"context"
	"errors"
	"strings"
)

// Provider is the boundary contract for one generative completion.
// Implementations perform exactly one service invocation per call;
// no retries are attempted at this layer.
type Provider interface {
	// Complete sends a system instruction and a user prompt and returns
	// the raw text of the model's reply.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Error kinds surfaced by providers. Callers classify failures with
// errors.Is; anything not wrapped in one of these is an "other" failure.
var (
	// ErrUnavailable marks transport-level failures (connection refused,
	// DNS, timeouts) where the service was never reached or never answered.
	ErrUnavailable = errors.New("ai service unavailable")

	// ErrRateLimited marks quota or rate-limit rejections raised by the
	// AI service itself, distinct from this application's daily quota.
	ErrRateLimited = errors.New("ai service rate limited")
)

// StripFence removes exactly one leading/trailing markdown code fence
// (```json or ```) from a model reply, leaving unwrapped replies intact.
// Only the outermost fence is stripped; fences inside the payload are
// preserved.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
