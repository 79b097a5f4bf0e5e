package domain

import "encoding/json"

// ProductDetails is the transient value extracted from a listing URL.
// It is produced by the extraction service, consumed immediately by the
// generation service, and never persisted.
type ProductDetails struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// RatedItem is a generated text candidate paired with an AI-assigned
// quality score in [1,100]. The score is not validated or clamped
// locally, but the AI contract declares it a number, not an integer, so
// fractional scores are accepted on decode and truncated toward zero
// rather than failing the whole payload.
type RatedItem struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// UnmarshalJSON decodes the score through json.Number so a fractional
// value like 87.5 becomes 87 instead of a decode error.
func (r *RatedItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		Text  string      `json:"text"`
		Score json.Number `json:"score"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Text = raw.Text
	r.Score = 0
	if raw.Score != "" {
		f, err := raw.Score.Float64()
		if err != nil {
			return err
		}
		r.Score = int(f)
	}
	return nil
}

// Keywords holds the seven fixed semantic keyword categories produced by
// the generation prompt: anchor nouns, descriptive modifiers, and the
// five W's used for tags.
type Keywords struct {
	Anchor      []string `json:"anchor"`
	Descriptive []string `json:"descriptive"`
	Who         []string `json:"who"`
	What        []string `json:"what"`
	Where       []string `json:"where"`
	When        []string `json:"when"`
	Why         []string `json:"why"`
}

// RateLimitInfo annotates a successful optimization with the caller's
// remaining daily quota. Remaining reflects this call's consumption
// exactly once: it is computed from the pre-call count minus one, not
// re-queried after the event write.
type RateLimitInfo struct {
	Remaining int `json:"remaining"`
	MaxPerDay int `json:"maxPerDay"`
}

// OptimizationResult is the transient payload returned to the caller.
// Titles should contain 5 entries and Tags 30 per the prompt contract,
// but malformed counts are surfaced as-is; the client renders incomplete
// data defensively. Descriptions are part of the prompt contract but not
// schema-required.
type OptimizationResult struct {
	ProductType  string         `json:"productType"`
	Keywords     Keywords       `json:"keywords"`
	Titles       []RatedItem    `json:"titles"`
	Descriptions []RatedItem    `json:"descriptions,omitempty"`
	Tags         []RatedItem    `json:"tags"`
	RateLimit    *RateLimitInfo `json:"rateLimit,omitempty"`
}
