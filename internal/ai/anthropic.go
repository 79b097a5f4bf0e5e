// Anthropic-backed Provider implementation.
//
// One Complete call maps to one Messages API request. SDK errors are
// translated into the package's error kinds so the services layer can
// classify failures without importing the vendor SDK.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// maxCompletionTokens bounds one reply. The generation payload (5 titles,
// 5 descriptions, 30 tags, 7 keyword lists) fits comfortably under this.
const maxCompletionTokens = 8192

// Client calls the Anthropic Messages API. It is safe for concurrent use.
type Client struct {
	api   anthropic.Client
	model anthropic.Model
}

// NewClient builds a Client for the given API key and model identifier.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: anthropic.Model(model),
	}
}

// Complete performs a single completion and returns the concatenated text
// blocks of the reply. It classifies vendor errors:
//   - HTTP 429 (and 529 overload) → ErrRateLimited
//   - non-API errors (transport)  → ErrUnavailable
//   - other API errors pass through unwrapped
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxCompletionTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classify(err)
	}

	var out string
	for _, block := range msg.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out, nil
}

// classify maps SDK errors to the package's error kinds.
func classify(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests, 529:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return err
	}
	// No typed API error means the request never completed: DNS failure,
	// refused connection, timeout, cancelled context.
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
