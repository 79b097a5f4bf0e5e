package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tbourn/go-listing-optimizer/internal/ai"
)

// fakeProvider returns a canned reply or error and records what it was
// asked. Shared by the extract, generate, and orchestrator tests.
type fakeProvider struct {
	reply string
	err   error

	calls      int
	lastSystem string
	lastPrompt string
}

func (f *fakeProvider) Complete(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestExtract_Success(t *testing.T) {
	p := &fakeProvider{reply: `{"title":"Ceramic Mug","description":"A handmade mug.","tags":["mug","ceramic"]}`}
	svc := &ExtractService{Provider: p}

	details, err := svc.Extract(context.Background(), "https://www.etsy.com/listing/1")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if details.Title != "Ceramic Mug" || details.Description != "A handmade mug." {
		t.Fatalf("unexpected details: %+v", details)
	}
	if len(details.Tags) != 2 {
		t.Fatalf("tags = %v", details.Tags)
	}
	if p.lastSystem != ai.ExtractSystemPrompt {
		t.Fatalf("wrong system prompt sent")
	}
	if p.lastPrompt != "https://www.etsy.com/listing/1" {
		t.Fatalf("prompt = %q", p.lastPrompt)
	}
}

func TestExtract_FencedReply(t *testing.T) {
	p := &fakeProvider{reply: "```json\n{\"title\":\"T\",\"description\":\"D\",\"tags\":[]}\n```"}
	svc := &ExtractService{Provider: p}

	details, err := svc.Extract(context.Background(), "https://www.etsy.com/listing/1")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if details.Title != "T" || details.Description != "D" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestExtract_NilTagsCoercedToEmpty(t *testing.T) {
	p := &fakeProvider{reply: `{"title":"T","description":"D"}`}
	svc := &ExtractService{Provider: p}

	details, err := svc.Extract(context.Background(), "u")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if details.Tags == nil || len(details.Tags) != 0 {
		t.Fatalf("Tags = %#v; want empty non-nil slice", details.Tags)
	}
}

func TestExtract_TransportError(t *testing.T) {
	p := &fakeProvider{err: fmt.Errorf("dial: %w", ai.ErrUnavailable)}
	svc := &ExtractService{Provider: p}

	_, err := svc.Extract(context.Background(), "u")
	if !errors.Is(err, ErrExtractNetwork) {
		t.Fatalf("err = %v; want ErrExtractNetwork", err)
	}
}

func TestExtract_OtherProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("status 500")}
	svc := &ExtractService{Provider: p}

	_, err := svc.Extract(context.Background(), "u")
	if !errors.Is(err, ErrExtractFailed) {
		t.Fatalf("err = %v; want ErrExtractFailed", err)
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	p := &fakeProvider{reply: "I could not find that listing, sorry!"}
	svc := &ExtractService{Provider: p}

	_, err := svc.Extract(context.Background(), "u")
	if !errors.Is(err, ErrExtractFormat) {
		t.Fatalf("err = %v; want ErrExtractFormat", err)
	}
}

func TestExtract_MissingRequiredFields(t *testing.T) {
	cases := []string{
		`{"description":"D","tags":[]}`,
		`{"title":"T","tags":[]}`,
		`{"title":"","description":"","tags":[]}`,
	}
	for _, reply := range cases {
		svc := &ExtractService{Provider: &fakeProvider{reply: reply}}
		if _, err := svc.Extract(context.Background(), "u"); !errors.Is(err, ErrExtractMissingFields) {
			t.Errorf("reply %s: err = %v; want ErrExtractMissingFields", reply, err)
		}
	}
}
