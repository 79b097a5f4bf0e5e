package ai

import (
	"strings"
	"testing"
)

func TestStripFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"no trailing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
		{"fence only", "```", ""},
		{
			"inner fence preserved",
			"```json\n{\"text\":\"use ``` for code\"}\n```",
			"{\"text\":\"use ``` for code\"}",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StripFence(c.in); got != c.want {
				t.Fatalf("StripFence(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestPrompts_ContainSchemaContract(t *testing.T) {
	// The prompts are the only place the output schema is specified, so
	// drifting field names would silently break parsing.
	for _, field := range []string{"title", "description", "tags"} {
		if !strings.Contains(ExtractSystemPrompt, field) {
			t.Errorf("extract prompt missing %q", field)
		}
	}
	for _, field := range []string{"productType", "keywords", "anchor", "descriptive", "who", "what", "where", "when", "why", "titles", "tags"} {
		if !strings.Contains(OptimizeSystemPrompt, field) {
			t.Errorf("optimize prompt missing %q", field)
		}
	}
}
