package model

import (
	"testing"
	"time"
)

func TestDefaultEmailConfigValid(t *testing.T) {
	if err := DefaultEmailConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmailConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EmailConfig)
	}{
		{name: "zero min words", mutate: func(c *EmailConfig) { c.MinWordCount = 0 }},
		{name: "negative max emails", mutate: func(c *EmailConfig) { c.MaxEmails = -1 }},
		{name: "words inverted", mutate: func(c *EmailConfig) { c.MinWordCount = 2000 }},
		{name: "emails inverted", mutate: func(c *EmailConfig) { c.MinEmails = 101 }},
		{name: "negative delay", mutate: func(c *EmailConfig) { c.Delay = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEmailConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestGenerationResultText(t *testing.T) {
	if got := (GenerationResult{}).Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
	s := "body"
	r := GenerationResult{Content: &s, Status: StatusSuccess}
	if r.Text() != "body" || !r.Succeeded() {
		t.Fatalf("unexpected result accessors: %+v", r)
	}
}
