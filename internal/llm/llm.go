// Package llm defines the model-call boundary used by the generation pipeline.
package llm

import (
	"context"
	"errors"
)

// Completer turns a prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNoResponse is returned when the backend answers without any candidate text.
var ErrNoResponse = errors.New("model returned no response")

// Func adapts a plain function to Completer.
type Func func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f Func) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Static always returns the same text and error. Calls counts invocations.
type Static struct {
	Text  string
	Err   error
	Calls int
}

// Complete returns the configured response.
func (s *Static) Complete(_ context.Context, _ string) (string, error) {
	s.Calls++
	return s.Text, s.Err
}
