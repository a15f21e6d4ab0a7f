// Package pipeline runs prompt construction, model calls, validation and
// persistence for single emails and whole batches.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/generator"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/llm"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/prompt"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/validate"
)

// Pipeline generates test emails one at a time through a Completer.
type Pipeline struct {
	completer llm.Completer
	gen       *generator.Generator
	builder   *prompt.Builder
	logger    *zap.Logger
	delay     DelayFunc
	sleep     func(time.Duration)
}

// New returns a Pipeline. A nil logger disables logging and a nil delay never pauses.
func New(completer llm.Completer, gen *generator.Generator, logger *zap.Logger, delay DelayFunc) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay == nil {
		delay = NoDelay
	}
	return &Pipeline{
		completer: completer,
		gen:       gen,
		builder:   prompt.NewBuilder(gen),
		logger:    logger,
		delay:     delay,
		sleep:     time.Sleep,
	}
}

// GenerateOne runs a single prompt, model call and validation cycle. Failures are
// recorded in the returned result, never returned as errors.
func (p *Pipeline) GenerateOne(ctx context.Context, wordCount, emailNumber int) (result model.GenerationResult) {
	testID := p.gen.TestID()
	result = model.GenerationResult{EmailNumber: emailNumber, TestID: testID}

	defer func() {
		if r := recover(); r != nil {
			result = p.failed(result, fmt.Errorf("model call panicked: %v", r))
		}
	}()

	text, err := p.complete(ctx, wordCount, emailNumber, testID)
	if err != nil {
		return p.failed(result, err)
	}

	result.Content = &text
	result.Timestamp = p.timestamp()
	result.Status = model.StatusSuccess
	return result
}

func (p *Pipeline) complete(ctx context.Context, wordCount, emailNumber int, testID string) (string, error) {
	instruction := p.builder.Build(wordCount, emailNumber, testID)
	p.logger.Debug("Built prompt",
		zap.Int("email_number", emailNumber),
		zap.String("test_id", testID),
		zap.Int("prompt_chars", len(instruction)))

	text, err := p.completer.Complete(ctx, instruction)
	if err != nil {
		return "", err
	}
	if err := validate.Check(text, testID); err != nil {
		return "", err
	}
	return text, nil
}

func (p *Pipeline) failed(result model.GenerationResult, err error) model.GenerationResult {
	p.logger.Error(fmt.Sprintf("Failed to generate email #%d", result.EmailNumber),
		zap.String("test_id", result.TestID),
		zap.Error(err))
	result.Content = nil
	result.Timestamp = p.timestamp()
	result.Status = model.StatusFailed
	result.Error = err.Error()
	return result
}

func (p *Pipeline) timestamp() string {
	return p.gen.Now().Format(time.RFC3339Nano)
}
