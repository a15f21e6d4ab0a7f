// Package validate checks generated emails against the mandated skeleton.
package validate

import (
	"strings"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/prompt"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/stats"
)

// MinWords is the smallest accepted whitespace-delimited word count.
const MinWords = 50

// Rejection reasons, in the order the checks run.
const (
	ReasonEmpty          = "Empty content"
	ReasonMissingTestID  = "Missing test ID"
	ReasonMissingNotice  = "Missing test disclaimer"
	ReasonTooShort       = "Content too short"
	ReasonMissingHeaders = "Missing email headers"
	ReasonMissingTag     = "Missing [TEST] in subject"
	ReasonMissingFormat  = "Missing formatting elements"
)

// ValidationError wraps a rejection reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "Generated content validation failed: " + e.Reason
}

type check struct {
	ok     func(content, testID string) bool
	reason string
}

var checks = []check{
	{ok: func(c, id string) bool { return strings.Contains(c, id) }, reason: ReasonMissingTestID},
	{ok: func(c, _ string) bool { return strings.Contains(c, prompt.DisclaimerMarker) }, reason: ReasonMissingNotice},
	{ok: func(c, _ string) bool { return stats.WordCount(c) >= MinWords }, reason: ReasonTooShort},
	{ok: func(c, _ string) bool { return strings.Contains(c, "From:") && strings.Contains(c, "To:") }, reason: ReasonMissingHeaders},
	{ok: func(c, _ string) bool { return strings.Contains(c, "[TEST]") }, reason: ReasonMissingTag},
	{ok: func(c, _ string) bool { return strings.Contains(c, "===") }, reason: ReasonMissingFormat},
}

// Validate reports whether content passes every structural check. On failure it
// returns the reason of the first failed check.
func Validate(content, testID string) (bool, string) {
	if content == "" {
		return false, ReasonEmpty
	}
	for _, c := range checks {
		if !c.ok(content, testID) {
			return false, c.reason
		}
	}
	return true, ""
}

// Check is Validate expressed as an error. It returns nil or a *ValidationError.
func Check(content, testID string) error {
	if ok, reason := Validate(content, testID); !ok {
		return &ValidationError{Reason: reason}
	}
	return nil
}
