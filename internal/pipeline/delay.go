package pipeline

import "time"

// DelayFunc returns the pause after the given 1-based attempt, before the next one.
type DelayFunc func(attempt int) time.Duration

// FixedDelay pauses for d between every pair of attempts.
func FixedDelay(d time.Duration) DelayFunc {
	return func(int) time.Duration { return d }
}

// NoDelay never pauses.
func NoDelay(int) time.Duration { return 0 }
