// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Summarize aggregates batch outcomes. The average word count divides by every
// attempt; failed attempts contribute zero words.
func Summarize(results []model.GenerationResult) model.ReportStatistics {
	var out model.ReportStatistics
	totalWords := 0
	for _, r := range results {
		if r.Succeeded() {
			out.SuccessfulGenerations++
		} else {
			out.FailedGenerations++
		}
		totalWords += WordCount(r.Text())
	}
	if len(results) > 0 {
		out.AverageWordCount = float64(totalWords) / float64(len(results))
	}
	return out
}

// WordCounts returns the word count of each result in order.
func WordCounts(results []model.GenerationResult) []float64 {
	counts := make([]float64, len(results))
	for i, r := range results {
		counts[i] = float64(WordCount(r.Text()))
	}
	return counts
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
