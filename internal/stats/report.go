package stats

import (
	"time"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

// BuildReport assembles the batch report from the ordered results.
func BuildReport(batchID string, generatedAt time.Time, cfg model.ReportConfiguration, results []model.GenerationResult) model.BatchReport {
	ordered := make([]model.GenerationResult, len(results))
	copy(ordered, results)
	return model.BatchReport{
		BatchID:        batchID,
		GenerationTime: generatedAt.Format(time.RFC3339Nano),
		Configuration:  cfg,
		Statistics:     Summarize(ordered),
		Results:        ordered,
	}
}
