package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/stats"
	"github.com/XenosWarlocks/AI-Email-Personalization/internal/store"
)

// BatchResult is the outcome of GenerateBulk.
type BatchResult struct {
	Results    []model.GenerationResult
	Report     model.BatchReport
	ReportPath string
}

// GenerateBulk runs numEmails attempts in order, writes each accepted email into
// outputDir, then writes the batch report. Only failing to prepare outputDir or
// to write the report is returned as an error; per-email failures are recorded
// in the results.
func (p *Pipeline) GenerateBulk(ctx context.Context, wordCount, numEmails int, outputDir string) (BatchResult, error) {
	p.logger.Info(fmt.Sprintf("Starting bulk generation of %d test emails", numEmails))
	st, err := store.Open(outputDir)
	if err != nil {
		return BatchResult{}, err
	}

	batchID := p.gen.BatchID()
	results := make([]model.GenerationResult, 0, numEmails)
	for i := 1; i <= numEmails; i++ {
		p.logger.Info(fmt.Sprintf("Generating test email %d/%d", i, numEmails))

		result := p.GenerateOne(ctx, wordCount, i)
		if result.Succeeded() {
			result = p.save(st, result)
		}
		results = append(results, result)

		if i < numEmails {
			if d := p.delay(i); d > 0 {
				p.sleep(d)
			}
		}
	}

	report := stats.BuildReport(batchID, p.gen.Now(), model.ReportConfiguration{
		WordCount:       wordCount,
		NumEmails:       numEmails,
		OutputDirectory: outputDir,
	}, results)
	reportPath, err := st.WriteReport(report)
	if err != nil {
		return BatchResult{Results: results, Report: report}, err
	}
	p.logger.Info("Generation complete. Report saved to " + reportPath)

	return BatchResult{Results: results, Report: report, ReportPath: reportPath}, nil
}

// save writes an accepted email. A write failure demotes the item to failed.
func (p *Pipeline) save(st *store.Store, result model.GenerationResult) model.GenerationResult {
	path, err := st.WriteEmail(result.TestID, result.Text())
	if err != nil {
		return p.failed(result, err)
	}
	p.logger.Info("Saved email to "+path, zap.Int("email_number", result.EmailNumber))
	return result
}
