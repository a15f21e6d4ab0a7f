package stats

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

const maxErrorWidth = 48

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

type painter struct {
	color bool
}

func newPainter(w io.Writer) painter {
	return painter{color: shouldUseColor(w)}
}

func (p painter) paint(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

func (p painter) status(s model.Status) string {
	if s == model.StatusSuccess {
		return p.paint(successStyle, string(s))
	}
	return p.paint(failedStyle, string(s))
}

// RenderSummary prints the end-of-run summary block.
func RenderSummary(w io.Writer, report model.BatchReport) error {
	p := newPainter(w)
	requested := report.Configuration.NumEmails
	lines := []string{
		"",
		p.paint(headingStyle, "=== Generation Summary ==="),
		fmt.Sprintf("Successfully generated: %d/%d test emails", report.Statistics.SuccessfulGenerations, requested),
		fmt.Sprintf("Failed generations: %d", report.Statistics.FailedGenerations),
		fmt.Sprintf("Output directory: %s", report.Configuration.OutputDirectory),
		p.paint(headingStyle, "========================"),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderReport prints a saved batch report: header, per-email table and a
// sparkline of word counts.
func RenderReport(w io.Writer, report model.BatchReport) error {
	p := newPainter(w)
	header := []string{
		p.paint(headingStyle, "Batch "+report.BatchID),
		p.paint(mutedStyle, "Generated: "+report.GenerationTime),
		fmt.Sprintf("Word count target: %d", report.Configuration.WordCount),
		fmt.Sprintf("Emails requested: %d", report.Configuration.NumEmails),
		fmt.Sprintf("Output directory: %s", report.Configuration.OutputDirectory),
		fmt.Sprintf("Successful: %d", report.Statistics.SuccessfulGenerations),
		fmt.Sprintf("Failed: %d", report.Statistics.FailedGenerations),
		fmt.Sprintf("Avg words: %.2f", report.Statistics.AverageWordCount),
		"",
	}
	for _, line := range header {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(report.Results) == 0 {
		_, err := fmt.Fprintln(w, "No results recorded.")
		return err
	}

	headers := []string{"#", "Status", "Words", "Test ID", "Error"}
	rows := make([][]string, 0, len(report.Results))
	for _, r := range report.Results {
		rows = append(rows, []string{
			strconv.Itoa(r.EmailNumber),
			string(r.Status),
			strconv.Itoa(WordCount(r.Text())),
			r.TestID,
			truncate(r.Error, maxErrorWidth),
		})
	}
	lines := formatTable(headers, rows, map[int]bool{0: true, 2: true})
	for i, line := range lines {
		if i > 0 && p.color {
			// Colour only the status cell; widths were computed on plain text.
			status := report.Results[i-1].Status
			line = strings.Replace(line, string(status), p.status(status), 1)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nWords per email: %s\n", Sparkline(WordCounts(report.Results))); err != nil {
		return err
	}
	return nil
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
