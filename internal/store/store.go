// Package store persists generated emails and batch reports as flat files.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

// Store writes into a single output directory.
type Store struct {
	dir string
}

// Open creates dir and any missing parents. It is idempotent for an existing directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) emailPath(testID string) string {
	return filepath.Join(s.dir, "test_email_"+testID+".txt")
}

func (s *Store) reportPath(batchID string) string {
	return filepath.Join(s.dir, "generation_report_"+batchID+".json")
}

// WriteEmail writes content as UTF-8 text, overwriting any previous file.
func (s *Store) WriteEmail(testID, content string) (string, error) {
	path := s.emailPath(testID)
	if err := writeAtomic(path, []byte(content)); err != nil {
		return "", fmt.Errorf("failed to write email %s: %w", testID, err)
	}
	return path, nil
}

// WriteReport serializes report as indented JSON.
func (s *Store) WriteReport(report model.BatchReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	path := s.reportPath(report.BatchID)
	if err := writeAtomic(path, append(data, '\n')); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// LoadReport reads a report previously written by WriteReport.
func LoadReport(path string) (model.BatchReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.BatchReport{}, fmt.Errorf("failed to read report: %w", err)
	}
	var report model.BatchReport
	if err := json.Unmarshal(data, &report); err != nil {
		return model.BatchReport{}, fmt.Errorf("failed to decode report: %w", err)
	}
	return report, nil
}

func writeAtomic(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".egen-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
