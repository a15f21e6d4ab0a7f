// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Status is the outcome of a single generation attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// EmailConfig holds the static bounds for a generation run.
type EmailConfig struct {
	MinWordCount int
	MaxWordCount int
	MinEmails    int
	MaxEmails    int
	Delay        time.Duration
}

// DefaultEmailConfig returns the built-in bounds.
func DefaultEmailConfig() EmailConfig {
	return EmailConfig{
		MinWordCount: 50,
		MaxWordCount: 1000,
		MinEmails:    1,
		MaxEmails:    100,
		Delay:        time.Second,
	}
}

// Validate checks that every bound is positive and each min does not exceed its max.
func (c EmailConfig) Validate() error {
	if c.MinWordCount <= 0 || c.MaxWordCount <= 0 || c.MinEmails <= 0 || c.MaxEmails <= 0 {
		return errors.New("word count and email bounds must be positive")
	}
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if c.MinWordCount > c.MaxWordCount {
		return fmt.Errorf("min word count %d exceeds max %d", c.MinWordCount, c.MaxWordCount)
	}
	if c.MinEmails > c.MaxEmails {
		return fmt.Errorf("min emails %d exceeds max %d", c.MinEmails, c.MaxEmails)
	}
	return nil
}

// TestIdentity is a synthetic sender or recipient with a recent timestamp.
type TestIdentity struct {
	Address   string
	Timestamp string
}

// GenerationResult records one attempted email. Content is nil on failure.
type GenerationResult struct {
	EmailNumber int     `json:"email_number"`
	TestID      string  `json:"test_id"`
	Content     *string `json:"content"`
	Timestamp   string  `json:"timestamp"`
	Status      Status  `json:"status"`
	Error       string  `json:"error,omitempty"`
}

// Succeeded reports whether the attempt produced accepted content.
func (r GenerationResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Text returns the content or an empty string when absent.
func (r GenerationResult) Text() string {
	if r.Content == nil {
		return ""
	}
	return *r.Content
}

// ReportConfiguration echoes the run parameters in a batch report.
type ReportConfiguration struct {
	WordCount       int    `json:"word_count"`
	NumEmails       int    `json:"num_emails"`
	OutputDirectory string `json:"output_directory"`
}

// ReportStatistics aggregates the outcome of a batch.
type ReportStatistics struct {
	SuccessfulGenerations int     `json:"successful_generations"`
	FailedGenerations     int     `json:"failed_generations"`
	AverageWordCount      float64 `json:"average_word_count"`
}

// BatchReport is the JSON document written once at the end of a batch.
type BatchReport struct {
	BatchID        string              `json:"batch_id"`
	GenerationTime string              `json:"generation_time"`
	Configuration  ReportConfiguration `json:"configuration"`
	Statistics     ReportStatistics    `json:"statistics"`
	Results        []GenerationResult  `json:"results"`
}
