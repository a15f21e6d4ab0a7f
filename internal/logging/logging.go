// Package logging builds the zap logger used by the CLI and pipeline.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the log file written next to the working directory.
const DefaultFile = "email_generation.log"

// Options controls logger construction.
type Options struct {
	Verbose bool
	// File receives a copy of every entry. Empty disables file output.
	File string
	// Console is the primary sink; defaults to stdout.
	Console string
}

// New returns a console-encoded logger writing to the console sink and the log file.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	console := opts.Console
	if console == "" {
		console = "stdout"
	}
	cfg.OutputPaths = []string{console}
	if opts.File != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, opts.File)
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("egen"), nil
}
