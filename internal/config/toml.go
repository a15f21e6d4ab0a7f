// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
	Limits   LimitsConfig   `toml:"limits"`
}

// GenerateConfig maps per-run defaults. Unset values keep the CLI defaults.
type GenerateConfig struct {
	WordCount *int    `toml:"word-count"`
	NumEmails *int    `toml:"num-emails"`
	OutputDir *string `toml:"output-dir"`
	Model     *string `toml:"model"`
	Delay     *string `toml:"delay"`
	LogFile   *string `toml:"log-file"`
}

// LimitsConfig overrides the accepted ranges.
type LimitsConfig struct {
	MinWordCount *int `toml:"min-word-count"`
	MaxWordCount *int `toml:"max-word-count"`
	MinEmails    *int `toml:"min-emails"`
	MaxEmails    *int `toml:"max-emails"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// EmailConfig applies the file's limits and delay on top of base and validates the result.
func (c FileConfig) EmailConfig(base model.EmailConfig) (model.EmailConfig, error) {
	cfg := base
	setInt(&cfg.MinWordCount, c.Limits.MinWordCount)
	setInt(&cfg.MaxWordCount, c.Limits.MaxWordCount)
	setInt(&cfg.MinEmails, c.Limits.MinEmails)
	setInt(&cfg.MaxEmails, c.Limits.MaxEmails)
	if c.Generate.Delay != nil {
		d, err := time.ParseDuration(*c.Generate.Delay)
		if err != nil {
			return model.EmailConfig{}, fmt.Errorf("invalid delay %q: %w", *c.Generate.Delay, err)
		}
		cfg.Delay = d
	}
	if err := cfg.Validate(); err != nil {
		return model.EmailConfig{}, fmt.Errorf("invalid limits: %w", err)
	}
	return cfg, nil
}

func setInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}
