package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XenosWarlocks/AI-Email-Personalization/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Generate.WordCount)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[generate]
word-count = 300
output-dir = "out"
delay = "250ms"

[limits]
max-emails = 10
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Generate.WordCount)
	assert.Equal(t, 300, *cfg.Generate.WordCount)
	assert.Equal(t, "out", *cfg.Generate.OutputDir)
	assert.Nil(t, cfg.Generate.NumEmails)

	limits, err := cfg.EmailConfig(model.DefaultEmailConfig())
	require.NoError(t, err)
	assert.Equal(t, 10, limits.MaxEmails)
	assert.Equal(t, 1, limits.MinEmails)
	assert.Equal(t, 250*time.Millisecond, limits.Delay)
}

func TestEmailConfigRejectsInvertedLimits(t *testing.T) {
	minWords := 500
	maxWords := 100
	cfg := FileConfig{Limits: LimitsConfig{MinWordCount: &minWords, MaxWordCount: &maxWords}}
	_, err := cfg.EmailConfig(model.DefaultEmailConfig())
	assert.Error(t, err)
}

func TestEmailConfigRejectsBadDelay(t *testing.T) {
	delay := "soon"
	cfg := FileConfig{Generate: GenerateConfig{Delay: &delay}}
	_, err := cfg.EmailConfig(model.DefaultEmailConfig())
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("EGEN_MODEL", "gemini-test")
	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "gemini-test", cfg.Model)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "egen", "config.toml"), DefaultConfigPath())
}
