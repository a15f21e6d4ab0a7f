package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds settings read from the environment.
type EnvConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"EGEN_MODEL"`
}

var dotenvLoaded sync.Once

// LoadEnv parses the environment after loading a .env file from the working
// directory, if one exists.
func LoadEnv() (EnvConfig, error) {
	dotenvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
