package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	Seed         uint64 `env:"EVOLVE_SEED"`                    // 0 picks a random seed
	Plain        bool   `env:"EVOLVE_PLAIN"`                   // force the line-based console
	Suggest      bool   `env:"EVOLVE_SUGGEST"`                 // add "did you mean" hints
	LogFile      string `env:"EVOLVE_LOG_FILE"`
	SimTurns     int    `env:"EVOLVE_SIM_TURNS" envDefault:"500"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"EVOLVE_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SimTurns <= 0 {
		return nil, fmt.Errorf("EVOLVE_SIM_TURNS must be positive, got %d", cfg.SimTurns)
	}
	return &cfg, nil
}
