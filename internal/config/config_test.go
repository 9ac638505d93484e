package config

import (
	"os"
	"testing"
)

// unsetEnv clears a variable for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"EVOLVE_SEED", "EVOLVE_PLAIN", "EVOLVE_SUGGEST", "EVOLVE_LOG_FILE",
		"EVOLVE_SIM_TURNS", "GEMINI_API_KEY", "EVOLVE_GEMINI_MODEL",
	} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Suggest || cfg.Plain || cfg.Seed != 0 {
		t.Errorf("expected zero values, got %+v", cfg)
	}
	if cfg.SimTurns != 500 {
		t.Errorf("SimTurns=%d want 500", cfg.SimTurns)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel=%q", cfg.GeminiModel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EVOLVE_SEED", "42")
	t.Setenv("EVOLVE_PLAIN", "true")
	t.Setenv("EVOLVE_SUGGEST", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Plain || !cfg.Suggest {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("EVOLVE_SEED", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for bad seed")
	}

	t.Setenv("EVOLVE_SEED", "1")
	t.Setenv("EVOLVE_SIM_TURNS", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for zero turns")
	}
}
