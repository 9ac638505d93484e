package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"

	"github.com/tatianab/evolve-adventure/internal/autoplay"
	"github.com/tatianab/evolve-adventure/internal/config"
	"github.com/tatianab/evolve-adventure/internal/engine"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	var player autoplay.Player = autoplay.Autopilot{}
	if cfg.GeminiAPIKey != "" {
		g, err := autoplay.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer g.Close()
		player = g
	}
	log.Printf("Simulating up to %d turns with %s (seed %d)", cfg.SimTurns, player.Name(), seed)

	eng := engine.New(
		engine.WithDice(engine.NewDice(seed)),
		engine.WithSuggestions(cfg.Suggest),
		engine.WithLogger(log.Default()),
	)

	transcript, err := autoplay.Play(ctx, eng, player, cfg.SimTurns)
	if err != nil {
		log.Printf("Simulation stopped early: %v", err)
	}
	transcript.Seed = seed

	if err := transcript.WriteYAML(os.Stdout); err != nil {
		log.Fatalf("Failed to write transcript: %v", err)
	}
	log.Printf("Game ended after %d turns: %s", len(transcript.Entries), transcript.Result)
}
