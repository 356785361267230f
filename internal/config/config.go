package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-level settings, all sourced from FQ_* environment
// variables. A local .env file is honored when present.
type Config struct {
	// HeroName is the default player name when none is given on the CLI.
	HeroName string `env:"FQ_HERO" envDefault:"Adventurer"`
	// Seed pins every random draw (damage variance, flee checks, loot and
	// encounter rolls). Zero means derive a seed from the clock.
	Seed int64 `env:"FQ_SEED" envDefault:"0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
