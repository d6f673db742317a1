package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults match the classic table: a $100 bankroll, a six-deck shoe,
// reshuffled when fewer than ten cards remain.
const (
	DefaultStartingBalanceCents = 10000
	DefaultNumDecks             = 6
	DefaultReshuffleUnder       = 10
)

// Config holds the game settings read from the environment.
type Config struct {
	StartingBalanceCents int64
	NumDecks             int
	ReshuffleUnder       int
	Debug                bool
}

// Load reads settings from the environment, after loading a .env file if
// one is present. Missing variables fall back to defaults.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		StartingBalanceCents: DefaultStartingBalanceCents,
		NumDecks:             DefaultNumDecks,
		ReshuffleUnder:       DefaultReshuffleUnder,
	}

	if v := os.Getenv("BLACKJACK_STARTING_BALANCE"); v != "" {
		dollars, err := strconv.ParseFloat(v, 64)
		if err != nil || dollars <= 0 {
			return Config{}, fmt.Errorf("invalid BLACKJACK_STARTING_BALANCE %q", v)
		}
		cfg.StartingBalanceCents = int64(math.Round(dollars * 100))
	}

	if v := os.Getenv("BLACKJACK_DECKS"); v != "" {
		decks, err := strconv.Atoi(v)
		if err != nil || decks <= 0 {
			return Config{}, fmt.Errorf("invalid BLACKJACK_DECKS %q", v)
		}
		cfg.NumDecks = decks
	}

	if v := os.Getenv("BLACKJACK_RESHUFFLE_UNDER"); v != "" {
		under, err := strconv.Atoi(v)
		if err != nil || under < 0 {
			return Config{}, fmt.Errorf("invalid BLACKJACK_RESHUFFLE_UNDER %q", v)
		}
		cfg.ReshuffleUnder = under
	}

	if v := os.Getenv("BLACKJACK_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BLACKJACK_DEBUG %q", v)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}
