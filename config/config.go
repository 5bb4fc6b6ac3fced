package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lazharichir/baccarat/baccarat"
)

// Config holds the session settings
type Config struct {
	Decks     int
	MinCards  int
	Seed      int64
	HasSeed   bool
	Policy    baccarat.BankerPolicy
	MaxRounds int
	Verbose   bool
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Decks:     6,
		MinCards:  baccarat.MinCardsForRound,
		Policy:    baccarat.LiteralPolicy,
		MaxRounds: 0,
	}
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from an environment lookup, starting from Default
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := getenv("BACCARAT_DECKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BACCARAT_DECKS: %w", err)
		}
		cfg.Decks = n
	}

	if v := getenv("BACCARAT_MIN_CARDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BACCARAT_MIN_CARDS: %w", err)
		}
		cfg.MinCards = n
	}

	if v := getenv("BACCARAT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BACCARAT_SEED: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	policy, err := baccarat.ParsePolicy(getenv("BACCARAT_BANKER_RULE"))
	if err != nil {
		return nil, fmt.Errorf("BACCARAT_BANKER_RULE: %w", err)
	}
	cfg.Policy = policy

	if v := getenv("BACCARAT_MAX_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BACCARAT_MAX_ROUNDS: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("BACCARAT_MAX_ROUNDS must not be negative, got %d", n)
		}
		cfg.MaxRounds = n
	}

	if v := getenv("BACCARAT_VERBOSE"); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("BACCARAT_VERBOSE: %w", err)
		}
		cfg.Verbose = verbose
	}

	return &cfg, nil
}
