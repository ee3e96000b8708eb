// Package config loads game settings from the environment, with .env support.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey              string
	Model               string // when empty, a free model is picked from the registry
	Rounds              int    // question rounds in standard mode
	InterrogationRounds int
	DiscussionRounds    int // judge panel discussion round cap
	Addr                string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("config: OPENROUTER_API_KEY is required")
	}

	rounds, err := envInt("REVTURING_ROUNDS", 5)
	if err != nil {
		return nil, err
	}
	interrogationRounds, err := envInt("REVTURING_INTERROGATION_ROUNDS", 3)
	if err != nil {
		return nil, err
	}
	discussionRounds, err := envInt("REVTURING_DISCUSSION_ROUNDS", 3)
	if err != nil {
		return nil, err
	}

	addr := os.Getenv("REVTURING_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	if rounds < 1 {
		return nil, fmt.Errorf("config: Rounds must be >= 1, got %d", rounds)
	}
	if interrogationRounds < 1 {
		return nil, fmt.Errorf("config: InterrogationRounds must be >= 1, got %d", interrogationRounds)
	}
	if discussionRounds < 1 {
		return nil, fmt.Errorf("config: DiscussionRounds must be >= 1, got %d", discussionRounds)
	}

	return &Config{
		APIKey:              apiKey,
		Model:               os.Getenv("REVTURING_MODEL"),
		Rounds:              rounds,
		InterrogationRounds: interrogationRounds,
		DiscussionRounds:    discussionRounds,
		Addr:                addr,
	}, nil
}

func envInt(key string, defaultVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, s, err)
	}
	return v, nil
}
