package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lorenzotomasdiez/reverse-turing/internal/config"
	"github.com/lorenzotomasdiez/reverse-turing/internal/models"
	"github.com/lorenzotomasdiez/reverse-turing/internal/openrouter"
)

// loadConfig merges the environment configuration with command-line flags,
// flags winning where set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	if apiKey, _ := flags.GetString("api-key"); apiKey != "" {
		os.Setenv("OPENROUTER_API_KEY", apiKey)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if model, _ := flags.GetString("model"); model != "" {
		cfg.Model = model
	}
	if flags.Changed("rounds") {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("discussion-rounds") {
		cfg.DiscussionRounds, _ = flags.GetInt("discussion-rounds")
	}
	return cfg, nil
}

// buildRegistry fetches live models, falling back to the bundled free list.
func buildRegistry(ctx context.Context, client *openrouter.Client) *models.Registry {
	allModels, err := client.ListModels(ctx)
	if err != nil {
		fmt.Printf("Warning: could not fetch models: %v. Using defaults.\n", err)
		allModels = models.DefaultFreeModels()
	}
	registry := models.NewRegistry(allModels)
	if len(registry.FreeModels()) == 0 {
		registry = models.NewRegistry(models.DefaultFreeModels())
	}
	return registry
}

// assignFor returns the model assignment function: a fixed model when
// configured, the registry rotation otherwise.
func assignFor(cfg *config.Config, registry *models.Registry) func(names []string) map[string]string {
	return func(names []string) map[string]string {
		if cfg.Model != "" {
			out := make(map[string]string, len(names))
			for _, name := range names {
				out[name] = cfg.Model
			}
			return out
		}
		return registry.AssignModels(names)
	}
}

func judgeModelFor(cfg *config.Config, registry *models.Registry) string {
	if cfg.Model != "" {
		return cfg.Model
	}
	return registry.JudgeModel()
}
