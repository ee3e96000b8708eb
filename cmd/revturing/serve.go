package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lorenzotomasdiez/reverse-turing/internal/openrouter"
	"github.com/lorenzotomasdiez/reverse-turing/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over a JSON API with websocket event streams",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (overrides REVTURING_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	defer logger.Sync()

	client := openrouter.NewClient(cfg.APIKey)
	registry := buildRegistry(context.Background(), client)

	srv := server.New(server.Options{
		Completer:        client,
		AssignModels:     assignFor(cfg, registry),
		JudgeModel:       judgeModelFor(cfg, registry),
		Rounds:           cfg.Rounds,
		DiscussionRounds: cfg.DiscussionRounds,
		Logger:           logger,
	})
	return srv.Listen(cfg.Addr)
}
