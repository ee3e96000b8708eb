package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
	"github.com/lorenzotomasdiez/reverse-turing/internal/interrogate"
	"github.com/lorenzotomasdiez/reverse-turing/internal/openrouter"
	"github.com/lorenzotomasdiez/reverse-turing/internal/output"
)

func newInterrogateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interrogate",
		Short: "Play the interrogation mode: characters question each other",
		RunE:  runInterrogate,
	}
	cmd.Flags().Int("interrogation-rounds", 3, "Number of interrogation rounds")
	return cmd
}

func runInterrogate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("interrogation-rounds") {
		cfg.InterrogationRounds, _ = cmd.Flags().GetInt("interrogation-rounds")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := openrouter.NewClient(cfg.APIKey)
	registry := buildRegistry(ctx, client)

	personas := game.DefaultRoster()
	reader := bufio.NewReader(os.Stdin)
	output.PrintTitle()
	fmt.Println("\nInterrogation mode: no preset questions. The characters question each other directly.")

	names := make([]string, len(personas))
	for i, p := range personas {
		names[i] = fmt.Sprintf("%s — %s", p.Name, p.Profile)
	}
	humanIdx := chooseOption(reader, "Choose your character:", names)
	human := personas[humanIdx]

	var aiNames []string
	for i, p := range personas {
		if i != humanIdx {
			aiNames = append(aiNames, p.Name)
		}
	}
	assigned := assignFor(cfg, registry)(aiNames)

	engine, err := interrogate.NewEngine(personas, human, assigned, client, cfg.InterrogationRounds)
	if err != nil {
		return err
	}
	engine.HumanIntroduction = func() string {
		return promptLine(reader, fmt.Sprintf("As %s, introduce yourself to the group (1-2 sentences):", human.Name))
	}
	engine.HumanTarget = func(options []string) string {
		return options[chooseOption(reader, "Who do you want to interrogate?", options)]
	}
	engine.HumanQuestion = func(target string) string {
		return promptLine(reader, fmt.Sprintf("What do you ask %s?", target))
	}
	engine.HumanAnswer = func(interrogator, question string) string {
		return promptLine(reader, fmt.Sprintf("%s asks you: %q\nYour answer:", interrogator, question))
	}
	engine.HumanSuspicion = func(round int) string {
		return promptLine(reader, fmt.Sprintf("As %s, express your suspicions about who might be human (1-2 sentences):", human.Name))
	}
	engine.HumanVote = func(options []string) string {
		fmt.Println("\nAs the human player, you must vote for someone else to maintain your cover.")
		return options[chooseOption(reader, "Who do you vote for?", options)]
	}
	engine.OnIntroductions = output.PrintIntroductions
	engine.OnExchange = func(round int, ex interrogate.Exchange) {
		fmt.Printf("\n%s asks %s: %q\n", ex.Interrogator, ex.Target, ex.Question)
		fmt.Printf("%s: %q\n", ex.Target, ex.Response)
	}
	engine.OnSuspicions = func(round int, personas []*game.Persona) {
		output.PrintSuspicions(personas, round)
	}
	engine.OnVote = output.PrintVote

	result, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("interrogate: %w", err)
	}
	output.PrintGameOver(result.HumanWon)
	return nil
}
