package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
	"github.com/lorenzotomasdiez/reverse-turing/internal/judge"
	"github.com/lorenzotomasdiez/reverse-turing/internal/openrouter"
	"github.com/lorenzotomasdiez/reverse-turing/internal/output"
	"github.com/lorenzotomasdiez/reverse-turing/internal/panel"
	"github.com/lorenzotomasdiez/reverse-turing/internal/player"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a standard game in the terminal",
		RunE:  runPlay,
	}
	cmd.Flags().Bool("save", false, "Save the game transcript to the output directory")
	cmd.Flags().String("output-dir", "output", "Directory for saved transcripts")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := openrouter.NewClient(cfg.APIKey)
	registry := buildRegistry(ctx, client)

	personas := game.DefaultRoster()
	questions := game.SelectQuestions(game.QuestionBank(), cfg.Rounds)

	reader := bufio.NewReader(os.Stdin)
	output.PrintTitle()

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
	var players []game.Responder
	for i, p := range personas {
		if i != humanIdx {
			players = append(players, player.New(p, assigned[p.Name], client))
		}
	}

	judgeModel := judgeModelFor(cfg, registry)
	judges := []*judge.Judge{
		judge.New("Holmes", judge.TraitBased, judgeModel, client),
		judge.New("Watson", judge.DivergenceBased, judgeModel, client),
		judge.New("Poirot", judge.Blended, judgeModel, client),
	}
	deliberation, err := panel.New(judges, personas, questions, cfg.DiscussionRounds)
	if err != nil {
		return err
	}
	deliberation.OnUtterance = func(round int, u game.Utterance) {
		output.PrintUtterance(round, u)
	}
	deliberation.OnVote = func(round int, judgeName, vote string) {
		output.PrintVote("Judge "+judgeName, vote)
	}

	engine, err := game.NewEngine(personas, human, players, questions, deliberation)
	if err != nil {
		return err
	}
	engine.HumanResponse = func(round int, q game.Question) string {
		return promptLine(reader, fmt.Sprintf("Enter %s's response:", human.Name))
	}
	engine.HumanSuspicion = func(round int) string {
		return promptLine(reader, fmt.Sprintf("As %s, express your suspicions about who might be human (1-2 sentences):", human.Name))
	}
	engine.HumanVote = func(options []string) string {
		fmt.Println("\nAs the human player, you must vote for someone else to maintain your cover.")
		return options[chooseOption(reader, "Who do you vote for?", options)]
	}
	engine.OnQuestion = func(round, total int, q game.Question) {
		output.PrintQuestion(round, total, q)
	}
	engine.OnResponses = func(round int, personas []*game.Persona) {
		output.PrintResponses(personas, round)
	}
	engine.OnSuspicions = func(round int, personas []*game.Persona) {
		output.PrintSuspicions(personas, round)
	}
	engine.OnJudgeAnalysis = func(round int, u game.Utterance) {
		output.PrintJudgeAnalysis(u)
	}
	engine.OnVote = output.PrintVote

	result, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	if result.Panel != nil {
		output.PrintVerdict(result.Panel)
	}
	output.PrintGameOver(result.HumanWon)

	if save, _ := cmd.Flags().GetBool("save"); save {
		baseDir, _ := cmd.Flags().GetString("output-dir")
		dir, err := output.CreateOutputDir(baseDir, uuid.NewString()[:8])
		if err != nil {
			return err
		}
		writer := output.NewWriter(dir)
		if err := writer.WriteJSON("game.json", result); err != nil {
			return err
		}
		if err := writer.WriteMarkdown(personas, questions, result); err != nil {
			return err
		}
		fmt.Printf("\nTranscript saved to: %s\n", dir)
	}
	return nil
}
