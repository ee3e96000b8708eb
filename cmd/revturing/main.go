package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "revturing",
		Short: "A reverse Turing test: hide among AI characters and fool the judges",
		Long:  "One human player hides among AI-driven characters, answering the same questions. A panel of AI judges deliberates on who the human is. Play in the terminal or serve the game as a JSON API.",
	}

	root.PersistentFlags().String("api-key", "", "OpenRouter API key (overrides OPENROUTER_API_KEY env var)")
	root.PersistentFlags().String("model", "", "Model ID for all agents (default: free models from the registry)")
	root.PersistentFlags().Int("rounds", 5, "Number of question rounds")
	root.PersistentFlags().Int("discussion-rounds", 3, "Maximum judge panel discussion rounds")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newInterrogateCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
