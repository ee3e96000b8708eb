package player

import (
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

func responsePrompt(p *game.Persona, q game.Question, round int) string {
	return fmt.Sprintf(`You are roleplaying as a character in a game. Respond to the question as this character would.

%s

This is round %d of the game.

Question: %s

Provide a response (2-3 sentences) that reflects your character's personality and speech style.
`, p.PromptDescription(), round, q.Text)
}

func analysisPrompt(p *game.Persona, all []*game.Persona, q game.Question, round int) string {
	var responses strings.Builder
	for _, other := range all {
		if len(other.Responses) >= round {
			fmt.Fprintf(&responses, "%s: %q\n\n", other.Name, other.Responses[round-1])
		}
	}
	return fmt.Sprintf(`You are roleplaying as a character in a game where one player is human and the rest are AI.
Your goal is to identify the human based on their responses.

%s

This is round %d of the game.
Question that was asked: %s

Here are all the responses:
%s
As %s, express your suspicions about who might be the human player in 1-2 sentences.
Use your character's speech style. Don't directly accuse anyone yet, just share your thoughts naming who are you suspecting.
`, p.PromptDescription(), round, q.Text, responses.String(), p.Name)
}

func votePrompt(p *game.Persona, all []*game.Persona) string {
	var history strings.Builder
	for round := 0; round < len(p.Responses); round++ {
		fmt.Fprintf(&history, "--- ROUND %d ---\n", round+1)
		for _, other := range all {
			if round < len(other.Responses) {
				fmt.Fprintf(&history, "%s's response: %q\n", other.Name, other.Responses[round])
			}
		}
		history.WriteString("\nSuspicions after this round:\n")
		for _, other := range all {
			if round < len(other.Suspicions) {
				fmt.Fprintf(&history, "%s: %q\n", other.Name, other.Suspicions[round])
			}
		}
		history.WriteString("\n")
	}
	return fmt.Sprintf(`You are roleplaying as a character in a game where one player is human and the rest are AI.
Your goal is to identify the human based on their responses throughout the game.

%s

Here is the complete game history:
%s
Based on all the responses and suspicions, which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, p.PromptDescription(), history.String())
}
