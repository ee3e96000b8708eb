package interrogate

import (
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

func introductionPrompt(p *game.Persona) string {
	return fmt.Sprintf(`You are roleplaying as %s in a game.

%s

Introduce yourself to the group in 1-2 sentences. Stay true to your character's personality and speech style.
Don't reveal that you're an AI - just introduce yourself naturally as your character would.
`, p.Name, p.PromptDescription())
}

func renderHistory(history [][]Exchange) string {
	var sb strings.Builder
	for i, round := range history {
		fmt.Fprintf(&sb, "--- ROUND %d INTERROGATIONS ---\n", i+1)
		for _, ex := range round {
			fmt.Fprintf(&sb, "%s asked %s: %q\n", ex.Interrogator, ex.Target, ex.Question)
			fmt.Fprintf(&sb, "%s responded: %q\n\n", ex.Target, ex.Response)
		}
	}
	return sb.String()
}

func renderSuspicions(personas []*game.Persona) string {
	var sb strings.Builder
	for _, p := range personas {
		if len(p.Suspicions) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s's suspicions:\n", p.Name)
		for i, s := range p.Suspicions {
			fmt.Fprintf(&sb, "After round %d: %q\n", i+1, s)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func targetSelectionPrompt(p *game.Persona, targets []*game.Persona, round int, history [][]Exchange, personas []*game.Persona) string {
	return fmt.Sprintf(`You are roleplaying as %s in a game where one player is human and the rest are AI.

%s

This is round %d of the interrogation phase. You need to choose someone to interrogate.

Previous interrogations:
%s
Suspicions expressed so far:
%s
You can interrogate one of these characters: %s

Which character do you want to interrogate?

There is only one human so focus on identifying the "odd one out" from the group based on previous interactions.
Look for patterns in how most characters respond, and identify which character breaks that pattern.
Consider factors like response style, consistency, and uniqueness compared to the group.

Respond with ONLY the character's name.
`, p.Name, p.PromptDescription(), round, renderHistory(history), renderSuspicions(personas), strings.Join(names(targets), ", "))
}

func questionPrompt(p, target *game.Persona, history [][]Exchange) string {
	var past strings.Builder
	for i, round := range history {
		for _, ex := range round {
			if ex.Target == target.Name {
				fmt.Fprintf(&past, "In round %d, %s asked: %q\n", i+1, ex.Interrogator, ex.Question)
				fmt.Fprintf(&past, "%s responded: %q\n\n", target.Name, ex.Response)
			}
		}
	}
	return fmt.Sprintf(`You are roleplaying as %s in a game where one player is human and the rest are AI.

%s

You want to determine if %s is the human or an AI.

About %s:
%s

Previous interactions with %s:
%s
Generate ONE specific question to ask %s that might reveal whether they are the human or an AI.
The question should be challenging but answerable in 1-2 sentences.
Use your character's speech style.
Make your question clever and designed to reveal if they break the pattern of the AI group.
`, p.Name, p.PromptDescription(), target.Name, target.Name, target.PromptDescription(), target.Name, past.String(), target.Name)
}

func answerPrompt(p, questioner *game.Persona, question string) string {
	return fmt.Sprintf(`You are roleplaying as %s in a game where one player is human and the rest are AI.

%s

%s has asked you the following question:
%q

Respond to this question in 1-2 sentences, staying true to your character's personality and speech style.
Remember that you are trying to appear as an AI character would, not revealing any human traits.
`, p.Name, p.PromptDescription(), questioner.Name, question)
}

func suspicionPrompt(p *game.Persona, roundExchanges []Exchange, round int) string {
	var sb strings.Builder
	for _, ex := range roundExchanges {
		fmt.Fprintf(&sb, "%s asked %s: %q\n", ex.Interrogator, ex.Target, ex.Question)
		fmt.Fprintf(&sb, "%s responded: %q\n\n", ex.Target, ex.Response)
	}
	return fmt.Sprintf(`You are roleplaying as %s in a game where one player is human and the rest are AI.

%s

This is round %d of the game. You need to express your suspicions about who might be the human player.

Interrogations from this round:
%s
As %s, analyze the interactions and identify which character seems different from the others. This is likely the human.
Look for patterns in how most characters respond, and identify which character breaks that pattern.
Consider factors like response style, consistency with previous answers, and uniqueness compared to the group.

Express your suspicions about who might be the human player in 1-2 sentences.
Use your character's speech style. Name specifically who you are suspecting and why they stand out from the group.
`, p.Name, p.PromptDescription(), round, sb.String(), p.Name)
}

func votePrompt(p *game.Persona, history [][]Exchange, personas []*game.Persona) string {
	return fmt.Sprintf(`You are roleplaying as %s in a game where one player is human and the rest are AI.
Your goal is to identify the human based on their responses throughout the game.

%s

Here is the complete game history:

INTERROGATIONS:
%s
SUSPICIONS:
%s
Analyze all interactions and suspicions to identify which character is the "odd one out" from the group. This is likely the human.
Look for patterns that most characters follow and identify who breaks these patterns.
Focus on identifying differences in response style, consistency, and uniqueness compared to the group.

Based on your analysis of who stands out from the group, which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, p.Name, p.PromptDescription(), renderHistory(history), renderSuspicions(personas))
}
