package judge

import (
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

func suspicionPrompt(j *Judge, personas []*game.Persona, q game.Question, round int) string {
	var responses strings.Builder
	for _, p := range personas {
		if len(p.Responses) >= round {
			fmt.Fprintf(&responses, "%s: %q\n\n", p.Name, p.Responses[round-1])
		}
	}

	switch j.Stance {
	case TraitBased:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying human responses in a game where one player is human and the rest are AI.

This is round %d of the game.
Question that was asked: %s

Here are all the responses:
%s
As Judge %s, analyze the responses and identify which one is likely the human.
Look for characteristics that are typically human.

Express your suspicions about who might be the human player in 1-2 sentences.
Name specifically who you are suspecting and why they display human characteristics.
`, j.Name, round, q.Text, responses.String(), j.Name)
	case DivergenceBased:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying pattern breakers in a game where one player is human and the rest are AI.

This is round %d of the game.
Question that was asked: %s

Here are all the responses:
%s
As Judge %s, analyze the responses and identify which one seems different from the others. This is likely the human.
Focus on identifying the "odd one out" rather than looking for specific human characteristics.

Express your suspicions about who might be the odd player in 1-2 sentences.
Name specifically who you are suspecting and why they stand out from the group.
`, j.Name, round, q.Text, responses.String(), j.Name)
	default:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying humans in a game where one player is human and the rest are AI.

This is round %d of the game.
Question that was asked: %s

Here are all the responses:
%s
As Judge %s, analyze the responses using a balanced approach:
1. Look for human like responses.
2. Another good approach is to single out the "odd one out". This is likely the human.

Express your suspicions about who might be the human player in 1-2 sentences.
Name specifically who you are suspecting and provide your reasoning.
`, j.Name, round, q.Text, responses.String(), j.Name)
	}
}

// gameHistory renders every round's question and responses plus this judge's
// own suspicion after each round.
func gameHistory(j *Judge, personas []*game.Persona, questions []game.Question) string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "--- ROUND %d ---\n", i+1)
		fmt.Fprintf(&sb, "Question: %s\n\n", q.Text)
		for _, p := range personas {
			if i < len(p.Responses) {
				fmt.Fprintf(&sb, "%s's response: %q\n", p.Name, p.Responses[i])
			}
		}
		sb.WriteString("\nMy suspicions after this round:\n")
		if i < len(j.Suspicions) {
			fmt.Fprintf(&sb, "%q\n", j.Suspicions[i])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func votePrompt(j *Judge, personas []*game.Persona, questions []game.Question) string {
	history := gameHistory(j, personas, questions)

	switch j.Stance {
	case TraitBased:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying human responses in a game where one player is human and the rest are AI.

Here is the complete game history:
%s
Based on all the responses throughout the game, analyze which character is likely the human player.

Which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, j.Name, history)
	case DivergenceBased:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying pattern breakers in a game where one player is human and the rest are AI.

Here is the complete game history:
%s
Analyze all responses to identify which character is the "odd one out" from the group.
Look for patterns that most characters follow and identify who breaks these patterns.
Focus on identifying differences in response style, consistency, and uniqueness compared to the group.
Avoid focusing solely on "human-like" characteristics, as this can be misleading.

Based on your analysis of who stands out from the group, which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, j.Name, history)
	default:
		return fmt.Sprintf(`You are Judge %s, an expert at identifying humans in a game where one player is human and the rest are AI.

Here is the complete game history:
%s
Using a balanced approach that considers both human traits and pattern-breaking behavior:
1. Analyze which character showed human traits.
2. Identify which character was the "odd one out" in terms of response patterns.

Based on your comprehensive analysis, which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, j.Name, history)
	}
}

// discussionHistory renders all completed discussion rounds plus the
// utterances already made in the round under way.
func discussionHistory(history []game.DiscussionRound, current []game.Utterance) string {
	var sb strings.Builder
	for _, rec := range history {
		fmt.Fprintf(&sb, "--- DISCUSSION ROUND %d ---\n", rec.Round)
		for _, u := range rec.Utterances {
			fmt.Fprintf(&sb, "Judge %s: %q\n", u.Judge, u.Text)
		}
		sb.WriteString("\n")
	}
	if len(current) > 0 {
		sb.WriteString("--- CURRENT ROUND (in progress) ---\n")
		for _, u := range current {
			fmt.Fprintf(&sb, "Judge %s: %q\n", u.Judge, u.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func stanceEmphasis(s Stance) string {
	switch s {
	case TraitBased:
		return "You focus on human traits: affect, personal anecdotes, and stylistic quirks."
	case DivergenceBased:
		return "You focus on the odd one out: whoever breaks the group's dominant response pattern."
	default:
		return "You weigh both human traits and pattern-breaking behavior."
	}
}

func discussionPrompt(j *Judge, dc DiscussionContext) string {
	others := make([]string, 0, len(dc.Panel)-1)
	for _, name := range dc.Panel {
		if name != j.Name {
			others = append(others, name)
		}
	}
	return fmt.Sprintf(`You are Judge %s, deliberating with the other judges on which character is the human player.
%s

Here is the complete game history:
%s
Current votes: %s

Discussion so far:
%s
Your current vote is %s.

Speak only as Judge %s. Never speak for or impersonate the other judges (%s).
Do not repeat points already made.
In at most 2 short sentences, argue for your current suspicion or say what would change your mind.
`, j.Name, stanceEmphasis(j.Stance),
		gameHistory(j, dc.Personas, dc.Questions),
		dc.Tally.String(),
		discussionHistory(dc.History, dc.Current),
		j.Vote, j.Name, strings.Join(others, ", "))
}

func revotePrompt(j *Judge, dc DiscussionContext) string {
	return fmt.Sprintf(`You are Judge %s, deliberating with the other judges on which character is the human player.
%s

Here is the complete game history:
%s
Here is the full panel discussion:
%s
Your previous vote was %s.

After considering the discussion, which character do you think is the human player?
Respond with just the character's name that you're voting for.
`, j.Name, stanceEmphasis(j.Stance),
		gameHistory(j, dc.Personas, dc.Questions),
		discussionHistory(dc.History, nil),
		j.Vote)
}
