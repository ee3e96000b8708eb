// Package judge implements the panel members that evaluate the game
// transcript. A judge never answers questions; it only analyzes what the
// personas produced, votes on who the human is, and argues its vote in the
// panel discussion.
package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

// Stance is a judge's fixed analytical approach. It only changes prompt
// emphasis, never the protocol.
type Stance int

const (
	// TraitBased looks for affect, personal anecdote, and stylistic humanness.
	TraitBased Stance = iota
	// DivergenceBased looks for the outlier against the group's dominant pattern.
	DivergenceBased
	// Blended weighs both signals explicitly.
	Blended
)

func (s Stance) String() string {
	switch s {
	case TraitBased:
		return "trait-based"
	case DivergenceBased:
		return "divergence-based"
	case Blended:
		return "blended"
	default:
		return "unknown"
	}
}

// Discussion utterances are clipped to this many runes.
const maxUtteranceRunes = 300

// Judge is one panel member: a display name bound to a stance and a model.
// Its suspicion history and current vote are owned exclusively by this judge.
type Judge struct {
	Name   string
	Stance Stance
	Model  string

	Suspicions []string
	Vote       string

	llm game.Completer
}

// New creates a judge bound to a stance.
func New(name string, stance Stance, model string, llm game.Completer) *Judge {
	return &Judge{Name: name, Stance: stance, Model: model, llm: llm}
}

// FormSuspicion produces a short suspicion statement about one round's
// responses and appends it to the judge's history. A service failure degrades
// to a placeholder line attributed to this judge.
func (j *Judge) FormSuspicion(ctx context.Context, personas []*game.Persona, q game.Question, round int) string {
	text, err := j.llm.Complete(ctx, j.Model, suspicionPrompt(j, personas, q, round))
	if err != nil {
		text = fmt.Sprintf("[Judge %s could not analyze this round]", j.Name)
	}
	text = strings.TrimSpace(text)
	j.Suspicions = append(j.Suspicions, text)
	return text
}

// CastVote produces the judge's independent vote over the full game history.
// Output naming no persona, or a failed service call, resolves to the first
// persona in roster order.
func (j *Judge) CastVote(ctx context.Context, personas []*game.Persona, questions []game.Question) string {
	text, err := j.llm.Complete(ctx, j.Model, votePrompt(j, personas, questions))
	if err != nil {
		text = ""
	}
	p, _ := game.ResolvePersona(personas, text)
	j.Vote = p.Name
	return p.Name
}

// DiscussionContext is everything a judge sees when it takes a turn in the
// panel discussion: the full game, the current tally, all prior rounds, and
// the utterances already made by earlier speakers in the round under way.
type DiscussionContext struct {
	Personas  []*game.Persona
	Questions []game.Question
	Tally     *game.Tally
	History   []game.DiscussionRound
	Current   []game.Utterance
	Panel     []string // all judge names in speaking order
}

// Speak produces the judge's discussion utterance. Output is scrubbed of the
// other judges' speaker tags and clipped to maxUtteranceRunes.
func (j *Judge) Speak(ctx context.Context, dc DiscussionContext) string {
	text, err := j.llm.Complete(ctx, j.Model, discussionPrompt(j, dc))
	if err != nil {
		return fmt.Sprintf("[Judge %s could not analyze the discussion]", j.Name)
	}
	text = stripSpeakerTags(text, j.Name, dc.Panel)
	return truncate(strings.TrimSpace(text), maxUtteranceRunes)
}

// Revote re-casts the judge's vote after a discussion round. Unlike CastVote,
// output naming no persona keeps the previous vote; there is no roster-order
// default here.
func (j *Judge) Revote(ctx context.Context, dc DiscussionContext) string {
	text, err := j.llm.Complete(ctx, j.Model, revotePrompt(j, dc))
	if err == nil {
		if p, ok := game.ResolvePersona(dc.Personas, text); ok {
			j.Vote = p.Name
		}
	}
	return j.Vote
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// stripSpeakerTags removes "<other judge>:" tags the model sometimes emits
// when it narrates the whole panel instead of speaking as itself.
func stripSpeakerTags(text, self string, panel []string) string {
	for _, name := range panel {
		if name == self {
			continue
		}
		text = strings.ReplaceAll(text, name+":", "")
	}
	return text
}
