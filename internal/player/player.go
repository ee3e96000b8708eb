// Package player drives the simulated personas: in-character responses,
// per-round suspicions, and a final vote.
package player

import (
	"context"
	"strings"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

// Fallback line used whenever the completion service fails. The game keeps
// going; the persona just sounds evasive for a turn.
const connectionFallback = "I'm having trouble connecting to my knowledge base right now."

// Player animates one persona. It implements game.Responder.
type Player struct {
	persona *game.Persona
	model   string
	llm     game.Completer
}

// New creates a player for a persona using the given model.
func New(p *game.Persona, model string, llm game.Completer) *Player {
	return &Player{persona: p, model: model, llm: llm}
}

// Persona returns the persona this player animates.
func (pl *Player) Persona() *game.Persona { return pl.persona }

// GenerateResponse answers the round's question in character and appends it
// to the persona's history.
func (pl *Player) GenerateResponse(ctx context.Context, q game.Question, round int) string {
	text, err := pl.llm.Complete(ctx, pl.model, responsePrompt(pl.persona, q, round))
	if err != nil {
		text = connectionFallback
	}
	text = strings.TrimSpace(text)
	pl.persona.AddResponse(text)
	return text
}

// AnalyzeResponses voices this persona's suspicion about the round and
// appends it to the persona's history.
func (pl *Player) AnalyzeResponses(ctx context.Context, all []*game.Persona, q game.Question, round int) string {
	text, err := pl.llm.Complete(ctx, pl.model, analysisPrompt(pl.persona, all, q, round))
	if err != nil {
		text = connectionFallback
	}
	text = strings.TrimSpace(text)
	pl.persona.AddSuspicion(text)
	return text
}

// CastVote produces this persona's final vote. Output naming no one, or a
// failed service call, resolves to the first persona in roster order.
func (pl *Player) CastVote(ctx context.Context, all []*game.Persona) string {
	text, err := pl.llm.Complete(ctx, pl.model, votePrompt(pl.persona, all))
	if err != nil {
		text = ""
	}
	p, _ := game.ResolvePersona(all, text)
	pl.persona.SetVote(p.Name)
	return p.Name
}
