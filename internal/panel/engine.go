// Package panel implements the judge panel deliberation protocol: independent
// votes, a consensus check, a bounded discussion loop with re-voting, and
// majority resolution with a deterministic tie-break.
package panel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
	"github.com/lorenzotomasdiez/reverse-turing/internal/judge"
)

// DefaultMaxDiscussionRounds bounds the discussion loop when the caller does
// not configure it.
const DefaultMaxDiscussionRounds = 3

// Engine runs the deliberation protocol over a finished game. Judges are
// consulted in the order given; that order is the speaking order and it is
// semantically significant, since later speakers see earlier speakers'
// utterances from the same round.
type Engine struct {
	judges    []*judge.Judge
	personas  []*game.Persona
	questions []game.Question
	maxRounds int

	// Optional display hooks. Round 0 on OnVote marks the initial vote.
	OnVote      func(round int, judgeName, vote string)
	OnUtterance func(round int, u game.Utterance)
}

// New validates the panel's structural preconditions: exactly three judges
// with distinct stances and a non-empty persona roster.
func New(judges []*judge.Judge, personas []*game.Persona, questions []game.Question, maxRounds int) (*Engine, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("panel: empty persona roster")
	}
	if len(judges) != 3 {
		return nil, fmt.Errorf("panel: expected 3 judges, got %d", len(judges))
	}
	stances := make(map[judge.Stance]bool, len(judges))
	for _, j := range judges {
		if stances[j.Stance] {
			return nil, fmt.Errorf("panel: duplicate stance %s", j.Stance)
		}
		stances[j.Stance] = true
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxDiscussionRounds
	}
	return &Engine{
		judges:    judges,
		personas:  personas,
		questions: questions,
		maxRounds: maxRounds,
	}, nil
}

// AnalyzeRound has every judge form a suspicion about the round just played.
// The calls are independent and run concurrently; the returned utterances are
// in panel order regardless.
func (e *Engine) AnalyzeRound(ctx context.Context, q game.Question, round int) []game.Utterance {
	out := make([]game.Utterance, len(e.judges))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range e.judges {
		i, j := i, j
		g.Go(func() error {
			out[i] = game.Utterance{Judge: j.Name, Text: j.FormSuspicion(gctx, e.personas, q, round)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Run executes the deliberation. The verdict is always one of the known
// persona names: service failures degrade through the judges' vote fallbacks
// instead of aborting. The only possible error is the precondition that at
// least one round of responses has been recorded.
func (e *Engine) Run(ctx context.Context) (*game.PanelResult, error) {
	for _, p := range e.personas {
		if len(p.Responses) == 0 {
			return nil, fmt.Errorf("panel: persona %q has no recorded responses", p.Name)
		}
	}

	// Initial votes are independent of each other; collect them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	for _, j := range e.judges {
		j := j
		g.Go(func() error {
			j.CastVote(gctx, e.personas, e.questions)
			return nil
		})
	}
	_ = g.Wait()
	for _, j := range e.judges {
		if e.OnVote != nil {
			e.OnVote(0, j.Name, j.Vote)
		}
	}

	tally := e.tally()
	if tally.Unanimous() {
		// The judges already agree; no discussion is held.
		return &game.PanelResult{
			Verdict:    tally.Leader(),
			Consensus:  true,
			FinalVotes: e.votes(),
		}, nil
	}

	panelNames := e.names()
	var discussion []game.DiscussionRound
	consensus := false

	for round := 1; round <= e.maxRounds; round++ {
		rec := game.DiscussionRound{Round: round}
		// Fixed speaking order; each judge sees the utterances already made
		// in this round.
		for _, j := range e.judges {
			u := game.Utterance{
				Judge: j.Name,
				Text: j.Speak(ctx, judge.DiscussionContext{
					Personas:  e.personas,
					Questions: e.questions,
					Tally:     tally,
					History:   discussion,
					Current:   rec.Utterances,
					Panel:     panelNames,
				}),
			}
			rec.Utterances = append(rec.Utterances, u)
			if e.OnUtterance != nil {
				e.OnUtterance(round, u)
			}
		}
		discussion = append(discussion, rec)

		// Re-vote with the completed round in view.
		for _, j := range e.judges {
			j.Revote(ctx, judge.DiscussionContext{
				Personas:  e.personas,
				Questions: e.questions,
				Tally:     tally,
				History:   discussion,
				Panel:     panelNames,
			})
			if e.OnVote != nil {
				e.OnVote(round, j.Name, j.Vote)
			}
		}

		tally = e.tally()
		if tally.Unanimous() {
			consensus = true
			break
		}
	}

	// Consensus or loop exhaustion: either way the last round's tally decides,
	// ties going to the name that entered the tally first.
	return &game.PanelResult{
		Verdict:    tally.Leader(),
		Consensus:  consensus,
		Rounds:     len(discussion),
		Discussion: discussion,
		FinalVotes: e.votes(),
	}, nil
}

func (e *Engine) tally() *game.Tally {
	votes := make([]string, 0, len(e.judges))
	for _, j := range e.judges {
		votes = append(votes, j.Vote)
	}
	return game.TallyVotes(votes)
}

func (e *Engine) votes() map[string]string {
	out := make(map[string]string, len(e.judges))
	for _, j := range e.judges {
		out[j.Name] = j.Vote
	}
	return out
}

func (e *Engine) names() []string {
	names := make([]string, len(e.judges))
	for i, j := range e.judges {
		names[i] = j.Name
	}
	return names
}
