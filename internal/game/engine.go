package game

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Engine runs a standard-mode game: question rounds in which every persona
// responds and voices suspicions, followed by the final vote and the judge
// panel deliberation.
type Engine struct {
	personas  []*Persona
	human     *Persona
	players   []Responder
	questions []Question
	panel     Deliberator

	// Human input hooks. All three must be set before Run.
	HumanResponse  func(round int, q Question) string
	HumanSuspicion func(round int) string
	HumanVote      func(options []string) string

	// Optional display hooks.
	OnQuestion      func(round, total int, q Question)
	OnResponses     func(round int, personas []*Persona)
	OnSuspicions    func(round int, personas []*Persona)
	OnJudgeAnalysis func(round int, u Utterance)
	OnVote          func(voter, target string)
}

// Result is the outcome of a full game.
type Result struct {
	Accused  string       `json:"accused"`
	HumanWon bool         `json:"human_won"`
	Votes    *Tally       `json:"-"`
	VoteMap  map[string]int `json:"votes"`
	Panel    *PanelResult `json:"panel,omitempty"`
}

// NewEngine validates the roster wiring: the human must be one of the
// personas and every other persona must have a player driving it.
func NewEngine(personas []*Persona, human *Persona, players []Responder, questions []Question, panel Deliberator) (*Engine, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("game: no questions selected")
	}
	found := false
	for _, p := range personas {
		if p == human {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("game: human persona %q is not in the roster", human.Name)
	}
	if len(players) != len(personas)-1 {
		return nil, fmt.Errorf("game: expected %d players, got %d", len(personas)-1, len(players))
	}
	return &Engine{
		personas:  personas,
		human:     human,
		players:   players,
		questions: questions,
		panel:     panel,
	}, nil
}

// Run plays every round and resolves the game. It returns an error only for
// a cancelled context or a panel precondition violation; generation failures
// degrade to fallback text inside the players and judges.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	for i, q := range e.questions {
		round := i + 1
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		if e.OnQuestion != nil {
			e.OnQuestion(round, len(e.questions), q)
		}

		e.human.AddResponse(e.HumanResponse(round, q))
		// Independent generations; each player writes only its own persona.
		g, gctx := errgroup.WithContext(ctx)
		for _, pl := range e.players {
			pl := pl
			g.Go(func() error {
				pl.GenerateResponse(gctx, q, round)
				return nil
			})
		}
		_ = g.Wait()
		if e.OnResponses != nil {
			e.OnResponses(round, e.personas)
		}

		e.human.AddSuspicion(e.HumanSuspicion(round))
		g, gctx = errgroup.WithContext(ctx)
		for _, pl := range e.players {
			pl := pl
			g.Go(func() error {
				pl.AnalyzeResponses(gctx, e.personas, q, round)
				return nil
			})
		}
		_ = g.Wait()
		if e.OnSuspicions != nil {
			e.OnSuspicions(round, e.personas)
		}

		if e.panel != nil {
			for _, u := range e.panel.AnalyzeRound(ctx, q, round) {
				if e.OnJudgeAnalysis != nil {
					e.OnJudgeAnalysis(round, u)
				}
			}
		}
	}
	return e.runVoting(ctx)
}

func (e *Engine) runVoting(ctx context.Context) (*Result, error) {
	// The human must vote for someone else to keep their cover.
	var options []string
	for _, p := range e.personas {
		if p != e.human {
			options = append(options, p.Name)
		}
	}
	e.human.SetVote(e.HumanVote(options))
	if e.OnVote != nil {
		e.OnVote(e.human.Name, e.human.Vote)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, pl := range e.players {
		pl := pl
		g.Go(func() error {
			pl.CastVote(gctx, e.personas)
			return nil
		})
	}
	_ = g.Wait()
	for _, pl := range e.players {
		if e.OnVote != nil {
			e.OnVote(pl.Persona().Name, pl.Persona().Vote)
		}
	}

	votes := make([]string, 0, len(e.personas))
	for _, p := range e.personas {
		votes = append(votes, p.Vote)
	}
	tally := TallyVotes(votes)
	accused := tally.Leader()

	res := &Result{
		Accused:  accused,
		HumanWon: accused != e.human.Name,
		Votes:    tally,
		VoteMap:  tally.Counts(),
	}
	if e.panel != nil {
		panelRes, err := e.panel.Run(ctx)
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		res.Panel = panelRes
	}
	return res, nil
}

// Reset clears all mutable persona state so the same roster can play again.
func (e *Engine) Reset() {
	for _, p := range e.personas {
		p.Reset()
	}
}
