// Package interrogate implements the interrogation game mode: instead of
// answering preset questions, the characters introduce themselves and then
// cross-question each other for a few rounds before voting.
package interrogate

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

const connectionFallback = "I'm having trouble connecting to my knowledge base right now."

// Exchange is one interrogation: who asked whom what, and the answer.
type Exchange struct {
	Interrogator string `json:"interrogator"`
	Target       string `json:"target"`
	Question     string `json:"question"`
	Response     string `json:"response"`
}

// Engine runs an interrogation-mode game.
type Engine struct {
	personas []*game.Persona
	human    *game.Persona
	models   map[string]string // persona name -> model
	llm      game.Completer
	rounds   int

	history [][]Exchange

	// Human input hooks. All must be set before Run.
	HumanIntroduction func() string
	HumanTarget       func(options []string) string
	HumanQuestion     func(target string) string
	HumanAnswer       func(interrogator, question string) string
	HumanSuspicion    func(round int) string
	HumanVote         func(options []string) string

	// Optional display hooks.
	OnIntroductions func(personas []*game.Persona)
	OnExchange      func(round int, ex Exchange)
	OnSuspicions    func(round int, personas []*game.Persona)
	OnVote          func(voter, target string)
}

// Result is the outcome of an interrogation-mode game.
type Result struct {
	Accused  string      `json:"accused"`
	HumanWon bool        `json:"human_won"`
	Votes    *game.Tally `json:"-"`
	History  [][]Exchange `json:"history"`
}

// NewEngine wires up an interrogation game. Every non-human persona needs a
// model assignment.
func NewEngine(personas []*game.Persona, human *game.Persona, models map[string]string, llm game.Completer, rounds int) (*Engine, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("interrogate: rounds must be >= 1, got %d", rounds)
	}
	found := false
	for _, p := range personas {
		if p == human {
			found = true
			continue
		}
		if models[p.Name] == "" {
			return nil, fmt.Errorf("interrogate: no model assigned to %q", p.Name)
		}
	}
	if !found {
		return nil, fmt.Errorf("interrogate: human persona %q is not in the roster", human.Name)
	}
	return &Engine{
		personas: personas,
		human:    human,
		models:   models,
		llm:      llm,
		rounds:   rounds,
	}, nil
}

// Run plays the full interrogation game.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.runIntroductions(ctx)

	for round := 1; round <= e.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("interrogate: %w", err)
		}
		e.runRound(ctx, round)
		e.runSuspicions(ctx, round)
	}
	return e.runVoting(ctx), nil
}

func (e *Engine) runIntroductions(ctx context.Context) {
	e.human.Introduction = e.HumanIntroduction()

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range e.personas {
		if p == e.human {
			continue
		}
		p := p
		g.Go(func() error {
			p.Introduction = e.complete(gctx, p, introductionPrompt(p))
			return nil
		})
	}
	_ = g.Wait()
	if e.OnIntroductions != nil {
		e.OnIntroductions(e.personas)
	}
}

func (e *Engine) runRound(ctx context.Context, round int) {
	var exchanges []Exchange

	order := make([]*game.Persona, len(e.personas))
	copy(order, e.personas)
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, interrogator := range order {
		targets := e.availableTargets(interrogator, exchanges)
		if len(targets) == 0 {
			continue
		}

		var target *game.Persona
		var question string
		if interrogator == e.human {
			choice := e.HumanTarget(names(targets))
			target, _ = game.ResolvePersona(targets, choice)
			question = e.HumanQuestion(target.Name)
		} else {
			target = e.chooseTarget(ctx, interrogator, targets, round)
			question = e.complete(ctx, interrogator, questionPrompt(interrogator, target, e.history))
		}

		var response string
		if target == e.human {
			response = e.HumanAnswer(interrogator.Name, question)
		} else {
			response = e.complete(ctx, target, answerPrompt(target, interrogator, question))
		}

		ex := Exchange{
			Interrogator: interrogator.Name,
			Target:       target.Name,
			Question:     question,
			Response:     response,
		}
		exchanges = append(exchanges, ex)
		if e.OnExchange != nil {
			e.OnExchange(round, ex)
		}
	}

	e.history = append(e.history, exchanges)
}

func (e *Engine) runSuspicions(ctx context.Context, round int) {
	e.human.AddSuspicion(e.HumanSuspicion(round))

	roundExchanges := e.history[round-1]
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range e.personas {
		if p == e.human {
			continue
		}
		p := p
		g.Go(func() error {
			p.AddSuspicion(e.complete(gctx, p, suspicionPrompt(p, roundExchanges, round)))
			return nil
		})
	}
	_ = g.Wait()
	if e.OnSuspicions != nil {
		e.OnSuspicions(round, e.personas)
	}
}

func (e *Engine) runVoting(ctx context.Context) *Result {
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

	for _, p := range e.personas {
		if p == e.human {
			continue
		}
		text, err := e.llm.Complete(ctx, e.models[p.Name], votePrompt(p, e.history, e.personas))
		if err != nil {
			text = ""
		}
		voted, _ := game.ResolvePersona(e.personas, text)
		p.SetVote(voted.Name)
		if e.OnVote != nil {
			e.OnVote(p.Name, p.Vote)
		}
	}

	votes := make([]string, 0, len(e.personas))
	for _, p := range e.personas {
		votes = append(votes, p.Vote)
	}
	tally := game.TallyVotes(votes)
	accused := tally.Leader()
	return &Result{
		Accused:  accused,
		HumanWon: accused != e.human.Name,
		Votes:    tally,
		History:  e.history,
	}
}

// chooseTarget lets the model pick who to interrogate. The first round is
// random; failed selection falls back to a random target.
func (e *Engine) chooseTarget(ctx context.Context, interrogator *game.Persona, targets []*game.Persona, round int) *game.Persona {
	if round == 1 || len(e.history) == 0 {
		return targets[rand.Intn(len(targets))]
	}
	text, err := e.llm.Complete(ctx, e.models[interrogator.Name], targetSelectionPrompt(interrogator, targets, round, e.history, e.personas))
	if err == nil {
		if p, ok := game.ResolvePersona(targets, text); ok {
			return p
		}
	}
	return targets[rand.Intn(len(targets))]
}

// availableTargets excludes the interrogator itself and anyone this
// interrogator already questioned in the current round.
func (e *Engine) availableTargets(interrogator *game.Persona, exchanges []Exchange) []*game.Persona {
	asked := make(map[string]bool)
	for _, ex := range exchanges {
		if ex.Interrogator == interrogator.Name {
			asked[ex.Target] = true
		}
	}
	var targets []*game.Persona
	for _, p := range e.personas {
		if p != interrogator && !asked[p.Name] {
			targets = append(targets, p)
		}
	}
	return targets
}

func (e *Engine) complete(ctx context.Context, p *game.Persona, prompt string) string {
	text, err := e.llm.Complete(ctx, e.models[p.Name], prompt)
	if err != nil {
		return connectionFallback
	}
	return text
}

func names(personas []*game.Persona) []string {
	out := make([]string, len(personas))
	for i, p := range personas {
		out[i] = p.Name
	}
	return out
}
