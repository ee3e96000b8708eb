package game

import "context"

// Completer is the single entry point to the language model service.
// Implemented by the OpenRouter client; mocked in tests.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Responder drives one simulated persona through the game. None of its
// methods return errors: generation failures degrade to fallback text so the
// game always continues.
type Responder interface {
	Persona() *Persona
	GenerateResponse(ctx context.Context, q Question, round int) string
	AnalyzeResponses(ctx context.Context, all []*Persona, q Question, round int) string
	CastVote(ctx context.Context, all []*Persona) string
}

// Utterance is one judge's contribution to a panel discussion round.
type Utterance struct {
	Judge string `json:"judge"`
	Text  string `json:"text"`
}

// DiscussionRound records every utterance of one discussion round, in
// speaking order.
type DiscussionRound struct {
	Round      int         `json:"round"`
	Utterances []Utterance `json:"utterances"`
}

// PanelResult is the outcome of a judge panel deliberation. Verdict is always
// one of the known persona names.
type PanelResult struct {
	Verdict    string            `json:"verdict"`
	Consensus  bool              `json:"consensus"`
	Rounds     int               `json:"rounds"`
	Discussion []DiscussionRound `json:"discussion,omitempty"`
	FinalVotes map[string]string `json:"final_votes"`
}

// Deliberator is the judge panel as seen by the game engines. Interface so
// the engines can be tested without a live panel.
type Deliberator interface {
	// AnalyzeRound has each judge form a suspicion about the round just
	// played, returned in panel order.
	AnalyzeRound(ctx context.Context, q Question, round int) []Utterance
	// Run executes the full deliberation protocol. The only possible error is
	// a precondition violation (no responses recorded); service failures
	// degrade internally and still produce a verdict.
	Run(ctx context.Context) (*PanelResult, error)
}
