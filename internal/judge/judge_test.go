package judge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

type fixedLLM struct {
	text  string
	err   error
	calls int
	last  string
}

func (m *fixedLLM) Complete(_ context.Context, _ string, prompt string) (string, error) {
	m.calls++
	m.last = prompt
	return m.text, m.err
}

func roster(t *testing.T) []*game.Persona {
	t.Helper()
	personas := game.DefaultRoster()
	for _, p := range personas {
		p.AddResponse("an answer")
	}
	return personas
}

func questions() []game.Question {
	return []game.Question{{Text: "q", Category: "Opinion"}}
}

func TestCastVoteResolvesNamedPersona(t *testing.T) {
	llm := &fixedLLM{text: "After weighing everything, my vote is Jamie Wilson."}
	j := New("Holmes", TraitBased, "m", llm)

	got := j.CastVote(context.Background(), roster(t), questions())
	if got != "Jamie Wilson" || j.Vote != "Jamie Wilson" {
		t.Errorf("expected vote Jamie Wilson, got %q (stored %q)", got, j.Vote)
	}
}

func TestCastVoteFallsBackToRosterFirst(t *testing.T) {
	tests := []struct {
		name string
		llm  *fixedLLM
	}{
		{"service error", &fixedLLM{err: errors.New("boom")}},
		{"no persona named", &fixedLLM{text: "I truly cannot decide."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New("Holmes", TraitBased, "m", tt.llm)
			got := j.CastVote(context.Background(), roster(t), questions())
			if got != "Dr. Alex Morgan" {
				t.Errorf("expected roster-first fallback, got %q", got)
			}
		})
	}
}

func TestRevoteKeepsPreviousVoteOnFailure(t *testing.T) {
	personas := roster(t)
	dc := DiscussionContext{
		Personas:  personas,
		Questions: questions(),
		Tally:     game.TallyVotes([]string{"Sam Taylor", "Riley Jordan"}),
		Panel:     []string{"Holmes", "Watson", "Poirot"},
	}

	j := New("Holmes", TraitBased, "m", &fixedLLM{err: errors.New("boom")})
	j.Vote = "Sam Taylor"
	if got := j.Revote(context.Background(), dc); got != "Sam Taylor" {
		t.Errorf("service error: expected previous vote kept, got %q", got)
	}

	j = New("Holmes", TraitBased, "m", &fixedLLM{text: "I remain unsure."})
	j.Vote = "Sam Taylor"
	if got := j.Revote(context.Background(), dc); got != "Sam Taylor" {
		t.Errorf("unresolvable output: expected previous vote kept, got %q", got)
	}

	j = New("Holmes", TraitBased, "m", &fixedLLM{text: "Changing to Riley Jordan."})
	j.Vote = "Sam Taylor"
	if got := j.Revote(context.Background(), dc); got != "Riley Jordan" {
		t.Errorf("expected vote change to Riley Jordan, got %q", got)
	}
}

func TestFormSuspicionAppendsAndFallsBack(t *testing.T) {
	j := New("Watson", DivergenceBased, "m", &fixedLLM{text: "Riley Jordan stands out."})
	text := j.FormSuspicion(context.Background(), roster(t), questions()[0], 1)
	if text != "Riley Jordan stands out." {
		t.Errorf("unexpected suspicion %q", text)
	}

	j.llm = &fixedLLM{err: errors.New("boom")}
	text = j.FormSuspicion(context.Background(), roster(t), questions()[0], 2)
	if !strings.Contains(text, "Judge Watson could not analyze this round") {
		t.Errorf("expected placeholder, got %q", text)
	}
	if len(j.Suspicions) != 2 {
		t.Errorf("expected 2 suspicions recorded, got %d", len(j.Suspicions))
	}
}

func TestSpeakTruncatesLongUtterances(t *testing.T) {
	long := strings.Repeat("ä", maxUtteranceRunes+50)
	j := New("Poirot", Blended, "m", &fixedLLM{text: long})
	dc := DiscussionContext{
		Personas:  roster(t),
		Questions: questions(),
		Tally:     game.TallyVotes([]string{"Sam Taylor"}),
		Panel:     []string{"Holmes", "Watson", "Poirot"},
	}
	got := j.Speak(context.Background(), dc)
	r := []rune(got)
	if len(r) != maxUtteranceRunes+1 {
		t.Fatalf("expected %d runes, got %d", maxUtteranceRunes+1, len(r))
	}
	if r[len(r)-1] != '…' {
		t.Errorf("expected ellipsis terminator, got %q", string(r[len(r)-1]))
	}
}

func TestSpeakStripsOtherJudgesTags(t *testing.T) {
	j := New("Holmes", TraitBased, "m", &fixedLLM{
		text: "Holmes: I still suspect Riley. Watson: I disagree. Poirot: as do I.",
	})
	dc := DiscussionContext{
		Personas:  roster(t),
		Questions: questions(),
		Tally:     game.TallyVotes([]string{"Sam Taylor", "Riley Jordan"}),
		Panel:     []string{"Holmes", "Watson", "Poirot"},
	}
	got := j.Speak(context.Background(), dc)
	if strings.Contains(got, "Watson:") || strings.Contains(got, "Poirot:") {
		t.Errorf("other judges' tags survived: %q", got)
	}
	if !strings.Contains(got, "Holmes:") {
		t.Errorf("own tag should be left alone: %q", got)
	}
}

func TestSpeakFallsBackOnServiceError(t *testing.T) {
	j := New("Holmes", TraitBased, "m", &fixedLLM{err: errors.New("boom")})
	dc := DiscussionContext{
		Personas:  roster(t),
		Questions: questions(),
		Tally:     game.TallyVotes([]string{"Sam Taylor"}),
		Panel:     []string{"Holmes", "Watson", "Poirot"},
	}
	got := j.Speak(context.Background(), dc)
	if !strings.Contains(got, "Judge Holmes could not analyze the discussion") {
		t.Errorf("expected placeholder, got %q", got)
	}
}

func TestStancePromptsDiffer(t *testing.T) {
	personas := roster(t)
	byStance := make(map[Stance]string)
	for _, s := range []Stance{TraitBased, DivergenceBased, Blended} {
		llm := &fixedLLM{text: "Sam Taylor"}
		j := New("Holmes", s, "m", llm)
		j.CastVote(context.Background(), personas, questions())
		byStance[s] = llm.last
	}
	if byStance[TraitBased] == byStance[DivergenceBased] || byStance[TraitBased] == byStance[Blended] || byStance[DivergenceBased] == byStance[Blended] {
		t.Error("expected each stance to produce a distinct vote prompt")
	}
	if !strings.Contains(byStance[DivergenceBased], "odd one out") {
		t.Error("divergence prompt missing its emphasis")
	}
}

func TestDiscussionPromptIncludesPriorUtterances(t *testing.T) {
	llm := &fixedLLM{text: "I hold my vote."}
	j := New("Poirot", Blended, "m", llm)
	j.Vote = "Sam Taylor"
	dc := DiscussionContext{
		Personas:  roster(t),
		Questions: questions(),
		Tally:     game.TallyVotes([]string{"Sam Taylor", "Riley Jordan", "Sam Taylor"}),
		History: []game.DiscussionRound{
			{Round: 1, Utterances: []game.Utterance{{Judge: "Holmes", Text: "earlier point"}}},
		},
		Current: []game.Utterance{{Judge: "Watson", Text: "fresh point"}},
		Panel:   []string{"Holmes", "Watson", "Poirot"},
	}
	j.Speak(context.Background(), dc)

	for _, want := range []string{"earlier point", "fresh point", "CURRENT ROUND", "Sam Taylor: 2"} {
		if !strings.Contains(llm.last, want) {
			t.Errorf("discussion prompt missing %q", want)
		}
	}
}

func TestStanceString(t *testing.T) {
	if TraitBased.String() != "trait-based" || DivergenceBased.String() != "divergence-based" || Blended.String() != "blended" {
		t.Error("unexpected stance names")
	}
}
