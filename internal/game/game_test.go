package game

import (
	"context"
	"testing"
)

func TestResolvePersonaMatchesSubstring(t *testing.T) {
	roster := DefaultRoster()

	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"Riley Jordan", "Riley Jordan", true},
		{"I am convinced riley jordan is the human.", "Riley Jordan", true},
		{"My vote goes to Professor Pat Chen, without a doubt.", "Professor Pat Chen", true},
		{"SAM TAYLOR", "Sam Taylor", true},
		{"I honestly cannot tell.", "Dr. Alex Morgan", false},
		{"", "Dr. Alex Morgan", false},
	}
	for _, tt := range tests {
		p, ok := ResolvePersona(roster, tt.text)
		if p.Name != tt.want || ok != tt.ok {
			t.Errorf("ResolvePersona(%q) = %q, %v; want %q, %v", tt.text, p.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestResolvePersonaPrefersRosterOrder(t *testing.T) {
	roster := DefaultRoster()
	// Text naming two personas resolves to the one earlier in the roster.
	p, ok := ResolvePersona(roster, "Either Sam Taylor or Riley Jordan, leaning Sam.")
	if !ok || p.Name != "Riley Jordan" {
		t.Errorf("expected Riley Jordan (earlier in roster), got %q", p.Name)
	}
}

func TestResolvePersonaEmptyRoster(t *testing.T) {
	p, ok := ResolvePersona(nil, "anything")
	if p != nil || ok {
		t.Errorf("expected nil, false for empty roster, got %v, %v", p, ok)
	}
}

func TestTallyLeaderMajority(t *testing.T) {
	tally := TallyVotes([]string{"Riley Jordan", "Sam Taylor", "Riley Jordan"})
	if got := tally.Leader(); got != "Riley Jordan" {
		t.Errorf("expected leader Riley Jordan, got %q", got)
	}
	if tally.Count("Riley Jordan") != 2 || tally.Count("Sam Taylor") != 1 {
		t.Errorf("unexpected counts: %v", tally.Counts())
	}
	if tally.Unanimous() {
		t.Error("split tally reported unanimous")
	}
}

func TestTallyLeaderTieGoesToFirstSeen(t *testing.T) {
	tally := TallyVotes([]string{"Sam Taylor", "Riley Jordan", "Jamie Wilson"})
	if got := tally.Leader(); got != "Sam Taylor" {
		t.Errorf("expected first-seen leader Sam Taylor, got %q", got)
	}
	// A two-way tie behaves the same regardless of later vote order.
	tally = TallyVotes([]string{"Riley Jordan", "Sam Taylor", "Sam Taylor", "Riley Jordan"})
	if got := tally.Leader(); got != "Riley Jordan" {
		t.Errorf("expected first-seen leader Riley Jordan, got %q", got)
	}
}

func TestTallySkipsEmptyVotes(t *testing.T) {
	tally := TallyVotes([]string{"", "Riley Jordan", ""})
	if !tally.Unanimous() {
		t.Error("expected unanimity after skipping empty votes")
	}
	if len(tally.Names()) != 1 {
		t.Errorf("expected 1 name, got %v", tally.Names())
	}
}

func TestTallyString(t *testing.T) {
	tally := TallyVotes([]string{"Riley Jordan", "Sam Taylor", "Riley Jordan"})
	if got := tally.String(); got != "Riley Jordan: 2, Sam Taylor: 1" {
		t.Errorf("unexpected tally string %q", got)
	}
}

func TestSelectQuestionsCategoryDiversity(t *testing.T) {
	bank := QuestionBank()
	selected := SelectQuestions(bank, 5)
	if len(selected) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(selected))
	}
	// The bank has 5 categories, so 5 picks must all differ in category.
	seen := make(map[string]bool)
	for _, q := range selected {
		if seen[q.Category] {
			t.Errorf("category %q selected twice", q.Category)
		}
		seen[q.Category] = true
	}
}

func TestSelectQuestionsMoreThanCategories(t *testing.T) {
	bank := QuestionBank()
	selected := SelectQuestions(bank, 8)
	if len(selected) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(selected))
	}
	seen := make(map[string]bool)
	for _, q := range selected {
		if seen[q.Text] {
			t.Errorf("question selected twice: %q", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestSelectQuestionsCappedByBank(t *testing.T) {
	bank := QuestionBank()
	selected := SelectQuestions(bank, len(bank)+10)
	if len(selected) != len(bank) {
		t.Errorf("expected %d questions, got %d", len(bank), len(selected))
	}
}

func TestPersonaReset(t *testing.T) {
	p := DefaultRoster()[0]
	p.Introduction = "hello"
	p.AddResponse("a response")
	p.AddSuspicion("a suspicion")
	p.SetVote("Riley Jordan")

	p.Reset()
	if p.Introduction != "" || len(p.Responses) != 0 || len(p.Suspicions) != 0 || p.Vote != "" {
		t.Errorf("Reset left state behind: %+v", p)
	}
	if p.Name != "Dr. Alex Morgan" {
		t.Errorf("Reset touched trait fields: %q", p.Name)
	}
}

// scriptedResponder drives one persona with fixed text.
type scriptedResponder struct {
	persona *Persona
	vote    string
}

func (r *scriptedResponder) Persona() *Persona { return r.persona }

func (r *scriptedResponder) GenerateResponse(_ context.Context, _ Question, round int) string {
	text := "scripted response"
	r.persona.AddResponse(text)
	return text
}

func (r *scriptedResponder) AnalyzeResponses(_ context.Context, _ []*Persona, _ Question, round int) string {
	text := "scripted suspicion"
	r.persona.AddSuspicion(text)
	return text
}

func (r *scriptedResponder) CastVote(_ context.Context, _ []*Persona) string {
	r.persona.SetVote(r.vote)
	return r.vote
}

// stubDeliberator records its calls and returns a fixed verdict.
type stubDeliberator struct {
	analyzeCalls int
	runCalls     int
	verdict      string
}

func (d *stubDeliberator) AnalyzeRound(_ context.Context, _ Question, _ int) []Utterance {
	d.analyzeCalls++
	return []Utterance{{Judge: "Holmes", Text: "a suspicion"}}
}

func (d *stubDeliberator) Run(_ context.Context) (*PanelResult, error) {
	d.runCalls++
	return &PanelResult{Verdict: d.verdict, Consensus: true, FinalVotes: map[string]string{}}, nil
}

func testEngine(t *testing.T, votes map[string]string, humanVote string) (*Engine, []*Persona, *Persona, *stubDeliberator) {
	t.Helper()
	personas := DefaultRoster()
	human := personas[1] // Riley Jordan

	var players []Responder
	for _, p := range personas {
		if p == human {
			continue
		}
		players = append(players, &scriptedResponder{persona: p, vote: votes[p.Name]})
	}
	panel := &stubDeliberator{verdict: "Riley Jordan"}
	questions := []Question{
		{Text: "q1", Category: "Opinion"},
		{Text: "q2", Category: "Logical Puzzle"},
	}
	e, err := NewEngine(personas, human, players, questions, panel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.HumanResponse = func(round int, q Question) string { return "human response" }
	e.HumanSuspicion = func(round int) string { return "human suspicion" }
	e.HumanVote = func(options []string) string {
		for _, o := range options {
			if o == humanVote {
				return o
			}
		}
		t.Fatalf("vote %q not offered in %v", humanVote, options)
		return ""
	}
	return e, personas, human, panel
}

func TestEngineRunRecordsAllHistories(t *testing.T) {
	votes := map[string]string{
		"Dr. Alex Morgan":    "Riley Jordan",
		"Sam Taylor":         "Riley Jordan",
		"Jamie Wilson":       "Sam Taylor",
		"Professor Pat Chen": "Riley Jordan",
	}
	e, personas, human, panel := testEngine(t, votes, "Sam Taylor")

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range personas {
		if len(p.Responses) != 2 {
			t.Errorf("%s: expected 2 responses, got %d", p.Name, len(p.Responses))
		}
		if len(p.Suspicions) != 2 {
			t.Errorf("%s: expected 2 suspicions, got %d", p.Name, len(p.Suspicions))
		}
		if p.Vote == "" {
			t.Errorf("%s: no vote recorded", p.Name)
		}
	}
	if res.Accused != "Riley Jordan" {
		t.Errorf("expected accused Riley Jordan, got %q", res.Accused)
	}
	if res.HumanWon {
		t.Error("human was accused by majority but reported as winning")
	}
	if res.Accused != human.Name {
		t.Errorf("sanity: accused %q, human %q", res.Accused, human.Name)
	}
	if panel.analyzeCalls != 2 {
		t.Errorf("expected panel analysis per round, got %d calls", panel.analyzeCalls)
	}
	if panel.runCalls != 1 {
		t.Errorf("expected 1 deliberation, got %d", panel.runCalls)
	}
	if res.Panel == nil || res.Panel.Verdict != "Riley Jordan" {
		t.Errorf("panel result not attached: %+v", res.Panel)
	}
}

func TestEngineHumanWinsWhenNotAccused(t *testing.T) {
	votes := map[string]string{
		"Dr. Alex Morgan":    "Sam Taylor",
		"Sam Taylor":         "Jamie Wilson",
		"Jamie Wilson":       "Sam Taylor",
		"Professor Pat Chen": "Sam Taylor",
	}
	e, _, _, _ := testEngine(t, votes, "Professor Pat Chen")

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accused != "Sam Taylor" {
		t.Errorf("expected accused Sam Taylor, got %q", res.Accused)
	}
	if !res.HumanWon {
		t.Error("expected human to win when someone else is accused")
	}
}

func TestEngineVoteOptionsExcludeHuman(t *testing.T) {
	votes := map[string]string{
		"Dr. Alex Morgan":    "Sam Taylor",
		"Sam Taylor":         "Dr. Alex Morgan",
		"Jamie Wilson":       "Sam Taylor",
		"Professor Pat Chen": "Sam Taylor",
	}
	e, _, human, _ := testEngine(t, votes, "Sam Taylor")
	var offered []string
	e.HumanVote = func(options []string) string {
		offered = options
		return options[0]
	}
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offered) != 4 {
		t.Fatalf("expected 4 vote options, got %d", len(offered))
	}
	for _, o := range offered {
		if o == human.Name {
			t.Error("human offered as a vote option to themselves")
		}
	}
}

func TestEngineRunStopsOnCancelledContext(t *testing.T) {
	votes := map[string]string{
		"Dr. Alex Morgan":    "Sam Taylor",
		"Sam Taylor":         "Dr. Alex Morgan",
		"Jamie Wilson":       "Sam Taylor",
		"Professor Pat Chen": "Sam Taylor",
	}
	e, _, _, _ := testEngine(t, votes, "Sam Taylor")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestNewEngineValidation(t *testing.T) {
	personas := DefaultRoster()
	human := personas[0]
	questions := []Question{{Text: "q", Category: "Opinion"}}

	players := make([]Responder, 0, len(personas)-1)
	for _, p := range personas[1:] {
		players = append(players, &scriptedResponder{persona: p})
	}

	stranger := &Persona{Name: "Nobody"}
	if _, err := NewEngine(personas, stranger, players, questions, nil); err == nil {
		t.Error("expected error when human is not in roster")
	}
	if _, err := NewEngine(personas, human, players[:2], questions, nil); err == nil {
		t.Error("expected error on player/persona count mismatch")
	}
	if _, err := NewEngine(personas, human, players, nil, nil); err == nil {
		t.Error("expected error with no questions")
	}
	if _, err := NewEngine(personas, human, players, questions, nil); err != nil {
		t.Errorf("nil panel should be allowed: %v", err)
	}
}

func TestEngineReset(t *testing.T) {
	votes := map[string]string{
		"Dr. Alex Morgan":    "Sam Taylor",
		"Sam Taylor":         "Dr. Alex Morgan",
		"Jamie Wilson":       "Sam Taylor",
		"Professor Pat Chen": "Sam Taylor",
	}
	e, personas, _, _ := testEngine(t, votes, "Sam Taylor")
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Reset()
	for _, p := range personas {
		if len(p.Responses) != 0 || len(p.Suspicions) != 0 || p.Vote != "" {
			t.Errorf("%s: state survived Reset", p.Name)
		}
	}
}
