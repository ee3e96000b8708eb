package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

func TestCreateOutputDir(t *testing.T) {
	base := t.TempDir()

	dir, err := CreateOutputDir(base, "game-abc123")
	if err != nil {
		t.Fatalf("CreateOutputDir() error = %v", err)
	}
	if !strings.HasPrefix(dir, base) {
		t.Errorf("dir %q not under base %q", dir, base)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %q: %v", dir, err)
	}
}

func TestWriterLog(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.Log("round 1 started")
	w.Log("Riley Jordan responded")

	if err := w.WriteLog(); err != nil {
		t.Fatalf("WriteLog() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "game.log"))
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "round 1 started") || !strings.Contains(content, "Riley Jordan responded") {
		t.Errorf("log missing lines:\n%s", content)
	}
	if len(strings.Split(strings.TrimSpace(content), "\n")) != 2 {
		t.Errorf("expected 2 log lines:\n%s", content)
	}
}

func TestWriterJSON(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	res := &game.Result{Accused: "Sam Taylor", HumanWon: true, VoteMap: map[string]int{"Sam Taylor": 3}}
	if err := w.WriteJSON("game.json", res); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "game.json"))
	if err != nil {
		t.Fatalf("failed to read json: %v", err)
	}
	var decoded game.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Accused != "Sam Taylor" || !decoded.HumanWon {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestWriterMarkdownReport(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	personas := game.DefaultRoster()
	for _, p := range personas {
		p.AddResponse("an answer")
	}
	questions := []game.Question{{Text: "What scares you?", Category: "Emotional Situation"}}
	res := &game.Result{
		Accused:  "Riley Jordan",
		HumanWon: false,
		VoteMap:  map[string]int{"Riley Jordan": 4, "Sam Taylor": 1},
		Panel: &game.PanelResult{
			Verdict:   "Riley Jordan",
			Consensus: true,
			Rounds:    1,
			Discussion: []game.DiscussionRound{
				{Round: 1, Utterances: []game.Utterance{{Judge: "Holmes", Text: "the anecdote gave it away"}}},
			},
			FinalVotes: map[string]string{"Holmes": "Riley Jordan"},
		},
	}

	if err := w.WriteMarkdown(personas, questions, res); err != nil {
		t.Fatalf("WriteMarkdown() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "game.md"))
	if err != nil {
		t.Fatalf("failed to read markdown: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"What scares you?",
		"Riley Jordan",
		"Panel verdict",
		"the anecdote gave it away",
		"The human was unmasked.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
