package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

// CreateOutputDir creates base/<name> and returns its path.
func CreateOutputDir(base, name string) (string, error) {
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("output: %w", err)
	}
	return dir, nil
}

// Writer accumulates a play-by-play log and saves game artifacts to a
// directory.
type Writer struct {
	dir   string
	lines []string
}

// NewWriter creates a Writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Log appends a timestamped line to the play-by-play log.
func (w *Writer) Log(line string) {
	w.lines = append(w.lines, fmt.Sprintf("[%s] %s", time.Now().Format(time.TimeOnly), line))
}

// WriteLog flushes the accumulated log to game.log.
func (w *Writer) WriteLog() error {
	data := strings.Join(w.lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(w.dir, "game.log"), []byte(data), 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// WriteJSON saves v as indented JSON under the given file name.
func (w *Writer) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// WriteMarkdown saves a human-readable game report.
func (w *Writer) WriteMarkdown(personas []*game.Persona, questions []game.Question, res *game.Result) error {
	var sb strings.Builder
	sb.WriteString("# Reverse Turing Test — game report\n\n")
	for i, q := range questions {
		fmt.Fprintf(&sb, "## Round %d — %s\n\n%s\n\n", i+1, q.Category, q.Text)
		for _, p := range personas {
			if i < len(p.Responses) {
				fmt.Fprintf(&sb, "- **%s**: %s\n", p.Name, p.Responses[i])
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("## Votes\n\n")
	for name, count := range res.VoteMap {
		fmt.Fprintf(&sb, "- %s: %d\n", name, count)
	}
	fmt.Fprintf(&sb, "\nAccused: **%s**\n", res.Accused)
	if res.Panel != nil {
		fmt.Fprintf(&sb, "\n## Panel verdict\n\n**%s** (consensus: %v, discussion rounds: %d)\n\n", res.Panel.Verdict, res.Panel.Consensus, res.Panel.Rounds)
		for _, rec := range res.Panel.Discussion {
			fmt.Fprintf(&sb, "### Discussion round %d\n\n", rec.Round)
			for _, u := range rec.Utterances {
				fmt.Fprintf(&sb, "- **Judge %s**: %s\n", u.Judge, u.Text)
			}
			sb.WriteString("\n")
		}
	}
	if res.HumanWon {
		sb.WriteString("\nThe human escaped detection.\n")
	} else {
		sb.WriteString("\nThe human was unmasked.\n")
	}
	if err := os.WriteFile(filepath.Join(w.dir, "game.md"), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
