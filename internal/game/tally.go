package game

import (
	"fmt"
	"strings"
)

// Tally counts votes per persona name, remembering the order names were
// first seen. It is always rebuilt from a complete vote set, never mutated
// incrementally across rounds.
type Tally struct {
	order  []string
	counts map[string]int
}

// TallyVotes builds a fresh tally from votes. Empty votes are skipped.
func TallyVotes(votes []string) *Tally {
	t := &Tally{counts: make(map[string]int)}
	for _, v := range votes {
		if v == "" {
			continue
		}
		if _, seen := t.counts[v]; !seen {
			t.order = append(t.order, v)
		}
		t.counts[v]++
	}
	return t
}

// Count returns the number of votes for name.
func (t *Tally) Count(name string) int { return t.counts[name] }

// Names returns the voted names in first-seen order.
func (t *Tally) Names() []string { return t.order }

// Unanimous reports whether exactly one distinct name received votes.
func (t *Tally) Unanimous() bool { return len(t.order) == 1 }

// Leader returns the first-seen name holding the maximum count. Ties resolve
// to whichever of the tied names entered the tally first.
func (t *Tally) Leader() string {
	leader := ""
	max := 0
	for _, name := range t.order {
		if t.counts[name] > max {
			leader, max = name, t.counts[name]
		}
	}
	return leader
}

// Counts returns a copy of the name-to-count mapping.
func (t *Tally) Counts() map[string]int {
	out := make(map[string]int, len(t.counts))
	for name, n := range t.counts {
		out[name] = n
	}
	return out
}

// String formats the tally for prompt context, in first-seen order.
func (t *Tally) String() string {
	var sb strings.Builder
	for i, name := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", name, t.counts[name])
	}
	return sb.String()
}
