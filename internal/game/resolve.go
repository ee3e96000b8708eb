package game

import "strings"

// ResolvePersona finds the first persona, in roster order, whose name appears
// anywhere in text (case-insensitive). When nothing matches it falls back to
// the first persona in the roster and reports false, so callers can apply
// their own failure policy instead.
func ResolvePersona(roster []*Persona, text string) (*Persona, bool) {
	lower := strings.ToLower(text)
	for _, p := range roster {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	if len(roster) == 0 {
		return nil, false
	}
	return roster[0], false
}
