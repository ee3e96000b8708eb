package game

import "fmt"

// Persona is one seat in the game: a fixed display identity plus the
// per-round histories that accumulate while the game runs. Trait fields are
// never modified after construction; only the histories and the vote change.
type Persona struct {
	Name        string `json:"name"`
	Profile     string `json:"profile"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
	SpeechStyle string `json:"speech_style"`

	// Introduction is only populated in interrogation mode.
	Introduction string `json:"introduction,omitempty"`

	Responses  []string `json:"responses,omitempty"`
	Suspicions []string `json:"suspicions,omitempty"`
	Vote       string   `json:"vote,omitempty"`
}

// PromptDescription formats the persona's trait sheet for prompt context.
func (p *Persona) PromptDescription() string {
	return fmt.Sprintf("Character: %s\nProfile: %s\nPersonality: %s\nBackground: %s\nSpeech Style: %s",
		p.Name, p.Profile, p.Personality, p.Background, p.SpeechStyle)
}

// AddResponse appends a response to this persona's history.
func (p *Persona) AddResponse(text string) { p.Responses = append(p.Responses, text) }

// AddSuspicion appends a suspicion statement to this persona's history.
func (p *Persona) AddSuspicion(text string) { p.Suspicions = append(p.Suspicions, text) }

// SetVote records this persona's vote for who they think is human.
func (p *Persona) SetVote(name string) { p.Vote = name }

// Reset clears all mutable state so the persona can be reused in a new game.
func (p *Persona) Reset() {
	p.Introduction = ""
	p.Responses = nil
	p.Suspicions = nil
	p.Vote = ""
}

// DefaultRoster returns the five predefined character profiles.
func DefaultRoster() []*Persona {
	return []*Persona{
		{
			Name:        "Dr. Alex Morgan",
			Profile:     "Tech Expert",
			Personality: "Analytical, precise, detail-oriented, and methodical",
			Background:  "Ph.D. in Computer Science with 15 years of experience in AI research",
			SpeechStyle: "Uses technical terminology, precise language, often references research papers and technical concepts",
		},
		{
			Name:        "Riley Jordan",
			Profile:     "Creative Artist",
			Personality: "Imaginative, emotional, expressive, and intuitive",
			Background:  "Multimedia artist with background in painting, digital art, and installation art",
			SpeechStyle: "Uses metaphors, descriptive language, references emotions and sensory experiences",
		},
		{
			Name:        "Sam Taylor",
			Profile:     "Logical Analyst",
			Personality: "Rational, structured, objective, and systematic",
			Background:  "Background in data analysis and strategic consulting",
			SpeechStyle: "Concise, factual statements, often lists points, avoids emotional language",
		},
		{
			Name:        "Jamie Wilson",
			Profile:     "Casual Gamer",
			Personality: "Relaxed, enthusiastic, playful, and sociable",
			Background:  "Avid video game player and online community member",
			SpeechStyle: "Informal language, uses gaming references, slang, and pop culture references",
		},
		{
			Name:        "Professor Pat Chen",
			Profile:     "Academic Scholar",
			Personality: "Thoughtful, nuanced, inquisitive, and thorough",
			Background:  "University professor specializing in philosophy and ethics",
			SpeechStyle: "Formal language, references theories and studies, poses questions, considers multiple perspectives",
		},
	}
}
