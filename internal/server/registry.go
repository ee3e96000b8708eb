package server

import (
	"encoding/json"
	"sync"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

// session is the complete state of one running game. All state is private to
// the session; the engines never see the registry.
type session struct {
	mu sync.Mutex

	id        string
	personas  []*game.Persona
	questions []game.Question
	human     *game.Persona
	players   []game.Responder
	panel     game.Deliberator
	round     int
	over      bool

	subs []chan []byte
}

// event is a message on a session's websocket stream.
type event struct {
	Type  string `json:"type"`
	Round int    `json:"round,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func (s *session) subscribe() chan []byte {
	ch := make(chan []byte, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *session) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(ch)
			return
		}
	}
}

// publish fans an event out to all subscribers. Slow subscribers drop
// messages rather than blocking the game.
func (s *session) publish(ev event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- data:
		default:
		}
	}
}

// registry is the thin lookup table from game id to session. It is owned by
// the server and never passed into the engines.
type registry struct {
	mu    sync.Mutex
	games map[string]*session
}

func newRegistry() *registry {
	return &registry{games: make(map[string]*session)}
}

func (r *registry) add(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[s.id] = s
}

func (r *registry) get(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.games[id]
	return s, ok
}

func (r *registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}
