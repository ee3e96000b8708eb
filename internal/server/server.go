// Package server exposes the game over a JSON API with a websocket event
// stream per game.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
)

// Options configures a Server.
type Options struct {
	Completer game.Completer
	// AssignModels maps simulated persona names to model IDs.
	AssignModels func(names []string) map[string]string
	JudgeModel   string
	// Rounds is the number of question rounds per game.
	Rounds int
	// DiscussionRounds caps the judge panel discussion loop.
	DiscussionRounds int
	Logger           *zap.Logger
}

// Server hosts the game API.
type Server struct {
	app  *fiber.App
	opts Options
	log  *zap.Logger
	reg  *registry
}

// New builds the server and registers its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Server{
		app:  fiber.New(fiber.Config{AppName: "reverse-turing"}),
		opts: opts,
		log:  opts.Logger,
		reg:  newRegistry(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Post("/games", s.handleStartGame)
	api.Post("/games/:id/character", s.handleSelectCharacter)
	api.Post("/games/:id/response", s.handleSubmitResponse)
	api.Post("/games/:id/suspicion", s.handleSubmitSuspicion)
	api.Post("/games/:id/vote", s.handleSubmitVote)
	api.Delete("/games/:id", s.handleResetGame)

	api.Get("/games/:id/events", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}, websocket.New(s.handleEvents))
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves the API on addr until the listener fails.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// handleEvents streams a game's events over a websocket connection.
func (s *Server) handleEvents(c *websocket.Conn) {
	defer c.Close()

	sess, ok := s.reg.get(c.Params("id"))
	if !ok {
		return
	}
	ch := sess.subscribe()
	defer sess.unsubscribe(ch)

	for msg := range ch {
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
