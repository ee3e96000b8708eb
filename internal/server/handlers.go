package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lorenzotomasdiez/reverse-turing/internal/game"
	"github.com/lorenzotomasdiez/reverse-turing/internal/judge"
	"github.com/lorenzotomasdiez/reverse-turing/internal/panel"
	"github.com/lorenzotomasdiez/reverse-turing/internal/player"
)

type characterJSON struct {
	Name        string `json:"name"`
	Profile     string `json:"profile"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
	SpeechStyle string `json:"speech_style"`
}

type questionJSON struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (s *Server) getSession(c *fiber.Ctx) (*session, error) {
	sess, ok := s.reg.get(c.Params("id"))
	if !ok {
		return nil, errJSON(c, fiber.StatusNotFound, "unknown game id")
	}
	return sess, nil
}

func (s *Server) handleStartGame(c *fiber.Ctx) error {
	sess := &session{
		id:        uuid.NewString(),
		personas:  game.DefaultRoster(),
		questions: game.SelectQuestions(game.QuestionBank(), s.opts.Rounds),
	}
	s.reg.add(sess)
	s.log.Info("game created", zap.String("game_id", sess.id))

	characters := make([]characterJSON, len(sess.personas))
	for i, p := range sess.personas {
		characters[i] = characterJSON{
			Name:        p.Name,
			Profile:     p.Profile,
			Personality: p.Personality,
			Background:  p.Background,
			SpeechStyle: p.SpeechStyle,
		}
	}
	return c.JSON(fiber.Map{
		"game_id":    sess.id,
		"characters": characters,
	})
}

func (s *Server) handleSelectCharacter(c *fiber.Ctx) error {
	sess, err := s.getSession(c)
	if sess == nil {
		return err
	}

	var body struct {
		CharacterIndex *int `json:"character_index"`
	}
	if err := c.BodyParser(&body); err != nil || body.CharacterIndex == nil {
		return errJSON(c, fiber.StatusBadRequest, "invalid character index")
	}
	idx := *body.CharacterIndex
	if idx < 0 || idx >= len(sess.personas) {
		return errJSON(c, fiber.StatusBadRequest, "character index out of range")
	}

	sess.human = sess.personas[idx]

	var aiNames []string
	for i, p := range sess.personas {
		if i != idx {
			aiNames = append(aiNames, p.Name)
		}
	}
	assigned := s.opts.AssignModels(aiNames)
	sess.players = nil
	for i, p := range sess.personas {
		if i != idx {
			sess.players = append(sess.players, player.New(p, assigned[p.Name], s.opts.Completer))
		}
	}

	judges := []*judge.Judge{
		judge.New("Holmes", judge.TraitBased, s.opts.JudgeModel, s.opts.Completer),
		judge.New("Watson", judge.DivergenceBased, s.opts.JudgeModel, s.opts.Completer),
		judge.New("Poirot", judge.Blended, s.opts.JudgeModel, s.opts.Completer),
	}
	p, err := panel.New(judges, sess.personas, sess.questions, s.opts.DiscussionRounds)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}
	sess.panel = p
	sess.round = 1

	q := sess.questions[0]
	sess.publish(event{Type: "round_started", Round: 1, Data: questionJSON(q)})
	return c.JSON(fiber.Map{
		"round":    1,
		"question": questionJSON(q),
		"character": fiber.Map{
			"name":    sess.human.Name,
			"profile": sess.human.Profile,
		},
	})
}

func (s *Server) handleSubmitResponse(c *fiber.Ctx) error {
	sess, err := s.getSession(c)
	if sess == nil {
		return err
	}
	if sess.human == nil {
		return errJSON(c, fiber.StatusBadRequest, "no character selected")
	}

	var body struct {
		Response string `json:"response"`
	}
	if err := c.BodyParser(&body); err != nil || body.Response == "" {
		return errJSON(c, fiber.StatusBadRequest, "response cannot be empty")
	}
	round := sess.round
	if round < 1 || round > len(sess.questions) || sess.over {
		return errJSON(c, fiber.StatusBadRequest, "invalid round")
	}

	sess.human.AddResponse(body.Response)

	q := sess.questions[round-1]
	g, gctx := errgroup.WithContext(c.Context())
	for _, pl := range sess.players {
		pl := pl
		g.Go(func() error {
			pl.GenerateResponse(gctx, q, round)
			return nil
		})
	}
	_ = g.Wait()

	type responseJSON struct {
		CharacterName string `json:"character_name"`
		Response      string `json:"response"`
	}
	var all []responseJSON
	for _, p := range sess.personas {
		if round <= len(p.Responses) {
			all = append(all, responseJSON{CharacterName: p.Name, Response: p.Responses[round-1]})
		}
	}
	sess.publish(event{Type: "responses_ready", Round: round, Data: all})
	return c.JSON(fiber.Map{
		"round":     round,
		"responses": all,
	})
}

func (s *Server) handleSubmitSuspicion(c *fiber.Ctx) error {
	sess, err := s.getSession(c)
	if sess == nil {
		return err
	}
	if sess.human == nil {
		return errJSON(c, fiber.StatusBadRequest, "no character selected")
	}

	var body struct {
		Suspicion string `json:"suspicion"`
	}
	if err := c.BodyParser(&body); err != nil || body.Suspicion == "" {
		return errJSON(c, fiber.StatusBadRequest, "suspicion cannot be empty")
	}
	round := sess.round
	if round < 1 || round > len(sess.questions) || sess.over {
		return errJSON(c, fiber.StatusBadRequest, "invalid round")
	}

	sess.human.AddSuspicion(body.Suspicion)

	q := sess.questions[round-1]
	g, gctx := errgroup.WithContext(c.Context())
	for _, pl := range sess.players {
		pl := pl
		g.Go(func() error {
			pl.AnalyzeResponses(gctx, sess.personas, q, round)
			return nil
		})
	}
	_ = g.Wait()

	judgeSuspicions := sess.panel.AnalyzeRound(c.Context(), q, round)

	type suspicionJSON struct {
		CharacterName string `json:"character_name"`
		Suspicion     string `json:"suspicion"`
	}
	var all []suspicionJSON
	for _, p := range sess.personas {
		if round <= len(p.Suspicions) {
			all = append(all, suspicionJSON{CharacterName: p.Name, Suspicion: p.Suspicions[round-1]})
		}
	}

	nextAction := "next_round"
	nextRound := round + 1
	var nextQuestion *questionJSON
	if nextRound > len(sess.questions) {
		nextAction = "voting"
	} else {
		sess.round = nextRound
		q := questionJSON(sess.questions[nextRound-1])
		nextQuestion = &q
	}

	sess.publish(event{Type: "suspicions_ready", Round: round, Data: all})
	resp := fiber.Map{
		"round":            round,
		"suspicions":       all,
		"judge_suspicions": judgeSuspicions,
		"next_action":      nextAction,
	}
	if nextAction == "next_round" {
		resp["next_round"] = nextRound
		resp["next_question"] = nextQuestion
		sess.publish(event{Type: "round_started", Round: nextRound, Data: nextQuestion})
	}
	return c.JSON(resp)
}

func (s *Server) handleSubmitVote(c *fiber.Ctx) error {
	sess, err := s.getSession(c)
	if sess == nil {
		return err
	}
	if sess.human == nil {
		return errJSON(c, fiber.StatusBadRequest, "no character selected")
	}

	var body struct {
		Vote string `json:"vote"`
	}
	if err := c.BodyParser(&body); err != nil || body.Vote == "" {
		return errJSON(c, fiber.StatusBadRequest, "vote cannot be empty")
	}
	if sess.over {
		return errJSON(c, fiber.StatusBadRequest, "game is over")
	}
	voted, ok := game.ResolvePersona(sess.personas, body.Vote)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "vote must name a character")
	}
	if voted == sess.human {
		return errJSON(c, fiber.StatusBadRequest, "you must vote for someone else to keep your cover")
	}
	sess.human.SetVote(voted.Name)

	g, gctx := errgroup.WithContext(c.Context())
	for _, pl := range sess.players {
		pl := pl
		g.Go(func() error {
			pl.CastVote(gctx, sess.personas)
			return nil
		})
	}
	_ = g.Wait()

	// Plurality of the players' and human's votes decides the accused; the
	// judge panel deliberates in parallel to that and issues its own verdict.
	votes := make([]string, 0, len(sess.personas))
	voters := make(map[string][]string)
	for _, p := range sess.personas {
		if p.Vote != "" {
			votes = append(votes, p.Vote)
			voters[p.Vote] = append(voters[p.Vote], p.Name)
		}
	}
	tally := game.TallyVotes(votes)
	accused := tally.Leader()

	panelRes, err := sess.panel.Run(c.Context())
	if err != nil {
		s.log.Error("panel run failed", zap.String("game_id", sess.id), zap.Error(err))
		return errJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	humanWon := accused != sess.human.Name
	sess.over = true
	s.log.Info("game finished",
		zap.String("game_id", sess.id),
		zap.String("accused", accused),
		zap.String("verdict", panelRes.Verdict),
		zap.Bool("human_won", humanWon),
	)

	result := fiber.Map{
		"votes":           voters,
		"voted_character": accused,
		"human_character": sess.human.Name,
		"human_won":       humanWon,
		"panel":           panelRes,
	}
	sess.publish(event{Type: "verdict", Data: result})
	return c.JSON(result)
}

func (s *Server) handleResetGame(c *fiber.Ctx) error {
	if sess, ok := s.reg.get(c.Params("id")); ok {
		sess.mu.Lock()
		for _, ch := range sess.subs {
			close(ch)
		}
		sess.subs = nil
		sess.mu.Unlock()
		s.reg.remove(sess.id)
		s.log.Info("game removed", zap.String("game_id", sess.id))
	}
	return c.JSON(fiber.Map{"success": true})
}
