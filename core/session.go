package core

import (
	"fmt"
	"os"
	"path"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LevelLoader resolves a level path to a parsed level.
type LevelLoader interface {
	Load(levelPath string) (*leveldata.Level, error)
}

// Session owns the active world and handles everything the simulation only
// signals: door transitions, the delayed restart after a loss and the
// delayed finish after a win.
type Session struct {
	loader  LevelLoader
	seed    int64
	world   *World
	current string
	logger  *log.Logger

	fade     *gween.Tween
	fadeTo   func()
	fadeNow  float32
	outcome  components.Outcome
	finished bool
}

// NewSession loads levelPath (the builtin default when empty) and returns a
// session ready to step.
func NewSession(loader LevelLoader, levelPath string, seed int64) (*Session, error) {
	s := &Session{
		loader: loader,
		seed:   seed,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "session",
		}),
	}
	lvl, err := loader.Load(levelPath)
	if err != nil {
		return nil, fmt.Errorf("load initial level: %w", err)
	}
	s.enter(lvl)
	return s, nil
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

// World returns the active world.
func (s *Session) World() *World { return s.world }

// Finished reports whether the win delay has run out.
func (s *Session) Finished() bool { return s.finished }

// Outcome returns the outcome of the current encounter.
func (s *Session) Outcome() components.Outcome { return s.outcome }

// Fade returns the outcome overlay opacity in [0, 1].
func (s *Session) Fade() float32 { return s.fadeNow }

// Update steps the world once and applies the tick's external effects.
func (s *Session) Update(in components.InputSnapshot, dt float64) StepResult {
	if s.fade != nil {
		var done bool
		s.fadeNow, done = s.fade.Update(float32(dt))
		if done {
			next := s.fadeTo
			s.fade, s.fadeTo = nil, nil
			next()
			return StepResult{Outcome: s.outcome}
		}
	}

	res := s.world.Step(in, dt)

	if res.Transition != "" && s.fade == nil {
		s.Transition(res.Transition)
		return res
	}

	switch {
	case res.Outcome.Won && !s.outcome.Won:
		s.outcome.Won = true
		s.logger.Info("boss defeated", "level", s.world.Level().Name, "elapsed", s.world.Elapsed())
		s.world.Message().Set(cfg.Message.WinText, cfg.Message.WinDelay)
		s.startFade(cfg.Message.WinDelay, func() { s.finished = true })
	case res.Outcome.Lost && !s.outcome.Lost && !s.outcome.Won:
		s.outcome.Lost = true
		s.logger.Info("player defeated", "level", s.world.Level().Name, "elapsed", s.world.Elapsed())
		s.world.Message().Set(cfg.Message.LoseText, cfg.Message.LoseDelay)
		s.startFade(cfg.Message.LoseDelay, s.Restart)
	}
	return res
}

// Transition loads target and swaps worlds. On failure the current level
// keeps running and the error is shown on the HUD.
func (s *Session) Transition(target string) {
	lvl, err := s.loadRelative(target)
	if err != nil {
		s.logger.Error("level transition failed", "target", target, "err", err)
		s.world.Message().Set(fmt.Sprintf(cfg.Message.FailTemplate, err), cfg.Message.Duration)
		return
	}
	s.enter(lvl)
}

// Restart reloads the current level from its source.
func (s *Session) Restart() {
	lvl, err := s.loader.Load(s.current)
	if err != nil {
		s.logger.Error("level reload failed", "level", s.current, "err", err)
		s.world.Message().Set(fmt.Sprintf(cfg.Message.FailTemplate, err), cfg.Message.Duration)
		return
	}
	s.enter(lvl)
}

// loadRelative tries target as given, then relative to the current level.
func (s *Session) loadRelative(target string) (*leveldata.Level, error) {
	lvl, err := s.loader.Load(target)
	if err == nil || s.current == "" || !leveldata.IsMissing(err) {
		return lvl, err
	}
	if rel := path.Join(path.Dir(s.current), target); rel != target {
		if lvl, relErr := s.loader.Load(rel); relErr == nil {
			return lvl, nil
		}
	}
	return nil, err
}

func (s *Session) enter(lvl *leveldata.Level) {
	s.world = NewWorld(lvl, s.seed)
	s.current = lvl.Path
	s.outcome = components.Outcome{}
	s.fade, s.fadeTo, s.fadeNow = nil, nil, 0

	s.world.Message().Set(fmt.Sprintf(cfg.Message.EnterTemplate, lvl.Name), cfg.Message.Duration)
	s.logger.Info("entered level", "name", lvl.Name, "path", lvl.Path,
		"tiles", len(lvl.Tiles), "entities", len(s.world.Level().Entities))
}

func (s *Session) startFade(seconds float64, then func()) {
	s.fade = gween.New(0, 1, float32(seconds), ease.Linear)
	s.fadeTo = then
}
