package core

import (
	"context"
	"time"

	"github.com/automoto/adventure/components"
	"github.com/charmbracelet/log"
)

// InputSource yields the input for a given tick.
type InputSource interface {
	Next(tick uint64) components.InputSnapshot
}

// InputFunc adapts a function to InputSource.
type InputFunc func(tick uint64) components.InputSnapshot

func (f InputFunc) Next(tick uint64) components.InputSnapshot { return f(tick) }

// GameLoop drives a session headlessly at a fixed tick rate.
type GameLoop struct {
	session  *Session
	input    InputSource
	tickRate int
	tick     uint64
	logger   *log.Logger

	// OnTick, when set, observes every step.
	OnTick func(tick uint64, res StepResult)
}

func NewGameLoop(session *Session, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		session:  session,
		input:    input,
		tickRate: tickRate,
		logger:   log.Default().WithPrefix("loop"),
	}
}

// Ticks returns how many steps have run.
func (g *GameLoop) Ticks() uint64 { return g.tick }

func (g *GameLoop) dt() float64 { return 1 / float64(g.tickRate) }

// Run steps in real time until ctx is cancelled or the session finishes.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", "tickrate", g.tickRate)
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", "ticks", g.tick)
			return ctx.Err()
		case <-ticker.C:
			g.step()
			if g.session.Finished() {
				g.logger.Info("session finished", "ticks", g.tick)
				return nil
			}
		}
	}
}

// RunFor steps n ticks as fast as possible, stopping early when the
// session finishes. It returns the number of ticks run.
func (g *GameLoop) RunFor(n int) int {
	for i := 0; i < n; i++ {
		g.step()
		if g.session.Finished() {
			return i + 1
		}
	}
	return n
}

func (g *GameLoop) step() {
	g.tick++
	var in components.InputSnapshot
	if g.input != nil {
		in = g.input.Next(g.tick)
	}
	res := g.session.Update(in, g.dt())
	if res.SignText != "" {
		g.logger.Info("sign", "text", res.SignText)
	}
	if g.OnTick != nil {
		g.OnTick(g.tick, res)
	}
}
