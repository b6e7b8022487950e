package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/adventure/components"
	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/core"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagScript   string
	flagTicks    int
	flagRealtime bool
)

var runCmd = &cobra.Command{
	Use:   "run [level]",
	Short: "Simulate a level without a window",
	Long: `Run the simulation headlessly with scripted input and print a summary.

A script is a comma separated list of segments. Each segment joins actions
with '+' and may end in ':<ticks>' (default 1). Actions: left, right,
crouch, jump, shoot, interact, idle. Jump and shoot press on the first tick
of their segment; the others are held for all of it.

Examples:
  adventure run --script "right:120,jump,right+shoot:60"
  adventure run levels/arena.json --ticks 3600 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = script length, at least one second)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks in real time")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	script, err := core.ParseScript(flagScript)
	if err != nil {
		return err
	}
	session, err := core.NewSession(resolver(), levelArg(args), flagSeed)
	if err != nil {
		return err
	}

	ticks := flagTicks
	if ticks <= 0 {
		ticks = max(int(script.Len()), cfg.C.TPS)
	}

	loop := core.NewGameLoop(session, script, cfg.C.TPS)
	var spawned, removed int
	loop.OnTick = func(tick uint64, res core.StepResult) {
		spawned += res.Spawned
		removed += res.Removed
		if res.Transition != "" {
			log.Info("door", "tick", tick, "target", res.Transition)
		}
	}

	if flagRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, time.Duration(ticks)*time.Second/time.Duration(cfg.C.TPS))
		defer cancel()
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		loop.RunFor(ticks)
	}

	world := session.World()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:     %s\n", world.Level().Name)
	fmt.Fprintf(out, "ticks:     %d (%.2fs simulated)\n", loop.Ticks(), world.Elapsed())
	fmt.Fprintf(out, "spawned:   %d\n", spawned)
	fmt.Fprintf(out, "removed:   %d\n", removed)
	fmt.Fprintf(out, "entities:  %d\n", len(world.Level().Entities))
	if p, ok := world.Player(); ok {
		hp := components.Health.Get(p)
		fmt.Fprintf(out, "player:    %d/%d hp\n", hp.Current, hp.Max)
	} else {
		fmt.Fprintf(out, "player:    dead\n")
	}
	outcome := session.Outcome()
	fmt.Fprintf(out, "outcome:   won=%t lost=%t finished=%t\n", outcome.Won, outcome.Lost, session.Finished())
	return nil
}
