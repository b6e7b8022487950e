package main

import (
	"fmt"
	"path"

	"github.com/automoto/adventure/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <level>...",
	Short: "Validate level files",
	Long: `Parse each level and report problems: missing fields, a missing or
duplicated player, duplicated bosses and door targets that do not resolve.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	r := resolver()
	failed := 0
	for _, levelPath := range args {
		problems, err := checkLevel(r, levelPath)
		if err != nil {
			log.Error("invalid level", "path", levelPath, "err", err)
			failed++
			continue
		}
		for _, p := range problems {
			log.Warn(p, "path", levelPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed to load", failed, len(args))
	}
	return nil
}

func checkLevel(r *leveldata.Resolver, levelPath string) ([]string, error) {
	lvl, err := r.Load(levelPath)
	if err != nil {
		return nil, err
	}

	counts := map[leveldata.EntityKind]int{}
	var problems []string
	for _, e := range lvl.Entities {
		counts[e.Kind]++
		if e.Kind != leveldata.EntityDoor {
			continue
		}
		target := e.Args.String("target", "")
		if target == "" {
			problems = append(problems, fmt.Sprintf("door at (%.0f, %.0f) has no target", e.X, e.Y))
			continue
		}
		if !targetResolves(r, lvl.Path, target) {
			problems = append(problems, fmt.Sprintf("door target %q does not resolve", target))
		}
	}

	switch n := counts[leveldata.EntityPlayer]; {
	case n == 0:
		problems = append(problems, "no player; the fallback spawn will be used")
	case n > 1:
		problems = append(problems, fmt.Sprintf("%d players; only the first is used", n))
	}
	if n := counts[leveldata.EntityBoss]; n > 1 {
		problems = append(problems, fmt.Sprintf("%d bosses; only the first is used", n))
	}

	log.Info("level ok", "path", lvl.Path, "name", lvl.Name,
		"size", fmt.Sprintf("%.0fx%.0f", lvl.Width, lvl.Height),
		"tiles", len(lvl.Tiles), "entities", len(lvl.Entities))
	return problems, nil
}

func targetResolves(r *leveldata.Resolver, from, target string) bool {
	if _, err := r.Load(target); err == nil {
		return true
	}
	_, err := r.Load(path.Join(path.Dir(from), target))
	return err == nil
}
