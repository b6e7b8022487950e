// adventure is a tile-based platformer.
//
// Usage:
//
//	adventure play [level]     - Open the game window
//	adventure run [level]      - Simulate headlessly with scripted input
//	adventure check <level>... - Validate level files
//
// Global flags:
//
//	--config <path>   - YAML overlay for the tuning defaults
//	--levels <dir>    - Directory searched for levels before the builtin ones
//	--seed <value>    - RNG seed (0 = random based on time)
//	--tickrate <rate> - Simulation ticks per second (default: 60)
package main

import (
	"fmt"
	"os"
	"time"

	cfg "github.com/automoto/adventure/config"
	"github.com/automoto/adventure/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagSeed     int64
	flagTickRate int
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Adventure - a tile-based platformer",
	Long: `Adventure is a small platformer: run, jump and shoot through tile
levels, walk through doors and defeat the boss.

Examples:
  adventure play
  adventure play levels/arena.json
  adventure run --script "right:120,jump,right+shoot:60"
  adventure check ./mylevels/*.json`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config overlay")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", ".", "Directory searched for levels before the builtin ones")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tickrate", 0, "Simulation ticks per second (0 = config value)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetReportTimestamp(true)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	path, err := cfg.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Debug("config loaded", "path", path)
	}
	if flagTickRate > 0 {
		cfg.C.TPS = flagTickRate
	}
	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	return nil
}

func resolver() *leveldata.Resolver {
	return leveldata.NewResolver(os.DirFS(flagLevels))
}

func levelArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
