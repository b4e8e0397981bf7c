// flappy is a Flappy Bird clone for the terminal or a desktop window.
//
// Usage:
//
//	flappy                   - Play with the configured frontend
//	flappy play              - Same as above, with frontend flags
//	flappy scores            - Print the top 10 scores
//	flappy board             - Browse the score history interactively
//	flappy list              - List registered games
//
// Global flags:
//
//	--config <path>     - Settings YAML (default: ~/.flappy/config.yaml)
//	--seed <value>      - RNG seed for reproducible gap positions
//	--db <path>         - Score database (default: ~/.flappy/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal or a window",
	Long: `Guide the bird through the gaps between pipes. Each pipe you clear
scores a point; touching a pipe or leaving the screen ends the round.

Available commands:
  play     - Play a round (the default when no command is given)
  scores   - Print the top scores
  board    - Interactive score history
  list     - Registered games

Examples:
  flappy
  flappy play --frontend window --assets ./assets
  flappy --seed 42
  flappy scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(listCmd)
}
