package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall stats.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(flappy.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Flappy Bird")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-14s  %s\n", "Rank", "Score", "Time", "Ended by", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-14s  %s\n", "----", "-----", "----", "--------", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-6d  %-8s  %-14s  %s\n",
			i+1, e.Score, tui.FormatTicks(e.Ticks), e.Reason, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if best, err := store.HighScore(flappy.ID); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	if stats, err := store.Stats(flappy.ID); err == nil && stats.Rounds > 0 {
		fmt.Fprintf(out, "Rounds: %d  Average: %.1f  Time played: %s\n",
			stats.Rounds, stats.AvgScore, tui.FormatTicks(int(stats.TotalTicks)))
	}
	return nil
}
