package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/games/trackntrace"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/registry"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  trackntrace scores
  trackntrace scores --limit 25
  trackntrace scores --db ./server-scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(trackntrace.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(trackntrace.ID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'trackntrace play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %s\n", i+1, truncate(entry.Player, 16), entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(trackntrace.ID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Flights: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if !stats.LastPlayed.IsZero() {
			fmt.Fprintf(out, "Last flight: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
