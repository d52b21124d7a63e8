package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/badges"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/games/trackntrace"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/storage"
)

var flagBadgePlayer string

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned badges",
	Long: `List the badges earned for eating food, across all players or for one.

Badges:
  first-bite   - 1 meal in a run
  forager      - 10 meals in a run
  hungry-gull  - 25 meals in a run
  glutton      - 50 meals in a run
  sea-monster  - 100 meals in a run

Examples:
  trackntrace badges
  trackntrace badges --player ada`,
	Args: cobra.NoArgs,
	RunE: runBadges,
}

func init() {
	badgesCmd.Flags().StringVar(&flagBadgePlayer, "player", "", "Only show this player's badges")
}

func runBadges(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	entries, err := store.Badges(trackntrace.ID, flagBadgePlayer)
	if err != nil {
		return fmt.Errorf("retrieving badges: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No badges earned yet. Eat something!")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-14s  %s\n", "Player", "Badge", "Earned")
	fmt.Fprintf(out, "  %-16s  %-14s  %s\n", "------", "-----", "------")

	for _, e := range entries {
		name := e.BadgeID
		if m, ok := badges.Lookup(e.BadgeID); ok {
			name = m.Name
		}
		fmt.Fprintf(out, "  %-16s  %-14s  %s\n", truncate(e.Player, 16), name, e.EarnedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
