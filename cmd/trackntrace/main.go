// trackntrace is a terminal game about following drifting particles over
// the North Sea: fly the bird, eat the food, dodge the hazards.
//
// Usage:
//
//	trackntrace play           - Play in this terminal
//	trackntrace serve          - Start SSH server for remote play
//	trackntrace scores         - Show high scores
//	trackntrace badges         - Show earned badges
//	trackntrace config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.trackntrace/scores.db)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trackntrace",
	Short: "Track & Trace - chase drifting particles across the North Sea",
	Long: `Track & Trace is a terminal game. You fly a bird over a longitude/latitude
grid, eat drifting food to stay alive, and avoid hazards. Eating gives you
a burst of speed; hunger drains your health over time.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  badges   - View earned badges
  config   - Print the effective configuration

Examples:
  trackntrace play
  trackntrace play --difficulty hard
  trackntrace serve --ssh :2222
  trackntrace scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trackntrace/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the root logger writing to w at the --log-level level.
func newLogger(w *os.File, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}
