package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/games/trackntrace"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/platform/tui"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/registry"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A     - Turn left
  Right/D    - Turn right
  Up/W       - Fly (hold to speed up)
  Down/S     - Brake
  P/Esc      - Pause
  R          - Fly again (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, harsher hazards
  fixed  - No progression, stays at config's initial level

Examples:
  trackntrace play
  trackntrace play --difficulty easy
  trackntrace play --seed 42 --player ada
  trackntrace play --config ./my-track.yaml --log-file /tmp/trackntrace.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name to save scores and badges under")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail on a broken config before taking over the terminal
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	trackntrace.SetConfigPath(flagConfig)
	trackntrace.SetDifficultyPreset(flagDifficulty)

	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		if logger, err = newLogger(f, "trackntrace"); err != nil {
			return err
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := registry.Create(trackntrace.ID)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, rc, tui.Options{
		Player:    flagPlayer,
		Logger:    logger,
		HoldTicks: cfg.Controls.HoldTicks,
	})
}

// defaultPlayer returns the login name, or "player" when unknown.
func defaultPlayer() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}
