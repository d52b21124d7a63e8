package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/games/trackntrace"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Track & Trace SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own flight; the SSH user name is the player
name. Scores and badges are stored per-server (all users share the same
leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trackntrace/host_key

Examples:
  trackntrace serve                           # Listen on :23234 with auto-generated key
  trackntrace serve --ssh :2222               # Listen on port 2222
  trackntrace serve --host-key ./my_host_key  # Use specific host key
  trackntrace serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	trackCfg, err := loadConfig()
	if err != nil {
		return err
	}
	trackntrace.SetConfigPath(flagConfig)
	trackntrace.SetDifficultyPreset(flagDifficulty)

	logger, err := newLogger(os.Stderr, "trackntrace-ssh")
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      trackntrace.ID,
		TickRate:    flagFPS,
		HoldTicks:   trackCfg.Controls.HoldTicks,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Track & Trace SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
