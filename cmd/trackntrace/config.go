package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML, after applying
the search path and the --difficulty preset.

Search order:
  --config <path>
  ~/.trackntrace/configs/trackntrace.yaml
  ./configs/trackntrace.yaml
  built-in defaults

Examples:
  trackntrace config > ~/.trackntrace/configs/trackntrace.yaml
  trackntrace config --difficulty hard
  trackntrace config --config ./my.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig loads the configuration named by the global flags.
func loadConfig() (config.TrackConfig, error) {
	cfg, err := config.LoadTrack(flagConfig)
	if err != nil {
		return cfg, err
	}

	switch preset := config.DifficultyPreset(flagDifficulty); preset {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyTrackPreset(&cfg, preset)
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q, using the configured level\n", flagDifficulty)
	}
	return cfg, nil
}
