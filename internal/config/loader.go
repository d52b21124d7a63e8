package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDir    = ".trackntrace"
	trackFile = "trackntrace.yaml"
)

// LoadTrack loads Track & Trace configuration. Keys missing from the file
// keep their default values.
// Search order: customPath -> ~/.trackntrace/configs/trackntrace.yaml -> ./configs/trackntrace.yaml -> embedded default
func LoadTrack(customPath string) (TrackConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTrackConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseTrack(data)
		if err != nil {
			return DefaultTrackConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return DefaultTrackConfig(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(trackFile), filepath.Join("configs", trackFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseTrack(data); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseTrack(defaultTrackYAML)
	if err != nil || Validate(cfg) != nil {
		return DefaultTrackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTrack decodes YAML over the defaults.
func parseTrack(data []byte) (TrackConfig, error) {
	cfg := DefaultTrackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg TrackConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting that would break the game.
func Validate(cfg TrackConfig) error {
	var errs []error
	if cfg.Grid.LonMin >= cfg.Grid.LonMax {
		errs = append(errs, fmt.Errorf("grid: lon_min %v must be below lon_max %v", cfg.Grid.LonMin, cfg.Grid.LonMax))
	}
	if cfg.Grid.LatMin >= cfg.Grid.LatMax {
		errs = append(errs, fmt.Errorf("grid: lat_min %v must be below lat_max %v", cfg.Grid.LatMin, cfg.Grid.LatMax))
	}
	if !cfg.Bounds().Contains(cfg.Start()) {
		errs = append(errs, fmt.Errorf("motion: start (%v, %v) is outside the grid", cfg.Motion.StartLon, cfg.Motion.StartLat))
	}
	if cfg.Dash.Duration <= 0 {
		errs = append(errs, errors.New("dash: duration must be positive"))
	}
	if cfg.Spawn.Interval <= 0 {
		errs = append(errs, errors.New("spawn: interval must be positive"))
	}
	if cfg.Spawn.HazardChance < 0 || cfg.Spawn.HazardChance > 1 {
		errs = append(errs, errors.New("spawn: hazard_chance must be within [0, 1]"))
	}
	if cfg.Pickups.Radius <= 0 {
		errs = append(errs, errors.New("pickups: radius must be positive"))
	}
	if cfg.Camera.ViewLat <= 0 || cfg.Camera.ZoomFactor <= 0 {
		errs = append(errs, errors.New("camera: view_lat and zoom_factor must be positive"))
	}
	if cfg.Camera.ZoomTicks <= 0 {
		errs = append(errs, errors.New("camera: zoom_ticks must be positive"))
	}
	if cfg.Controls.HoldTicks <= 0 {
		errs = append(errs, errors.New("controls: hold_ticks must be positive"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// ApplyTrackPreset modifies the config based on a difficulty preset.
func ApplyTrackPreset(cfg *TrackConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Health.HazardDamage = 0.15
		cfg.Spawn.HazardChance = 0.1
	case DifficultyHard:
		cfg.Health.HazardDamage = 0.35
		cfg.Spawn.HazardChance = 0.3
	}
}
