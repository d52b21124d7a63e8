package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultTrackConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		name  string
		ticks int
		want  float64
	}{
		{"start", 0, 0},
		{"halfway", cfg.Progression.MaxAt / 2, 0.5},
		{"max", cfg.Progression.MaxAt, 1},
		{"past max", cfg.Progression.MaxAt * 3, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(0, tc.ticks); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.want)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultTrackConfig().Difficulty
	d := NewDifficultyManager(cfg)
	d.SetEnabled(false)
	d.SetInitialLevel(0.4)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(0, cfg.Progression.MaxAt); got != 0.4 {
		t.Errorf("Level() = %v, expected the initial level 0.4", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	cfg := DefaultTrackConfig()
	d := NewDifficultyManager(cfg.Difficulty)
	maxAt := cfg.Difficulty.Progression.MaxAt

	if got := d.DrainFactor(0, 0); got != 1 {
		t.Errorf("DrainFactor at start = %v, expected 1", got)
	}
	if got := d.DrainFactor(0, maxAt); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("DrainFactor at max = %v, expected 2.5", got)
	}
	if got := d.SpawnInterval(cfg.Spawn.Interval, 0, maxAt); got != cfg.Spawn.Interval-20 {
		t.Errorf("SpawnInterval at max = %d", got)
	}
	if got := d.SpawnInterval(8, 0, maxAt); got != 5 {
		t.Errorf("SpawnInterval should floor at 5, got %d", got)
	}
	if got := d.HazardChance(0.85, 0, maxAt); got != 0.9 {
		t.Errorf("HazardChance should cap at 0.9, got %v", got)
	}
}
