package health

import (
	"math"
	"testing"
)

func TestChangeHealthClamps(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		delta    float64
		expected float64
		depleted bool
	}{
		{"heal below max", 0.5, 0.2, 0.7, false},
		{"heal past max", 0.9, 0.2, 1, false},
		{"damage", 0.5, -0.2, 0.3, false},
		{"damage past zero", 0.1, -0.3, 0, true},
		{"exactly zero", 0.25, -0.25, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := New(0)
			h.value = tc.start
			h.ChangeHealth(tc.delta)

			if math.Abs(h.Value()-tc.expected) > 1e-12 {
				t.Errorf("Value() = %v, expected %v", h.Value(), tc.expected)
			}
			if h.Depleted() != tc.depleted {
				t.Errorf("Depleted() = %v, expected %v", h.Depleted(), tc.depleted)
			}
		})
	}
}

func TestDrainDepletes(t *testing.T) {
	h := New(0.1)
	ticks := 0
	for !h.Depleted() && ticks < 100 {
		h.Drain(1)
		ticks++
	}
	if ticks < 10 || ticks > 11 {
		t.Errorf("depleted after %d ticks, expected 10 or 11", ticks)
	}

	h.ChangeHealth(0.5)
	if h.Value() != 0 {
		t.Error("depleted health should ignore healing until Reset")
	}

	h.Reset()
	if h.Value() != 1 || h.Depleted() {
		t.Errorf("Reset: value=%v depleted=%v", h.Value(), h.Depleted())
	}
}

func TestDrainFactor(t *testing.T) {
	h := New(0.01)
	h.Drain(2)
	if math.Abs(h.Value()-0.98) > 1e-12 {
		t.Errorf("Value() = %v, expected 0.98", h.Value())
	}
}
