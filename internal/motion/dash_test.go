package motion

import "testing"

func TestDashCountdown(t *testing.T) {
	d := NewDash(5, 0.1)
	d.Trigger()

	if !d.Active() || d.Remaining() != 5 {
		t.Fatalf("after Trigger: active=%v remaining=%d", d.Active(), d.Remaining())
	}

	deactivations := 0
	prev := d.Remaining()
	for i := 0; i < 10; i++ {
		wasActive := d.Active()
		d.DecayStep()

		if wasActive && d.Remaining() != prev-1 {
			t.Fatalf("step %d: remaining %d, expected %d", i, d.Remaining(), prev-1)
		}
		if wasActive && !d.Active() {
			deactivations++
		}
		if d.Remaining() == 0 && d.Active() {
			t.Fatalf("step %d: remaining 0 but still active", i)
		}
		if d.Active() && d.Remaining() <= 0 {
			t.Fatalf("step %d: active with remaining %d", i, d.Remaining())
		}
		prev = d.Remaining()
	}

	if deactivations != 1 {
		t.Errorf("dash deactivated %d times, expected exactly once", deactivations)
	}
	if d.Active() {
		t.Error("dash should not re-activate without Trigger")
	}
}

func TestDashVisual(t *testing.T) {
	d := NewDash(3, 0.1)

	if v := d.DecayStep(); v != VisualNormal {
		t.Errorf("inactive dash visual = %v, expected normal", v)
	}

	d.Trigger()
	want := []Visual{VisualDashing, VisualDashing, VisualNormal, VisualNormal}
	for i, w := range want {
		if v := d.DecayStep(); v != w {
			t.Errorf("step %d: visual = %v, expected %v", i, v, w)
		}
	}
}

func TestDashVelocityBonusLinear(t *testing.T) {
	const bonus = 0.08
	d := NewDash(4, bonus)

	if d.VelocityBonus() != 0 {
		t.Errorf("idle bonus = %v, expected 0", d.VelocityBonus())
	}

	d.Trigger()
	if d.VelocityBonus() != bonus {
		t.Errorf("bonus at trigger = %v, expected %v", d.VelocityBonus(), bonus)
	}

	expected := []float64{bonus * 3 / 4, bonus * 2 / 4, bonus * 1 / 4, 0}
	for i, e := range expected {
		d.DecayStep()
		if !almostEqual(d.VelocityBonus(), e) {
			t.Errorf("step %d: bonus = %v, expected %v", i, d.VelocityBonus(), e)
		}
	}
	if d.VelocityBonus() != 0 {
		t.Errorf("bonus after dash = %v, expected exactly 0", d.VelocityBonus())
	}
}

func TestDashRetrigger(t *testing.T) {
	d := NewDash(10, 0.1)
	d.Trigger()
	for i := 0; i < 6; i++ {
		d.DecayStep()
	}

	d.Trigger()
	if d.Remaining() != 10 {
		t.Errorf("retrigger: remaining = %d, expected reset to 10", d.Remaining())
	}
	d.Trigger()
	if d.Remaining() != 10 {
		t.Errorf("double trigger should not stack, remaining = %d", d.Remaining())
	}
}

func TestDashReset(t *testing.T) {
	d := NewDash(10, 0.1)
	d.Trigger()
	d.Reset()

	if d.Active() || d.Remaining() != 0 || d.VelocityBonus() != 0 {
		t.Errorf("Reset left active=%v remaining=%d", d.Active(), d.Remaining())
	}
}

func TestNewDashMinimumDuration(t *testing.T) {
	d := NewDash(0, 0.1)
	if d.Duration() != 1 {
		t.Errorf("Duration = %d, expected 1", d.Duration())
	}
	d.Trigger()
	if d.VelocityBonus() != 0.1 {
		t.Errorf("bonus = %v, expected 0.1", d.VelocityBonus())
	}
}
