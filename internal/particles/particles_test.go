package particles

import (
	"testing"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

var grid = core.Bounds{LonMin: -15, LonMax: 13, LatMin: 46, LatMax: 62}

func TestSetAddRemove(t *testing.T) {
	s := NewSet()
	for i := 0; i < 4; i++ {
		s.Add(Particle{Point: core.Point{Lon: float64(i), Lat: 50}})
	}

	s.Remove(1)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	want := []float64{0, 2, 3}
	for i, lon := range want {
		if s.At(i).Point.Lon != lon {
			t.Errorf("At(%d).Lon = %v, expected %v", i, s.At(i).Point.Lon, lon)
		}
	}
}

func TestSetRemoveOutOfRangePanics(t *testing.T) {
	s := NewSet()
	s.Add(Particle{})

	tests := []int{-1, 1, 5}
	for _, idx := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Remove(%d) should panic", idx)
				}
			}()
			s.Remove(idx)
		}()
	}
}

func TestSetCountAndClear(t *testing.T) {
	s := NewSet()
	s.Add(Particle{Kind: KindFood})
	s.Add(Particle{Kind: KindHazard})
	s.Add(Particle{Kind: KindFood})

	if s.Count(KindFood) != 2 || s.Count(KindHazard) != 1 {
		t.Errorf("Count: food=%d hazard=%d", s.Count(KindFood), s.Count(KindHazard))
	}

	snapshot := s.Particles()
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
	if len(snapshot) != 3 {
		t.Error("Particles() should return an independent copy")
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := SpawnConfig{Initial: 5, Interval: 3, MaxParticles: 20, HazardChance: 0.3, Margin: 0.5, Clearance: 1}
	avoid := core.Point{Lon: 0, Lat: 53}

	run := func() []Particle {
		sp := NewSpawner(cfg, grid, 42)
		set := NewSet()
		sp.Populate(set, avoid)
		for i := 0; i < 30; i++ {
			sp.Update(set, avoid)
		}
		return set.Particles()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("particle %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSpawnerInterval(t *testing.T) {
	cfg := SpawnConfig{Interval: 5, MaxParticles: 2}
	sp := NewSpawner(cfg, grid, 1)
	set := NewSet()

	spawned := 0
	for i := 0; i < 20; i++ {
		if sp.Update(set, core.Point{}) {
			spawned++
		}
	}

	if spawned != 2 {
		t.Errorf("spawned %d, expected cap of 2", spawned)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", set.Len())
	}
}

func TestSpawnerTune(t *testing.T) {
	cfg := SpawnConfig{Interval: 10, MaxParticles: 50}
	sp := NewSpawner(cfg, grid, 3)
	sp.Tune(2, 1)
	set := NewSet()

	for i := 0; i < 10; i++ {
		sp.Update(set, core.Point{})
	}

	if set.Len() != 5 {
		t.Errorf("Len() = %d, expected 5 spawns at interval 2", set.Len())
	}
	if set.Count(KindHazard) != set.Len() {
		t.Error("hazard chance 1 should spawn only hazards")
	}
}

func TestSpawnerStaysInsideMargin(t *testing.T) {
	cfg := SpawnConfig{Initial: 200, MaxParticles: 200, Margin: 1}
	sp := NewSpawner(cfg, grid, 7)
	set := NewSet()
	sp.Populate(set, core.Point{})

	inner := core.Bounds{LonMin: grid.LonMin + 1, LonMax: grid.LonMax - 1, LatMin: grid.LatMin + 1, LatMax: grid.LatMax - 1}
	for i, p := range set.Particles() {
		if !inner.Contains(p.Point) {
			t.Errorf("particle %d at %v outside margin", i, p.Point)
		}
		if p.Kind != KindFood {
			t.Errorf("initial particle %d is %v, expected food", i, p.Kind)
		}
	}
}

func TestCurrentAdvectBeaches(t *testing.T) {
	set := NewSet()
	set.Add(Particle{Point: core.Point{Lon: 12.95, Lat: 50}})
	set.Add(Particle{Point: core.Point{Lon: 0, Lat: 50}})

	c := Current{U: 0.1}
	beached := c.Advect(set, grid)

	if beached != 1 {
		t.Errorf("beached = %d, expected 1", beached)
	}
	if set.Len() != 1 || set.At(0).Point.Lon != 0.1 {
		t.Errorf("remaining particle = %v", set.Particles())
	}
}

func TestCurrentGyre(t *testing.T) {
	c := Current{Gyre: 0.01}
	center := grid.Center()

	u, v := c.Velocity(center, grid)
	if u != 0 || v != 0 {
		t.Errorf("gyre at center should be still, got (%v, %v)", u, v)
	}

	// East of center the gyre flows north.
	_, v = c.Velocity(center.Add(2, 0), grid)
	if v <= 0 {
		t.Errorf("expected northward flow east of center, got v=%v", v)
	}
}

func TestKindString(t *testing.T) {
	if KindFood.String() != "food" || KindHazard.String() != "hazard" {
		t.Error("unexpected kind names")
	}
}
