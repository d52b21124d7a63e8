package collision

import (
	"reflect"
	"strings"
	"testing"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
)

var grid = core.Bounds{LonMin: -15, LonMax: 13, LatMin: 46, LatMax: 62}

// recorder implements every collaborator and logs the calls in order.
type recorder struct {
	calls  []string
	health float64
	dashes int
	meals  int
	zooms  int
}

func (r *recorder) ChangeHealth(delta float64) {
	r.calls = append(r.calls, "health")
	r.health += delta
}

func (r *recorder) ZoomScreen() {
	r.calls = append(r.calls, "zoom")
	r.zooms++
}

func (r *recorder) Dash() {
	r.calls = append(r.calls, "dash")
	r.dashes++
}

func (r *recorder) LogFoodConsumption() {
	r.calls = append(r.calls, "badge")
	r.meals++
}

// trackedSet wraps a particle set and records removals.
type trackedSet struct {
	*particles.Set
	log *recorder
}

func (s trackedSet) Remove(index int) {
	s.log.calls = append(s.log.calls, "remove")
	s.Set.Remove(index)
}

func newSet(points ...core.Point) *particles.Set {
	set := particles.NewSet()
	for _, p := range points {
		set.Add(particles.Particle{Point: p, Kind: particles.KindFood})
	}
	return set
}

func TestRemover(t *testing.T) {
	set := newSet(core.Point{Lon: 1}, core.Point{Lon: 2}, core.Point{Lon: 3})
	var target Target = NewRemover(set)

	target.OnCollision(1)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", set.Len())
	}
	if set.At(1).Point.Lon != 3 {
		t.Errorf("particle 2 should be gone, At(1) = %v", set.At(1))
	}
}

func TestFoodPickup(t *testing.T) {
	rec := &recorder{}
	set := trackedSet{Set: newSet(core.Point{Lon: 1}, core.Point{Lon: 2}), log: rec}
	var target Target = NewFoodPickup(set, rec, rec, rec, rec)

	target.OnCollision(0)

	if set.Len() != 1 || set.At(0).Point.Lon != 2 {
		t.Errorf("particle 0 should be removed, set = %v", set.Particles())
	}
	if rec.health != FoodHealthDelta || FoodHealthDelta != 0.2 {
		t.Errorf("health delta = %v, expected 0.2", rec.health)
	}
	if rec.dashes != 1 || rec.meals != 1 || rec.zooms != 1 {
		t.Errorf("dashes=%d meals=%d zooms=%d, expected 1 each", rec.dashes, rec.meals, rec.zooms)
	}

	want := []string{"remove", "health", "zoom", "dash", "badge"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("effect order = %v, expected %v", rec.calls, want)
	}
}

func TestFoodPickupHealthOverride(t *testing.T) {
	rec := &recorder{}
	set := newSet(core.Point{})
	NewFoodPickup(set, rec, rec, rec, rec).WithHealthDelta(0.5).OnCollision(0)

	if rec.health != 0.5 {
		t.Errorf("health delta = %v, expected 0.5", rec.health)
	}
}

func TestHazard(t *testing.T) {
	rec := &recorder{}
	set := trackedSet{Set: newSet(core.Point{}), log: rec}

	NewHazard(set, rec, rec, 0.3).OnCollision(0)

	if set.Len() != 0 {
		t.Error("hazard particle should be removed")
	}
	if rec.health != -0.3 {
		t.Errorf("health = %v, expected -0.3", rec.health)
	}
	if rec.dashes != 0 || rec.meals != 0 {
		t.Error("hazard should neither dash nor count food")
	}
	want := []string{"remove", "health", "zoom"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("effect order = %v, expected %v", rec.calls, want)
	}
}

func TestTargetFunc(t *testing.T) {
	got := -1
	var target Target = TargetFunc(func(i int) { got = i })
	target.OnCollision(7)
	if got != 7 {
		t.Errorf("TargetFunc received %d, expected 7", got)
	}
}

func TestDetectDescendingOrder(t *testing.T) {
	pos := core.Point{Lon: 0, Lat: 53}
	set := particles.NewSet()
	set.Add(particles.Particle{Point: pos.Add(0.1, 0), Kind: particles.KindFood})
	set.Add(particles.Particle{Point: pos.Add(5, 5), Kind: particles.KindFood})
	set.Add(particles.Particle{Point: pos.Add(0, -0.1), Kind: particles.KindHazard})
	set.Add(particles.Particle{Point: pos, Kind: particles.KindFood})

	d := NewDetector(grid, 0.3)
	hits := d.Detect(pos, set)

	want := []Hit{
		{Index: 3, Kind: particles.KindFood},
		{Index: 2, Kind: particles.KindHazard},
		{Index: 0, Kind: particles.KindFood},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("Detect() = %v, expected %v", hits, want)
	}
}

func TestDetectNarrowPhase(t *testing.T) {
	pos := core.Point{Lon: 0, Lat: 53}
	set := particles.NewSet()
	// Inside the broad-phase box on both axes but beyond the radius.
	set.Add(particles.Particle{Point: pos.Add(0.28, 0.28)})

	d := NewDetector(grid, 0.3)
	if hits := d.Detect(pos, set); len(hits) != 0 {
		t.Errorf("expected no hits beyond radius, got %v", hits)
	}
}

func TestDetectRebuildsEachCall(t *testing.T) {
	pos := core.Point{Lon: 2, Lat: 50}
	set := newSet(pos, pos.Add(3, 0))
	d := NewDetector(grid, 0.25)

	if hits := d.Detect(pos, set); len(hits) != 1 || hits[0].Index != 0 {
		t.Fatalf("first Detect = %v", hits)
	}

	set.Remove(0)
	if hits := d.Detect(pos, set); len(hits) != 0 {
		t.Errorf("removed particle still detected: %v", hits)
	}

	moved := pos.Add(3, 0)
	if hits := d.Detect(moved, set); len(hits) != 1 || hits[0].Index != 0 {
		t.Errorf("Detect after move = %v, expected the shifted index 0", hits)
	}
}

func TestDetectAtGridCorner(t *testing.T) {
	corner := core.Point{Lon: grid.LonMin, Lat: grid.LatMin}
	set := newSet(corner)
	d := NewDetector(grid, 0.25)

	if hits := d.Detect(corner, set); len(hits) != 1 {
		t.Errorf("expected a hit at the grid corner, got %v", hits)
	}
}

func TestDispatchAllHits(t *testing.T) {
	pos := core.Point{Lon: 0, Lat: 53}
	set := particles.NewSet()
	for i := 0; i < 6; i++ {
		p := pos.Add(10, 0)
		if i%2 == 0 {
			p = pos.Add(float64(i)*0.01, 0)
		}
		set.Add(particles.Particle{Point: p, Kind: particles.KindFood})
	}

	rec := &recorder{}
	targets := map[particles.Kind]Target{
		particles.KindFood: NewFoodPickup(set, rec, rec, rec, rec),
	}

	d := NewDetector(grid, 0.2)
	n := Dispatch(d.Detect(pos, set), targets)

	if n != 3 {
		t.Errorf("dispatched %d, expected 3", n)
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 survivors", set.Len())
	}
	for _, p := range set.Particles() {
		if p.Point.Lon != 10 {
			t.Errorf("survivor at %v, expected only far particles", p.Point)
		}
	}
	if rec.meals != 3 {
		t.Errorf("meals = %d, expected 3", rec.meals)
	}
}

func TestDispatchSkipsUnknownKinds(t *testing.T) {
	hits := []Hit{{Index: 0, Kind: particles.KindHazard}}
	n := Dispatch(hits, map[particles.Kind]Target{})
	if n != 0 {
		t.Errorf("dispatched %d, expected 0", n)
	}
}

func TestDispatchStaleIndexPanics(t *testing.T) {
	set := newSet(core.Point{})
	targets := map[particles.Kind]Target{particles.KindFood: NewRemover(set)}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("dispatching a stale index should panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
			t.Errorf("unexpected panic %v", r)
		}
	}()
	Dispatch([]Hit{{Index: 4, Kind: particles.KindFood}}, targets)
}
