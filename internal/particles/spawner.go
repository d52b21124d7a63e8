package particles

import (
	"math/rand"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

// spawnAttempts bounds the rerolls when a spawn lands on the character.
const spawnAttempts = 8

// SpawnConfig controls how particles enter the grid.
type SpawnConfig struct {
	Initial      int     // Food particles placed on reset
	Interval     int     // Ticks between spawns
	MaxParticles int     // Spawning pauses while the set holds this many
	HazardChance float64 // Probability a spawn is a hazard
	Margin       float64 // Distance kept from the grid edge
	Clearance    float64 // Distance kept from the character
}

// Spawner places particles at seeded random positions.
type Spawner struct {
	cfg    SpawnConfig
	bounds core.Bounds
	rng    *rand.Rand
	ticker int
}

// NewSpawner creates a spawner for the grid.
func NewSpawner(cfg SpawnConfig, bounds core.Bounds, seed int64) *Spawner {
	if cfg.Interval < 1 {
		cfg.Interval = 1
	}
	return &Spawner{
		cfg:    cfg,
		bounds: bounds,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the spawner and restarts its interval.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.ticker = 0
}

// Tune changes the spawn interval and hazard chance, e.g. as difficulty rises.
func (sp *Spawner) Tune(interval int, hazardChance float64) {
	sp.cfg.Interval = core.Max(interval, 1)
	sp.cfg.HazardChance = hazardChance
}

// Populate clears the set and places the initial food.
func (sp *Spawner) Populate(set *Set, avoid core.Point) {
	set.Clear()
	for i := 0; i < sp.cfg.Initial && set.Len() < sp.cfg.MaxParticles; i++ {
		set.Add(Particle{Point: sp.randomPoint(avoid), Kind: KindFood})
	}
}

// Update counts one tick and spawns a particle when the interval elapses.
// Reports whether a particle was added.
func (sp *Spawner) Update(set *Set, avoid core.Point) bool {
	sp.ticker++
	if sp.ticker < sp.cfg.Interval {
		return false
	}
	sp.ticker = 0

	if set.Len() >= sp.cfg.MaxParticles {
		return false
	}

	kind := KindFood
	if sp.rng.Float64() < sp.cfg.HazardChance {
		kind = KindHazard
	}
	set.Add(Particle{Point: sp.randomPoint(avoid), Kind: kind})
	return true
}

func (sp *Spawner) randomPoint(avoid core.Point) core.Point {
	mLon, mLat := sp.cfg.Margin, sp.cfg.Margin
	w := sp.bounds.Width() - 2*mLon
	h := sp.bounds.Height() - 2*mLat
	if w < 0 {
		w, mLon = 0, sp.bounds.Width()/2
	}
	if h < 0 {
		h, mLat = 0, sp.bounds.Height()/2
	}

	var p core.Point
	for i := 0; i < spawnAttempts; i++ {
		p = core.Point{
			Lon: sp.bounds.LonMin + mLon + sp.rng.Float64()*w,
			Lat: sp.bounds.LatMin + mLat + sp.rng.Float64()*h,
		}
		if p.Dist(avoid) >= sp.cfg.Clearance {
			break
		}
	}
	return sp.bounds.Clamp(p)
}
