// Package particles holds the tracked set of collidable points, and the
// spawning and drift that keep it populated.
package particles

import (
	"fmt"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

// Kind distinguishes what a particle does to the character.
type Kind int

const (
	KindFood Kind = iota
	KindHazard
)

// String returns the name of the kind, also used as a collision tag.
func (k Kind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Particle is one tracked point.
type Particle struct {
	Point core.Point
	Kind  Kind
}

// Set is an index-addressed collection of particles.
// Removing keeps the relative order of the remaining particles.
type Set struct {
	items []Particle
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a particle and returns its index.
func (s *Set) Add(p Particle) int {
	s.items = append(s.items, p)
	return len(s.items) - 1
}

// At returns the particle at index. It panics if index is out of range.
func (s *Set) At(index int) Particle {
	s.checkIndex(index)
	return s.items[index]
}

// Remove deletes the particle at index. Indices above it shift down by one.
// It panics if index is out of range: the caller's view of the set is stale.
func (s *Set) Remove(index int) {
	s.checkIndex(index)
	s.items = append(s.items[:index], s.items[index+1:]...)
}

// Len returns the number of tracked particles.
func (s *Set) Len() int {
	return len(s.items)
}

// Count returns the number of particles of the given kind.
func (s *Set) Count(k Kind) int {
	n := 0
	for _, p := range s.items {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// Clear removes every particle.
func (s *Set) Clear() {
	s.items = s.items[:0]
}

// Particles returns a copy of the tracked particles.
func (s *Set) Particles() []Particle {
	out := make([]Particle, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) checkIndex(index int) {
	if index < 0 || index >= len(s.items) {
		panic(fmt.Sprintf("particles: index %d out of range [0, %d)", index, len(s.items)))
	}
}
