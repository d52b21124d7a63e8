package collision

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
)

// Space resolution: resolv works on integer cells, the grid on degrees.
const (
	unitsPerDegree = 8.0
	spaceCellSize  = 1
	characterTag   = "character"
)

// Source is the read side of the tracked particle set.
type Source interface {
	Len() int
	At(index int) particles.Particle
}

// Hit is one particle the character overlaps.
type Hit struct {
	Index int
	Kind  particles.Kind
}

// Detector finds the particles within Radius of the character. It keeps a
// resolv space covering the grid and rebuilds the particle objects on each
// call, since indices shift as particles are removed.
type Detector struct {
	bounds    core.Bounds
	radius    float64
	space     *resolv.Space
	character *resolv.Object
	objects   []*resolv.Object
}

// NewDetector creates a detector for the grid. Radius is in degrees.
func NewDetector(bounds core.Bounds, radius float64) *Detector {
	w := int(math.Ceil(bounds.Width()*unitsPerDegree)) + 1
	h := int(math.Ceil(bounds.Height()*unitsPerDegree)) + 1
	d := &Detector{
		bounds: bounds,
		radius: radius,
		space:  resolv.NewSpace(w, h, spaceCellSize, spaceCellSize),
	}

	size := d.size()
	d.character = resolv.NewObject(0, 0, size, size, characterTag)
	d.character.SetShape(resolv.NewRectangle(0, 0, size, size))
	d.space.Add(d.character)
	return d
}

// Radius returns the overlap distance in degrees.
func (d *Detector) Radius() float64 {
	return d.radius
}

// Detect returns the particles overlapping a character at pos, ordered by
// descending index. Removing them one at a time in that order leaves the
// indices of the hits still pending unchanged.
func (d *Detector) Detect(pos core.Point, src Source) []Hit {
	if len(d.objects) > 0 {
		d.space.Remove(d.objects...)
		d.objects = d.objects[:0]
	}

	size := d.size()
	for i := 0; i < src.Len(); i++ {
		p := src.At(i)
		x, y := d.toSpace(p.Point)
		obj := resolv.NewObject(x, y, size, size, p.Kind.String())
		obj.Data = i
		d.space.Add(obj)
		d.objects = append(d.objects, obj)
	}

	d.character.X, d.character.Y = d.toSpace(pos)
	d.character.Update()

	check := d.character.Check(0, 0, particles.KindFood.String(), particles.KindHazard.String())
	if check == nil {
		return nil
	}

	var hits []Hit
	for _, obj := range check.Objects {
		idx, ok := obj.Data.(int)
		if !ok {
			continue
		}
		p := src.At(idx)
		if p.Point.Dist(pos) > d.radius {
			continue
		}
		hits = append(hits, Hit{Index: idx, Kind: p.Kind})
	}

	sort.Slice(hits, func(a, b int) bool {
		return hits[a].Index > hits[b].Index
	})
	return hits
}

// toSpace converts a grid point to the top-left corner of its box.
func (d *Detector) toSpace(p core.Point) (float64, float64) {
	x := (p.Lon-d.bounds.LonMin)*unitsPerDegree - d.radius*unitsPerDegree
	y := (p.Lat-d.bounds.LatMin)*unitsPerDegree - d.radius*unitsPerDegree
	return x, y
}

func (d *Detector) size() float64 {
	return math.Max(2*d.radius*unitsPerDegree, 1)
}

// Dispatch calls the target registered for each hit's kind, in the order
// given. Kinds without a target are skipped. Returns the number dispatched.
func Dispatch(hits []Hit, targets map[particles.Kind]Target) int {
	n := 0
	for _, h := range hits {
		t, ok := targets[h.Kind]
		if !ok {
			continue
		}
		t.OnCollision(h.Index)
		n++
	}
	return n
}
