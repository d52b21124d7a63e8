package particles

import "github.com/RUG-VIS/interactive-track-and-trace/internal/core"

// Current is a steady flow field that carries particles across the grid:
// a uniform drift plus a gyre rotating around the grid center.
type Current struct {
	U    float64 // Eastward drift per tick
	V    float64 // Northward drift per tick
	Gyre float64 // Angular speed around the center, radians per tick
}

// Velocity returns the flow at p.
func (c Current) Velocity(p core.Point, bounds core.Bounds) (u, v float64) {
	center := bounds.Center()
	u = c.U - c.Gyre*(p.Lat-center.Lat)
	v = c.V + c.Gyre*(p.Lon-center.Lon)
	return u, v
}

// Advect moves every particle one tick along the flow. Particles carried
// off the grid are beached: removed from the set. Returns how many were.
func (c Current) Advect(set *Set, bounds core.Bounds) int {
	if c.U == 0 && c.V == 0 && c.Gyre == 0 {
		return 0
	}

	for i := range set.items {
		p := &set.items[i]
		u, v := c.Velocity(p.Point, bounds)
		p.Point = p.Point.Add(u, v)
	}

	beached := 0
	for i := set.Len() - 1; i >= 0; i-- {
		if !bounds.Contains(set.items[i].Point) {
			set.Remove(i)
			beached++
		}
	}
	return beached
}
