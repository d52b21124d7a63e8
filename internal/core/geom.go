// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point is a position on the geographic grid.
type Point struct {
	Lon float64 // Longitude, horizontal axis
	Lat float64 // Latitude, vertical axis
}

// Add returns p translated by (dLon, dLat).
func (p Point) Add(dLon, dLat float64) Point {
	return Point{Lon: p.Lon + dLon, Lat: p.Lat + dLat}
}

// Dist returns the Euclidean distance between two points in grid units.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.Lon-other.Lon, p.Lat-other.Lat)
}

// Bounds is the rectangular extent of a longitude/latitude grid.
type Bounds struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Width returns the longitude span.
func (b Bounds) Width() float64 {
	return b.LonMax - b.LonMin
}

// Height returns the latitude span.
func (b Bounds) Height() float64 {
	return b.LatMax - b.LatMin
}

// Center returns the midpoint of the grid.
func (b Bounds) Center() Point {
	return Point{Lon: (b.LonMin + b.LonMax) / 2, Lat: (b.LatMin + b.LatMax) / 2}
}

// Contains reports whether p lies inside the closed rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.Lon >= b.LonMin && p.Lon <= b.LonMax &&
		p.Lat >= b.LatMin && p.Lat <= b.LatMax
}

// Clamp pulls p into the grid, each axis independently.
// Clamping a point that is already inside is a no-op.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		Lon: ClampF(p.Lon, b.LonMin, b.LonMax),
		Lat: ClampF(p.Lat, b.LatMin, b.LatMax),
	}
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
