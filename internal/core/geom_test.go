package core

import "testing"

var northSea = Bounds{LonMin: -15, LonMax: 13, LatMin: 46, LatMax: 62}

func TestBoundsClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"inside", Point{0, 50}, Point{0, 50}},
		{"west of grid", Point{-20, 50}, Point{-15, 50}},
		{"east of grid", Point{14, 50}, Point{13, 50}},
		{"south of grid", Point{0, 40}, Point{0, 46}},
		{"north of grid", Point{0, 70}, Point{0, 62}},
		{"corner overshoot", Point{20, 70}, Point{13, 62}},
		{"on edge", Point{13, 46}, Point{13, 46}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := northSea.Clamp(tc.in)
			if result != tc.expected {
				t.Errorf("Clamp(%v) = %v, expected %v", tc.in, result, tc.expected)
			}
		})
	}
}

func TestBoundsClampIdempotent(t *testing.T) {
	points := []Point{{-30, 0}, {0, 50}, {100, 100}, {-15, 62}}
	for _, p := range points {
		once := northSea.Clamp(p)
		twice := northSea.Clamp(once)
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: %v then %v", p, once, twice)
		}
		if !northSea.Contains(once) {
			t.Errorf("Clamp(%v) = %v is outside the grid", p, once)
		}
	}
}

func TestBoundsGeometry(t *testing.T) {
	if northSea.Width() != 28 {
		t.Errorf("Width() = %f, expected 28", northSea.Width())
	}
	if northSea.Height() != 16 {
		t.Errorf("Height() = %f, expected 16", northSea.Height())
	}
	if c := northSea.Center(); c != (Point{-1, 54}) {
		t.Errorf("Center() = %v, expected {-1 54}", c)
	}
}

func TestPointDist(t *testing.T) {
	a := Point{0, 0}
	b := a.Add(3, 4)
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
