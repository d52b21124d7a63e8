// Package camera keeps the character in view and maps grid coordinates to
// screen cells.
package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

const (
	cellAspect     = 2.0 // Height/width ratio of a terminal cell
	projectEpsilon = 1e-9
)

// Config tunes the camera.
type Config struct {
	ViewLat    float64 // Degrees of latitude visible at zoom 1
	LonStretch float64 // Longitude degrees per latitude degree of screen width
	DeadZone   float64 // Fraction of the half-view the character may roam before the camera follows
	ZoomFactor float64 // Peak zoom of a pulse
	ZoomTicks  int     // Length of a pulse in ticks
}

// DefaultConfig returns the camera settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		ViewLat:    8,
		LonStretch: 1.6,
		DeadZone:   0.4,
		ZoomFactor: 1.25,
		ZoomTicks:  20,
	}
}

// Camera follows a point across the grid. The visible window is centered
// on Center and scaled by the current zoom.
type Camera struct {
	cfg    Config
	bounds core.Bounds
	center core.Point
	zoom   float64
	pulse  []*gween.Tween
	cols   int
	rows   int
}

// New creates a camera over bounds centered on start.
func New(cfg Config, bounds core.Bounds, start core.Point) *Camera {
	c := &Camera{
		cfg:    cfg,
		bounds: bounds,
		zoom:   1,
		cols:   80,
		rows:   22,
	}
	c.Recenter(start)
	return c
}

// SetViewport sets the screen area the camera projects onto, in cells.
func (c *Camera) SetViewport(cols, rows int) {
	c.cols = core.Max(cols, 1)
	c.rows = core.Max(rows, 1)
	c.center = c.fit(c.center)
}

// HalfExtents returns half the visible width and height in degrees.
func (c *Camera) HalfExtents() (lon, lat float64) {
	lat = c.cfg.ViewLat / c.zoom / 2
	lon = lat * float64(c.cols) / (float64(c.rows) * cellAspect) * c.cfg.LonStretch
	return lon, lat
}

// ClampCamera moves the camera just enough to keep p inside the dead zone,
// without showing area outside the grid where the grid is large enough.
func (c *Camera) ClampCamera(p core.Point) {
	hx, hy := c.HalfExtents()
	dx, dy := hx*c.cfg.DeadZone, hy*c.cfg.DeadZone

	if p.Lon > c.center.Lon+dx {
		c.center.Lon = p.Lon - dx
	}
	if p.Lon < c.center.Lon-dx {
		c.center.Lon = p.Lon + dx
	}
	if p.Lat > c.center.Lat+dy {
		c.center.Lat = p.Lat - dy
	}
	if p.Lat < c.center.Lat-dy {
		c.center.Lat = p.Lat + dy
	}
	c.center = c.fit(c.center)
}

// fit keeps the visible window inside the grid on each axis where it fits,
// and centers the grid on axes where it does not.
func (c *Camera) fit(center core.Point) core.Point {
	hx, hy := c.HalfExtents()
	gc := c.bounds.Center()

	if 2*hx >= c.bounds.Width() {
		center.Lon = gc.Lon
	} else {
		center.Lon = core.ClampF(center.Lon, c.bounds.LonMin+hx, c.bounds.LonMax-hx)
	}
	if 2*hy >= c.bounds.Height() {
		center.Lat = gc.Lat
	} else {
		center.Lat = core.ClampF(center.Lat, c.bounds.LatMin+hy, c.bounds.LatMax-hy)
	}
	return center
}

// ZoomScreen starts a zoom pulse: in to ZoomFactor, then back out to 1.
// A pulse already running is replaced, starting from the current zoom.
func (c *Camera) ZoomScreen() {
	half := float32(math.Max(float64(c.cfg.ZoomTicks)/2, 1))
	peak := float32(c.cfg.ZoomFactor)
	c.pulse = []*gween.Tween{
		gween.New(float32(c.zoom), peak, half, ease.OutQuad),
		gween.New(peak, 1, half, ease.InQuad),
	}
}

// Update advances the zoom pulse by one tick.
func (c *Camera) Update() {
	if len(c.pulse) == 0 {
		return
	}
	z, finished := c.pulse[0].Update(1)
	c.zoom = float64(z)
	if finished {
		c.pulse = c.pulse[1:]
		if len(c.pulse) == 0 {
			c.zoom = 1
		}
	}
	c.center = c.fit(c.center)
}

// Zooming reports whether a pulse is running.
func (c *Camera) Zooming() bool {
	return len(c.pulse) > 0
}

// Zoom returns the current zoom level.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Center returns the center of the visible window.
func (c *Camera) Center() core.Point {
	return c.center
}

// Recenter stops any pulse and centers the view on p.
func (c *Camera) Recenter(p core.Point) {
	c.pulse = nil
	c.zoom = 1
	c.center = c.fit(p)
}

// Project maps a grid point to a viewport cell. ok is false when the point
// is off screen. Points on the far edges of the view map to the last cell.
func (c *Camera) Project(p core.Point) (x, y int, ok bool) {
	hx, hy := c.HalfExtents()
	fx := (p.Lon-(c.center.Lon-hx))/(2*hx)*float64(c.cols) + projectEpsilon
	fy := ((c.center.Lat+hy)-p.Lat)/(2*hy)*float64(c.rows) + projectEpsilon
	cols, rows := float64(c.cols), float64(c.rows)
	if fx < 0 || fy < 0 || fx > cols+2*projectEpsilon || fy > rows+2*projectEpsilon {
		return 0, 0, false
	}
	x = core.Min(int(math.Floor(fx)), c.cols-1)
	y = core.Min(int(math.Floor(fy)), c.rows-1)
	return x, y, true
}

// Unproject returns the grid point at the center of viewport cell (x, y).
func (c *Camera) Unproject(x, y int) core.Point {
	hx, hy := c.HalfExtents()
	return core.Point{
		Lon: c.center.Lon - hx + (float64(x)+0.5)/float64(c.cols)*2*hx,
		Lat: c.center.Lat + hy - (float64(y)+0.5)/float64(c.rows)*2*hy,
	}
}
