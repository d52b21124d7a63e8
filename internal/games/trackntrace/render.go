package trackntrace

import (
	"fmt"
	"math"
	"strings"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/badges"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
)

// Visual characters for rendering
const (
	FoodChar      = '•'
	HazardChar    = 'x'
	LandChar      = '░'
	GraticuleChar = '·'
)

// birdArtDegrees is the direction the bird art faces before rotation.
const birdArtDegrees = 25.0

// arrows are the bird glyphs for eight headings, counter-clockwise from east.
var arrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// viewport returns the map area inside the frame, below the HUD row.
func viewport(w, h int) (cols, rows int) {
	return core.Max(w-2, 1), core.Max(h-3, 1)
}

// Render draws the map, particles, bird, HUD, and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	cols, rows := viewport(w, h)
	const mapX, mapY = 1, 2

	dst.DrawBox(core.NewRect(0, 1, w, h-1), core.ColorCyan)

	// Land outside the grid
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !g.bounds.Contains(g.camera.Unproject(x, y)) {
				dst.SetColored(mapX+x, mapY+y, LandChar, core.ColorGray)
			}
		}
	}

	// Whole-degree graticule
	for lon := math.Ceil(g.bounds.LonMin); lon <= g.bounds.LonMax; lon++ {
		for lat := math.Ceil(g.bounds.LatMin); lat <= g.bounds.LatMax; lat++ {
			if x, y, ok := g.camera.Project(core.Point{Lon: lon, Lat: lat}); ok {
				dst.SetColored(mapX+x, mapY+y, GraticuleChar, core.ColorBlue)
			}
		}
	}

	for _, p := range g.particles.Particles() {
		x, y, ok := g.camera.Project(p.Point)
		if !ok {
			continue
		}
		if p.Kind == particles.KindHazard {
			dst.SetColored(mapX+x, mapY+y, HazardChar, core.ColorRed)
		} else {
			dst.SetColored(mapX+x, mapY+y, FoodChar, core.ColorYellow)
		}
	}

	if !g.gameOver {
		if x, y, ok := g.camera.Project(g.character.Position()); ok {
			color := core.ColorWhite
			if g.character.Dashing() {
				color = core.ColorDash
			}
			dst.SetColored(mapX+x, mapY+y, birdGlyph(g.character.DirectionDegrees()), color)
		}
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Meals: %d", g.score, g.badges.Meals()),
			badgeLine(g.badges.Earned()),
			"Press R to fly again")
	}
}

// birdGlyph picks the arrow closest to the rotated bird art.
func birdGlyph(directionDegrees float64) rune {
	deg := math.Mod(directionDegrees+birdArtDegrees, 360)
	if deg < 0 {
		deg += 360
	}
	return arrows[int(math.Round(deg/45))%len(arrows)]
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.Snapshot()
	hud := fmt.Sprintf(" %s │ Score %d │ Health %3.0f%% │ %s",
		g.Title(), s.Score, s.Health*100, formatPosition(s.Position))
	dst.DrawText(0, 0, hud)

	x := len([]rune(hud)) + 1
	if s.Dashing {
		dst.DrawTextColored(x, 0, "DASH", core.ColorDash)
		x += 5
	}
	if g.flashTimer > 0 && g.flash != "" {
		dst.DrawTextColored(x, 0, g.flash, core.ColorYellow)
	}
}

// formatPosition renders a point as degrees with hemisphere letters.
func formatPosition(p core.Point) string {
	ns, ew := 'N', 'E'
	if p.Lat < 0 {
		ns = 'S'
	}
	if p.Lon < 0 {
		ew = 'W'
	}
	return fmt.Sprintf("%.1f°%c %.1f°%c", math.Abs(p.Lat), ns, math.Abs(p.Lon), ew)
}

func badgeLine(earned []badges.Milestone) string {
	if len(earned) == 0 {
		return "No badges this time"
	}
	names := make([]string, 0, len(earned))
	for _, m := range earned {
		names = append(names, m.Name)
	}
	return "Badges: " + strings.Join(names, ", ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 2*len(lines) + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextColored(boxX+(boxW-len([]rune(l)))/2, boxY+1+2*i, l, color)
	}
}
