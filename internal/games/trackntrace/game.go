// Package trackntrace implements Track & Trace: a bird flies over the North
// Sea eating drifting food, avoiding hazards, and racing its own hunger.
package trackntrace

import (
	"github.com/RUG-VIS/interactive-track-and-trace/internal/badges"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/camera"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/collision"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/config"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/health"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/motion"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/particles"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "trackntrace"

// flashTicks is how long a badge announcement stays in the HUD.
const flashTicks = 120

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game wires the character, particles, and collaborators together.
type Game struct {
	cfg        config.TrackConfig
	runtime    core.RuntimeConfig
	bounds     core.Bounds
	difficulty *config.DifficultyManager

	character *motion.State
	particles *particles.Set
	spawner   *particles.Spawner
	flow      particles.Current
	detector  *collision.Detector
	targets   map[particles.Kind]collision.Target
	health    *health.Health
	camera    *camera.Camera
	badges    *badges.Tracker

	score    int
	gameOver bool
	paused   bool
	ticks    int // Ticks since the run started

	flash      string
	flashTimer int
}

// New creates a game using the configuration found on the search path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.TrackConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Track & Trace"
}

// Reset builds a fresh run for the given screen and seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg == (config.TrackConfig{}) {
		cfg, err := config.LoadTrack(configPath)
		if err != nil {
			cfg = config.DefaultTrackConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTrackPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.runtime = rc
	g.bounds = g.cfg.Bounds()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.character = motion.New(g.cfg.Tuning())
	g.particles = particles.NewSet()
	g.spawner = particles.NewSpawner(g.cfg.SpawnSettings(), g.bounds, rc.Seed)
	g.flow = g.cfg.Flow()
	g.detector = collision.NewDetector(g.bounds, g.cfg.Pickups.Radius)
	g.health = health.New(g.cfg.Health.Drain)
	g.camera = camera.New(g.cfg.CameraSettings(), g.bounds, g.cfg.Start())
	g.badges = badges.NewTracker(nil)

	g.targets = map[particles.Kind]collision.Target{
		particles.KindFood: collision.NewFoodPickup(g.particles, g.health, g.camera, g.character, g.badges).
			WithHealthDelta(g.cfg.Pickups.FoodHealth),
		particles.KindHazard: collision.NewHazard(g.particles, g.health, g.camera, g.cfg.Health.HazardDamage),
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.startRun()
}

// Resize adapts the camera viewport to a new screen size without
// restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	cols, rows := viewport(w, h)
	g.camera.SetViewport(cols, rows)
}

// startRun resets the per-run state and places the initial food.
func (g *Game) startRun() {
	g.score = 0
	g.ticks = 0
	g.gameOver = false
	g.paused = false
	g.flash = ""
	g.flashTimer = 0

	g.health.Reset()
	g.badges.Reset()
	g.spawner.Populate(g.particles, g.character.Position())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.startRun()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	pos := g.character.Step(motion.ControlsFromInput(in), g.bounds)
	g.camera.ClampCamera(pos)
	g.camera.Update()

	g.flow.Advect(g.particles, g.bounds)
	g.spawner.Tune(
		g.difficulty.SpawnInterval(g.cfg.Spawn.Interval, g.score, g.ticks),
		g.difficulty.HazardChance(g.cfg.Spawn.HazardChance, g.score, g.ticks),
	)
	g.spawner.Update(g.particles, pos)

	hits := collision.Dispatch(g.detector.Detect(pos, g.particles), g.targets)
	g.score = g.badges.Meals() * g.cfg.Pickups.ScorePerFood
	g.announceBadges()

	g.health.Drain(g.difficulty.DrainFactor(g.score, g.ticks))
	if g.health.Depleted() {
		g.handleGameOver()
	}

	return core.StepResult{State: g.State(), Hits: hits}
}

// handleGameOver puts every subsystem into its game-over state. The score
// and badges stay visible until the player dismisses the overlay.
func (g *Game) handleGameOver() {
	g.gameOver = true
	g.character.HandleGameOver()
	g.particles.Clear()
	g.camera.Recenter(g.cfg.Start())
}

func (g *Game) announceBadges() {
	if g.flashTimer > 0 {
		g.flashTimer--
	}
	for _, m := range g.badges.Drain() {
		g.flash = "Badge earned: " + m.Name
		g.flashTimer = flashTicks
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Health returns the character's health fraction.
func (g *Game) Health() float64 {
	return g.health.Value()
}

// Badges returns the IDs of badges earned this run.
func (g *Game) Badges() []string {
	return g.badges.IDs()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.TrackConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

var (
	_ registry.Vitals       = (*Game)(nil)
	_ registry.Achievements = (*Game)(nil)
)
