package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/registry"
	"github.com/RUG-VIS/interactive-track-and-trace/internal/storage"
)

// footerRows are the lines below the game screen: health bar and help.
const footerRows = 2

// Options tune a Model beyond the game and runtime config.
type Options struct {
	Player    string      // Name scores and badges are saved under
	Logger    *log.Logger // Nil discards log output
	HoldTicks int         // See HoldController
}

// resizer is implemented by games that can adapt to a new screen size
// without restarting the run.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	hold       *HoldController
	help       help.Model
	healthBar  progress.Model
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bar := progress.New(
		progress.WithGradient("#E74C3C", "#0CB162"),
		progress.WithWidth(healthBarWidth(cfg.ScreenW)),
	)

	cfg.ScreenH = core.Max(cfg.ScreenH-footerRows, 1)
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keys:      DefaultKeyMap(),
		hold:      NewHoldController(opts.HoldTicks),
		help:      help.New(),
		healthBar: bar,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.healthBar.Width = healthBarWidth(msg.Width)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.hold.Frame())
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.hold.Release()
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run's score and badges. Storage failures are
// logged and do not interrupt the game.
func (m Model) saveRun() {
	var earned []string
	if a, ok := m.game.(registry.Achievements); ok {
		earned = a.Badges()
	}
	m.logger.Info("game over", "player", m.opts.Player, "score", m.gameState.Score, "badges", len(earned))

	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.opts.Player, m.gameState.Score); err != nil {
			m.logger.Error("could not save score", "error", err)
		}
	}
	for _, id := range earned {
		isNew, err := m.store.AwardBadge(m.game.ID(), m.opts.Player, id)
		if err != nil {
			m.logger.Error("could not save badge", "badge", id, "error", err)
			continue
		}
		if isNew {
			m.logger.Info("badge unlocked", "player", m.opts.Player, "badge", id)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".trackntrace", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	if v, ok := m.game.(registry.Vitals); ok {
		sb.WriteString(" " + m.healthBar.ViewAs(v.Health()))
	}
	sb.WriteString("\n")
	sb.WriteString(" " + m.help.View(m.keys))
	return sb.String()
}

func healthBarWidth(screenW int) int {
	return core.Max(screenW-8, 10)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
