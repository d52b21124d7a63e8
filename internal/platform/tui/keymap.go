package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

// KeyMap holds the key bindings of the game. It implements help.KeyMap.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Accelerate key.Binding
	Reverse    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or WASD to fly.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("←/a", "turn left")),
		Right:      key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("→/d", "turn right")),
		Accelerate: key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("↑/w", "fly")),
		Reverse:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("↓/s", "brake")),
		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fly again")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Accelerate, k.Reverse, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Accelerate, k.Reverse},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Accelerate):
		return core.ActionAccelerate
	case key.Matches(msg, k.Reverse):
		return core.ActionReverse
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldController turns key presses into per-tick input frames. Terminals
// report presses and auto-repeats but never releases, so a steering action
// counts as held for a window of ticks after its last press. Other actions
// fire once.
type HoldController struct {
	window  int
	held    map[core.Action]int
	pending map[core.Action]bool
}

// NewHoldController creates a controller holding steering keys for window ticks.
func NewHoldController(window int) *HoldController {
	return &HoldController{
		window:  core.Max(window, 1),
		held:    make(map[core.Action]int),
		pending: make(map[core.Action]bool),
	}
}

// isSteering reports whether a is polled continuously by the game.
func isSteering(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionAccelerate, core.ActionReverse:
		return true
	}
	return false
}

// Press records a key press.
func (h *HoldController) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isSteering(a) {
		h.pending[a] = true
		return
	}
	h.held[a] = h.window
	// Opposite turns cancel the stale one so direction changes are immediate
	switch a {
	case core.ActionLeft:
		delete(h.held, core.ActionRight)
	case core.ActionRight:
		delete(h.held, core.ActionLeft)
	case core.ActionAccelerate:
		delete(h.held, core.ActionReverse)
	case core.ActionReverse:
		delete(h.held, core.ActionAccelerate)
	}
}

// Frame returns the input for the next tick and ages held keys by one tick.
func (h *HoldController) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	for a := range h.pending {
		frame.Set(a)
		delete(h.pending, a)
	}
	return frame
}

// Release drops every held and pending action.
func (h *HoldController) Release() {
	clear(h.held)
	clear(h.pending)
}
