package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RUG-VIS/interactive-track-and-trace/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionAccelerate},
		{"s", runeKey('s'), core.ActionReverse},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%s) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestHoldControllerWindow(t *testing.T) {
	h := NewHoldController(3)
	h.Press(core.ActionAccelerate)

	for i := 0; i < 3; i++ {
		if !h.Frame().Has(core.ActionAccelerate) {
			t.Fatalf("tick %d: accelerate should still be held", i)
		}
	}
	if h.Frame().Has(core.ActionAccelerate) {
		t.Error("accelerate should be released after the window")
	}
}

func TestHoldControllerRepeatExtends(t *testing.T) {
	h := NewHoldController(2)
	h.Press(core.ActionLeft)
	h.Frame()
	h.Press(core.ActionLeft) // auto-repeat
	h.Frame()
	if !h.Frame().Has(core.ActionLeft) {
		t.Error("a repeat should restart the hold window")
	}
}

func TestHoldControllerOpposites(t *testing.T) {
	h := NewHoldController(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionAccelerate)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) || !f.Has(core.ActionAccelerate) {
		t.Errorf("frame = %v, expected right and accelerate only", f.Actions)
	}
}

func TestHoldControllerOneShots(t *testing.T) {
	h := NewHoldController(10)
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	if f := h.Frame(); !f.Has(core.ActionPause) || len(f.Actions) != 1 {
		t.Errorf("first frame = %v, expected pause only", f.Actions)
	}
	if h.Frame().Has(core.ActionPause) {
		t.Error("pause should fire once")
	}
}

func TestHoldControllerRelease(t *testing.T) {
	h := NewHoldController(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRestart)
	h.Release()

	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after Release = %v", f.Actions)
	}
}
