package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/dragoncave/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperActions(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
		quit     bool
	}{
		{"arrow up jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump, core.ActionUp}, false},
		{"space drops a rock", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionDropRock}, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}, false},
		{"plus adds a dragon", runeKey('+'), []core.Action{core.ActionUp}, false},
		{"minus removes a dragon", runeKey('-'), []core.Action{core.ActionDown}, false},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}, false},
		{"r restarts", runeKey('r'), []core.Action{core.ActionRestart}, false},
		{"other keys count as any key", runeKey('x'), []core.Action{core.ActionAnyKey}, false},
		{"q quits", runeKey('q'), []core.Action{core.ActionQuit}, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km := NewKeyMapper(DefaultKeyMap(), 30)
			frame := core.NewInputFrame()

			if quit := km.MapKey(tc.msg, &frame); quit != tc.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tc.quit)
			}
			for _, a := range tc.expected {
				if !frame.Has(a) {
					t.Errorf("expected %v to be pressed", a)
				}
			}
		})
	}
}

func TestKeyMapperHoldLatch(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 3)
	frame := core.NewInputFrame()

	km.MapKey(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	for i := range 3 {
		frame.Clear()
		km.Apply(&frame)
		if !frame.Holding(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}

	frame.Clear()
	km.Apply(&frame)
	if frame.Holding(core.ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestKeyMapperOppositeReleases(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap(), 30)
	frame := core.NewInputFrame()

	km.MapKey(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	frame.Clear()
	km.Apply(&frame)

	if frame.Holding(core.ActionRight) || !frame.Holding(core.ActionLeft) {
		t.Errorf("expected only left held, got %+v", frame.Held)
	}

	km.MapKey(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	frame.Clear()
	km.Apply(&frame)
	if frame.Holding(core.ActionLeft) {
		t.Error("down should release held directions")
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)

	got := ansi.Strip(RenderScreen(s))
	if want := "abcd \n     "; got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}
