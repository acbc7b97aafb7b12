package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/dragoncave/internal/assets"
	"github.com/vovakirdan/dragoncave/internal/catalogs/training"
	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/game"
)

// recordingBank counts the sounds requested.
type recordingBank struct {
	played map[string]int
}

func (b *recordingBank) LoadSound(name string) assets.Sound {
	b.played[name]++
	return assets.Silent
}

func newTestModel(bank SoundBank) Model {
	session := game.NewSession(game.Options{
		Config:  config.Default(),
		Catalog: training.Catalog(),
	})
	return NewModel(session, Options{
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		HoldTicks: 30,
		Sounds:    bank,
	})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelStartsRun(t *testing.T) {
	m := newTestModel(nil)
	m.Init()

	if out := ansi.Strip(m.View()); !strings.Contains(out, "Press ENTER to start") {
		t.Fatalf("start screen missing prompt:\n%s", out)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg{})
	if m.state.Phase != game.PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", m.state.Phase)
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Level: 1/2") {
		t.Errorf("HUD missing level counter:\n%s", out)
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := newTestModel(nil)
	m.Init()
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg{})

	start := m.session.World().Player().Pos.X
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 10 {
		m = step(t, m, TickMsg{})
	}
	if x := m.session.World().Player().Pos.X; x <= start {
		t.Errorf("caver did not move right: %v -> %v", start, x)
	}
}

func TestModelPlaysJumpSound(t *testing.T) {
	bank := &recordingBank{played: make(map[string]int)}
	m := newTestModel(bank)
	m.Init()
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 60 {
		m = step(t, m, TickMsg{})
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, TickMsg{})
	if bank.played[assets.SoundJump] != 1 {
		t.Errorf("jump sound played %d times, expected 1", bank.played[assets.SoundJump])
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
