package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragoncave/internal/core"
)

// KeyMap defines the key bindings for the cave.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Crouch  key.Binding
	Drop    key.Binding
	More    key.Binding
	Less    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Drop, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Crouch},
		{k.Drop, k.Pause, k.Confirm, k.Restart},
		{k.More, k.Less},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "drop rock"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more dragons"),
		),
		Less: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer dragons"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals report presses only, so left and right are latched for a
// number of ticks after each press and refreshed by key auto-repeat.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Action]int // Remaining ticks per latched action
}

// NewKeyMapper creates a key mapper that latches directions for holdTicks.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = 1
	}
	return &KeyMapper{
		keys:      keys,
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey records a key press into frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, km.keys.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, km.keys.Left):
		km.latch(core.ActionLeft, core.ActionRight)
		frame.Set(core.ActionLeft)
	case key.Matches(msg, km.keys.Right):
		km.latch(core.ActionRight, core.ActionLeft)
		frame.Set(core.ActionRight)
	case key.Matches(msg, km.keys.Jump):
		frame.Set(core.ActionJump)
		frame.Set(core.ActionUp)
	case key.Matches(msg, km.keys.Crouch):
		km.Release()
		frame.Set(core.ActionDown)
	case key.Matches(msg, km.keys.Drop):
		frame.Set(core.ActionDropRock)
	case key.Matches(msg, km.keys.More):
		frame.Set(core.ActionUp)
	case key.Matches(msg, km.keys.Less):
		frame.Set(core.ActionDown)
	case key.Matches(msg, km.keys.Confirm):
		frame.Set(core.ActionConfirm)
	case key.Matches(msg, km.keys.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, km.keys.Restart):
		frame.Set(core.ActionRestart)
	default:
		frame.Set(core.ActionAnyKey)
	}
	return false
}

func (km *KeyMapper) latch(a, opposite core.Action) {
	km.held[a] = km.holdTicks
	delete(km.held, opposite)
}

// Apply marks latched actions as held in frame and ages the latches by
// one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, n := range km.held {
		frame.Hold(a)
		if n <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = n - 1
		}
	}
}

// Release drops every latched direction.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// Keys returns the bindings, for the help bar.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}
