package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragoncave/internal/assets"
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/game"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

// SoundBank supplies sound cues by file name.
type SoundBank interface {
	LoadSound(name string) assets.Sound
}

// Options configures a terminal game model.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int             // Ticks a left/right press stays held
	Sounds    SoundBank       // nil plays nothing
	Logger    *log.Logger     // nil discards
	Watcher   *levels.Watcher // Optional catalog hot reload
	Keys      *KeyMap         // nil uses DefaultKeyMap
}

// Model is the Bubble Tea model running one cave session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	frame    core.InputFrame
	sounds   SoundBank
	logger   *log.Logger
	watcher  *levels.Watcher
	state    game.State
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:  cfg,
		keys:    NewKeyMapper(keys, opts.HoldTicks),
		help:    h,
		frame:   core.NewInputFrame(),
		sounds:  opts.Sounds,
		logger:  logger,
		watcher: opts.Watcher,
	}
}

// Init resets the session and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case CatalogMsg:
		c := levels.Catalog(msg)
		m.session.SetCatalog(c)
		m.logger.Info("catalog reloaded", "catalog", c.ID, "levels", c.Len())
		return m, watchCmd(m.watcher)

	case CatalogErrMsg:
		m.logger.Warn("catalog reload failed", "error", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys().Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKey(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the session one step with the input gathered since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Apply(&m.frame)
	res := m.session.Step(m.frame)
	m.state = res.State
	m.frame.Clear()

	for _, e := range res.Events {
		m.handleEvent(e)
	}

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// eventSounds maps events to the cue played for them.
var eventSounds = map[game.EventKind]string{
	game.EventJump:        assets.SoundJump,
	game.EventTreasure:    assets.SoundCoin,
	game.EventBigTreasure: assets.SoundCoin,
	game.EventRoar:        assets.SoundRoar,
	game.EventHit:         assets.SoundHit,
}

func (m Model) handleEvent(e game.Event) {
	if name, ok := eventSounds[e.Kind]; ok && m.sounds != nil {
		m.sounds.LoadSound(name).Play()
	}

	switch e.Kind {
	case game.EventLevelStart:
		m.logger.Info("level start", "level", e.Level)
	case game.EventLevelComplete:
		m.logger.Info("level complete", "level", e.Level, "treasures", e.Score)
	case game.EventVictory:
		m.logger.Info("cave conquered", "levels", e.Level, "total", e.Score)
	case game.EventDefeat:
		m.logger.Info("caver defeated", "level", e.Level, "total", e.Score)
	case game.EventCatalogSwapped:
		m.logger.Info("catalog applied", "levels", e.Score)
	case game.EventRoar:
		m.logger.Debug("dragon woke", "dragon", e.Dragon, "x", e.Pos.X)
	case game.EventDistracted:
		m.logger.Debug("dragon distracted", "dragon", e.Dragon, "x", e.Pos.X)
	case game.EventCalmed:
		m.logger.Debug("dragon resumed chase", "dragon", e.Dragon)
	case game.EventBigTreasureSpawned:
		m.logger.Debug("big treasure appeared", "level", e.Level)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dragoncave", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("cave_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
