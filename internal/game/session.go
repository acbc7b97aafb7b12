package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

// Phase is the run-level state of a session.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseLost
	PhaseWonAll
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseLost:
		return "game_over_lose"
	case PhaseWonAll:
		return "game_won_all"
	default:
		return "unknown"
	}
}

// endScreenGrace is how long end screens ignore input, so keys still held
// from play do not restart the run instantly. The restart key is exempt.
const endScreenGrace = 30

// State is a snapshot of the session for the platform and tests.
type State struct {
	Phase       Phase
	Level       int // 1-based
	Levels      int
	LevelName   string
	Score       int // Treasures on the current level
	Total       int // Treasures banked from completed levels
	LevelScores []int
	Dragons     int // Selected dragon count
	FirstDragon DragonState
	HasDragons  bool
	Paused      bool
	Quit        bool
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State  State
	Events []Event
}

// Options configures a session.
type Options struct {
	Config     config.GameConfig
	Catalog    levels.Catalog
	Dragons    int // Initial dragon count selection; 0 uses the config default
	StartLevel int // 0-based level a run starts from
	Images     ImageSource
}

// Session sequences a run through a catalog: start screen, levels, and the
// win or lose screen that loops back to the first level.
type Session struct {
	cfg        config.GameConfig
	catalog    levels.Catalog
	pending    *levels.Catalog
	startLevel int
	images     ImageSource

	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase       Phase
	level       int
	world       *World
	total       int
	levelScores []int
	dragons     int
	paused      bool
	quit        bool
	endTicks    int
	events      []Event
	view        *renderer
}

// NewSession creates a session on the start screen.
func NewSession(opts Options) *Session {
	dragons := opts.Dragons
	if dragons <= 0 {
		dragons = opts.Config.Dragon.DefaultCount
	}
	s := &Session{
		cfg:        opts.Config,
		catalog:    opts.Catalog,
		startLevel: opts.StartLevel,
		images:     opts.Images,
		dragons:    core.Clamp(dragons, 1, max(1, opts.Config.Dragon.MaxCount)),
	}
	s.view = newRenderer(s.cfg, s.images)
	s.Reset(core.DefaultConfig())
	return s
}

// Reset returns to the start screen with a fresh RNG.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.runtime = rt
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	s.phase = PhaseStart
	s.level = 0
	s.world = nil
	s.total = 0
	s.levelScores = nil
	s.paused = false
	s.quit = false
	s.endTicks = 0
	s.events = nil
}

// SetCatalog replaces the catalog. The swap happens at the next level load
// so the level being played is never rebuilt under the caver.
func (s *Session) SetCatalog(c levels.Catalog) {
	s.pending = &c
}

// Catalog returns the catalog in use.
func (s *Session) Catalog() levels.Catalog {
	return s.catalog
}

// World returns the level being played, or nil outside a run.
func (s *Session) World() *World {
	return s.world
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.events = nil

	if in.Has(core.ActionQuit) {
		s.quit = true
		return s.result()
	}

	switch s.phase {
	case PhaseStart:
		s.stepStart(in)
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseLevelComplete:
		s.loadLevel(s.level + 1)
	case PhaseLost, PhaseWonAll:
		s.endTicks++
		if in.Has(core.ActionRestart) || (s.endTicks > endScreenGrace && in.Any()) {
			s.startRun()
		}
	}
	return s.result()
}

func (s *Session) stepStart(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		s.dragons = min(s.cfg.Dragon.MaxCount, s.dragons+1)
	case in.Has(core.ActionDown):
		s.dragons = max(1, s.dragons-1)
	case in.Has(core.ActionConfirm):
		s.startRun()
	}
}

func (s *Session) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	outcome := s.world.Step(in)
	s.events = append(s.events, s.world.DrainEvents()...)

	switch outcome {
	case OutcomeComplete:
		score := s.world.Score()
		s.levelScores = append(s.levelScores, score)
		s.total += score
		if s.catalog.Last(s.level) {
			s.phase = PhaseWonAll
			s.endTicks = 0
			s.emit(Event{Kind: EventVictory, Level: s.level + 1, Score: s.total})
		} else {
			s.phase = PhaseLevelComplete
			s.emit(Event{Kind: EventLevelComplete, Level: s.level + 1, Score: score})
		}
	case OutcomeDefeated:
		s.phase = PhaseLost
		s.endTicks = 0
		s.emit(Event{Kind: EventDefeat, Level: s.level + 1, Score: s.total})
	}
}

// startRun begins a fresh run from the configured start level.
func (s *Session) startRun() {
	s.total = 0
	s.levelScores = s.levelScores[:0]
	s.paused = false
	s.loadLevel(s.startLevel)
}

// loadLevel builds level i (0-based), applying a pending catalog first.
func (s *Session) loadLevel(i int) {
	if s.pending != nil {
		s.catalog = *s.pending
		s.pending = nil
		s.emit(Event{Kind: EventCatalogSwapped, Score: s.catalog.Len()})
	}
	s.level = core.Clamp(i, 0, max(0, s.catalog.Len()-1))

	def, _ := s.catalog.Level(s.level)
	s.world = NewWorld(def, s.level+1, s.dragons, s.cfg, s.rng, s.runtime.TickRate)
	s.phase = PhasePlaying
	s.emit(Event{Kind: EventLevelStart, Level: s.level + 1})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) result() StepResult {
	return StepResult{State: s.State(), Events: s.events}
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	st := State{
		Phase:       s.phase,
		Level:       s.level + 1,
		Levels:      s.catalog.Len(),
		Total:       s.total,
		LevelScores: append([]int(nil), s.levelScores...),
		Dragons:     s.dragons,
		Paused:      s.paused,
		Quit:        s.quit,
	}
	if def, ok := s.catalog.Level(s.level); ok {
		st.LevelName = def.Name
	}
	if s.world != nil {
		st.Score = s.world.Score()
		if ds := s.world.Dragons(); len(ds) > 0 {
			st.HasDragons = true
			st.FirstDragon = ds[0].State
		}
	}
	return st
}

// Render draws the current session into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	switch s.phase {
	case PhaseStart:
		s.view.startScreen(dst, s.State())
	case PhasePlaying, PhaseLevelComplete:
		s.view.level(dst, s.world, s.State())
	case PhaseLost, PhaseWonAll:
		s.view.endScreen(dst, s.State())
	}
}
