package game

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

// quickLevel completes on the first tick with one treasure collected.
func quickLevel(name string) levels.Definition {
	return levels.Definition{
		Name:      name,
		Width:     800,
		Platforms: []core.RectF{core.R(0, 560, 800, 40)},
		Treasures: []core.Vec2{core.V(200, 560), core.V(600, 560)},
		Dragons:   []core.Vec2{core.V(700, 560)},
		Exit:      core.V(230, 560),
	}
}

func testCatalog(defs ...levels.Definition) levels.Catalog {
	return levels.Catalog{ID: "test", Name: "Test", Levels: defs}
}

func newTestSession(c levels.Catalog) *Session {
	s := NewSession(Options{Config: testConfig(), Catalog: c})
	s.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return s
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestSessionStartScreenDragonCount(t *testing.T) {
	s := newTestSession(testCatalog(quickLevel("One")))

	if got := s.State(); got.Phase != PhaseStart || got.Dragons != 1 {
		t.Fatalf("initial state = %v with %d dragons", got.Phase, got.Dragons)
	}
	for range 10 {
		s.Step(press(core.ActionUp))
	}
	if got := s.State().Dragons; got != 5 {
		t.Errorf("Dragons = %d, expected to stop at 5", got)
	}
	for range 10 {
		s.Step(press(core.ActionDown))
	}
	if got := s.State().Dragons; got != 1 {
		t.Errorf("Dragons = %d, expected to stop at 1", got)
	}

	s.Step(press(core.ActionUp))
	res := s.Step(press(core.ActionConfirm))
	if res.State.Phase != PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", res.State.Phase)
	}
	if n := len(s.World().Dragons()); n != 2 {
		t.Errorf("level has %d dragons, expected the 2 selected", n)
	}
	if !slices.ContainsFunc(res.Events, func(e Event) bool { return e.Kind == EventLevelStart }) {
		t.Error("expected a level start event")
	}
}

func TestSessionCompletesAllLevels(t *testing.T) {
	s := newTestSession(testCatalog(quickLevel("One"), quickLevel("Two")))

	s.Step(press(core.ActionConfirm))
	res := s.Step(idle())
	if res.State.Phase != PhaseLevelComplete {
		t.Fatalf("Phase = %v, expected level complete", res.State.Phase)
	}

	res = s.Step(idle())
	if res.State.Phase != PhasePlaying || res.State.Level != 2 {
		t.Fatalf("expected to be playing level 2, got %v level %d", res.State.Phase, res.State.Level)
	}
	if res.State.LevelName != "Two" {
		t.Errorf("LevelName = %q", res.State.LevelName)
	}

	res = s.Step(idle())
	st := res.State
	if st.Phase != PhaseWonAll {
		t.Fatalf("Phase = %v, expected all levels complete", st.Phase)
	}
	sum := 0
	for _, n := range st.LevelScores {
		sum += n
	}
	if len(st.LevelScores) != 2 || st.Total != sum || st.Total != 2 {
		t.Errorf("Total = %d, LevelScores = %v, expected 2 = 1 + 1", st.Total, st.LevelScores)
	}
	if !slices.ContainsFunc(res.Events, func(e Event) bool { return e.Kind == EventVictory && e.Score == 2 }) {
		t.Errorf("expected a victory event with the total, got %+v", res.Events)
	}
}

func TestSessionDefeatAndRestart(t *testing.T) {
	def := quickLevel("Lair")
	def.Dragons = []core.Vec2{core.V(260, 560)}
	def.Exit = core.V(760, 560)
	s := newTestSession(testCatalog(def, quickLevel("Two")))

	s.Step(press(core.ActionConfirm))
	var st State
	for range 60 {
		st = s.Step(idle()).State
		if st.Phase != PhasePlaying {
			break
		}
	}
	if st.Phase != PhaseLost {
		t.Fatalf("Phase = %v, expected game over", st.Phase)
	}
	if st.Level != 1 {
		t.Errorf("Level = %d, expected 1", st.Level)
	}

	for i := range endScreenGrace {
		if got := s.Step(press(core.ActionJump)).State.Phase; got != PhaseLost {
			t.Fatalf("key %d restarted during the grace period", i)
		}
	}
	st = s.Step(press(core.ActionJump)).State
	if st.Phase != PhasePlaying || st.Level != 1 || st.Total != 0 {
		t.Errorf("after restart: phase %v level %d total %d", st.Phase, st.Level, st.Total)
	}
}

func TestSessionRestartKeySkipsGrace(t *testing.T) {
	s := newTestSession(testCatalog(flatLevel()))
	s.Step(press(core.ActionConfirm))
	s.World().outcome = OutcomeDefeated
	s.stepPlaying(idle())

	if got := s.Step(press(core.ActionRestart)).State.Phase; got != PhasePlaying {
		t.Errorf("Phase = %v, expected the restart key to start a new run", got)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(testCatalog(flatLevel()))
	s.Step(press(core.ActionConfirm))
	s.Step(idle())
	now := s.World().Now()

	if st := s.Step(press(core.ActionPause)).State; !st.Paused {
		t.Fatal("expected paused")
	}
	for range 10 {
		s.Step(holdRight())
	}
	if s.World().Now() != now {
		t.Errorf("world advanced while paused: %d -> %d", now, s.World().Now())
	}

	if st := s.Step(press(core.ActionPause)).State; st.Paused {
		t.Fatal("expected resumed")
	}
	if s.World().Now() != now+1 {
		t.Errorf("Now() = %d, expected %d after resuming", s.World().Now(), now+1)
	}
}

func TestSessionCatalogSwap(t *testing.T) {
	s := newTestSession(testCatalog(flatLevel()))
	s.Step(press(core.ActionConfirm))

	s.SetCatalog(testCatalog(quickLevel("New One"), quickLevel("New Two")))
	if got := s.State().Levels; got != 1 {
		t.Errorf("catalog swapped mid-level: %d levels", got)
	}

	// Lose, then restart to pick up the new catalog.
	s.World().outcome = OutcomeDefeated
	s.stepPlaying(idle())
	for range endScreenGrace + 1 {
		s.Step(press(core.ActionConfirm))
	}

	st := s.State()
	if st.Levels != 2 || st.LevelName != "New One" {
		t.Errorf("after restart: %d levels, level %q", st.Levels, st.LevelName)
	}
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(testCatalog(flatLevel()))
	if !s.Step(press(core.ActionQuit)).State.Quit {
		t.Error("expected quit")
	}
}

func TestSessionDeterminism(t *testing.T) {
	script := func(s *Session) State {
		s.Step(press(core.ActionUp))
		s.Step(press(core.ActionConfirm))
		var st State
		for i := range 400 {
			in := holdRight()
			if i%35 == 0 {
				in.Set(core.ActionJump)
			}
			st = s.Step(in).State
		}
		return st
	}

	newClassic := func() *Session {
		def := flatLevel()
		def.Width = 2000
		def.Platforms = []core.RectF{core.R(0, 560, 2000, 40), core.R(500, 450, 100, 20)}
		def.Dragons = nil
		def.Exit = core.V(1960, 560)
		return newTestSession(testCatalog(def))
	}

	a, b := script(newClassic()), script(newClassic())
	if a.Phase != b.Phase || a.Score != b.Score || a.Total != b.Total || a.FirstDragon != b.FirstDragon {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}

func TestSessionRender(t *testing.T) {
	s := newTestSession(testCatalog(flatLevel(), quickLevel("Two")))
	screen := core.NewScreen(80, 24)

	s.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Dragon Cave Adventure!") || !strings.Contains(out, "Number of Dragons (1-5): 1") {
		t.Errorf("start screen missing title or dragon count:\n%s", out)
	}

	s.Step(press(core.ActionConfirm))
	s.Step(idle())
	s.Render(screen)
	out := screen.String()
	for _, want := range []string{"Level: 1/2", "Treasures: 0", "Total: 0", "Dragon(s): Zzzz"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("expected the cave to be drawn")
	}

	s.Step(press(core.ActionPause))
	s.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected the pause overlay")
	}
	s.Step(press(core.ActionPause))

	s.World().outcome = OutcomeDefeated
	s.stepPlaying(idle())
	s.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER!") || !strings.Contains(out, "You reached Level 1 with 0 total treasures.") {
		t.Errorf("game over screen:\n%s", out)
	}
}
