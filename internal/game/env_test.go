package game

import (
	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
)

// fakeEnv is a hand-driven Env for entity tests.
type fakeEnv struct {
	now       Tick
	solids    []core.RectF
	obstacles []core.RectF
	player    core.Vec2
	bounds    core.RectF

	fireballs []core.Vec2 // Directions
	rocks     []core.Vec2
	landed    []*Rock
	events    []Event
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		solids: []core.RectF{core.R(0, 560, 2000, 40)},
		bounds: core.R(0, 0, 2000, 600),
	}
}

func (e *fakeEnv) Now() Tick               { return e.now }
func (e *fakeEnv) Solids() []core.RectF    { return e.solids }
func (e *fakeEnv) Obstacles() []core.RectF { return e.obstacles }
func (e *fakeEnv) PlayerPos() core.Vec2    { return e.player }
func (e *fakeEnv) LevelBounds() core.RectF { return e.bounds }
func (e *fakeEnv) SpawnFireball(_, dir core.Vec2) {
	e.fireballs = append(e.fireballs, dir)
}
func (e *fakeEnv) SpawnRock(at core.Vec2) { e.rocks = append(e.rocks, at) }
func (e *fakeEnv) RockLanded(r *Rock)     { e.landed = append(e.landed, r) }
func (e *fakeEnv) Emit(ev Event)          { e.events = append(e.events, ev) }

func (e *fakeEnv) count(kind EventKind) int {
	n := 0
	for _, ev := range e.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func testConfig() config.GameConfig {
	return config.Default()
}
