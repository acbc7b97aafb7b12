package game

import (
	"testing"

	"github.com/vovakirdan/dragoncave/internal/core"
)

func TestFireballFliesStraight(t *testing.T) {
	env := newFakeEnv()
	f := newFireball(core.V(500, 300), core.V(-1, 0), testConfig().Fireball)

	f.Update(env)

	if f.Pos != core.V(495, 300) {
		t.Errorf("Pos = %+v, expected (495, 300)", f.Pos)
	}
	if f.Dead {
		t.Error("fireball inside the level should stay alive")
	}
}

func TestFireballRetired(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		dir   core.Vec2
		setup func(*fakeEnv)
	}{
		{
			name:  "leaves the level on the left",
			start: core.V(2, 300),
			dir:   core.V(-1, 0),
		},
		{
			name:  "leaves the level at the top",
			start: core.V(500, 5),
			dir:   core.V(0, -1),
		},
		{
			name:  "hits an obstacle",
			start: core.V(480, 535),
			dir:   core.V(1, 0),
			setup: func(e *fakeEnv) {
				e.obstacles = []core.RectF{core.R(490, 510, 50, 50)}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newFakeEnv()
			if tc.setup != nil {
				tc.setup(env)
			}
			f := newFireball(tc.start, tc.dir, testConfig().Fireball)
			for range 3 {
				f.Update(env)
			}
			if !f.Dead {
				t.Errorf("fireball at %+v should be retired", f.Pos)
			}
		})
	}
}

func TestFireballPassesPlatforms(t *testing.T) {
	env := newFakeEnv()
	env.solids = append(env.solids, core.R(490, 290, 100, 20))
	f := newFireball(core.V(480, 300), core.V(1, 0), testConfig().Fireball)

	for range 5 {
		f.Update(env)
	}
	if f.Dead {
		t.Error("fireballs should fly through platforms")
	}
}

func TestRockLandsOnGround(t *testing.T) {
	env := newFakeEnv()
	r := newRock(core.V(400, 530), testConfig())

	for range 60 {
		r.Update(env)
	}

	if !r.Landed {
		t.Fatal("rock should have landed")
	}
	if r.Bounds.Bottom() != 560 {
		t.Errorf("Bottom() = %v, expected ground level 560", r.Bounds.Bottom())
	}
	if r.LandPos != core.V(400, 560) {
		t.Errorf("LandPos = %+v, expected (400, 560)", r.LandPos)
	}
	if len(env.landed) != 1 {
		t.Errorf("landing reported %d times, expected once", len(env.landed))
	}
}

func TestRockLandsOnPlatform(t *testing.T) {
	env := newFakeEnv()
	env.solids = append(env.solids, core.R(350, 450, 150, 20))
	r := newRock(core.V(400, 400), testConfig())

	for range 60 {
		r.Update(env)
	}

	if !r.Landed || r.Bounds.Bottom() != 450 {
		t.Errorf("rock should rest on the platform top, got landed=%v bottom=%v", r.Landed, r.Bounds.Bottom())
	}
}
