package game

import (
	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
)

// Fireball flies in a straight line at constant speed.
type Fireball struct {
	Pos    core.Vec2 // Center
	Vel    core.Vec2
	Bounds core.RectF
	Dead   bool

	size float64
}

func newFireball(at, dir core.Vec2, cfg config.FireballConfig) *Fireball {
	f := &Fireball{
		Vel:  dir.Scale(cfg.Speed),
		size: cfg.Size,
	}
	f.place(at)
	return f
}

func (f *Fireball) place(center core.Vec2) {
	f.Pos = center
	f.Bounds = core.RectFromCenter(center, f.size, f.size)
}

// Update moves the fireball and retires it once it leaves the level or
// hits an obstacle.
func (f *Fireball) Update(env Env) {
	f.place(f.Pos.Add(f.Vel))
	if !f.Bounds.Intersects(env.LevelBounds()) {
		f.Dead = true
		return
	}
	for _, o := range env.Obstacles() {
		if f.Bounds.Intersects(o) {
			f.Dead = true
			return
		}
	}
}

// Rock is a rock the caver dropped. It falls until it lands, then lies
// still; a landed rock is a noise dragons can hear once.
type Rock struct {
	Pos     core.Vec2 // Center
	VelY    float64
	Bounds  core.RectF
	Landed  bool
	LandPos core.Vec2 // Bottom center where it touched down
	Dead    bool

	size         float64
	gravity      float64
	groundLevel  float64
	screenHeight float64
}

func newRock(at core.Vec2, cfg config.GameConfig) *Rock {
	r := &Rock{
		size:         cfg.Rock.Size,
		gravity:      cfg.Rock.Gravity,
		groundLevel:  cfg.World.GroundLevel,
		screenHeight: cfg.World.ScreenHeight,
	}
	r.place(at)
	return r
}

func (r *Rock) place(center core.Vec2) {
	r.Pos = center
	r.Bounds = core.RectFromCenter(center, r.size, r.size)
}

// Update applies gravity until the rock lands on the ground or a surface.
func (r *Rock) Update(env Env) {
	if r.Landed {
		return
	}
	r.VelY += r.gravity
	r.place(core.V(r.Pos.X, r.Pos.Y+r.VelY))

	landed := false
	if r.Bounds.Bottom() >= r.groundLevel {
		r.Bounds.Y = r.groundLevel - r.Bounds.H
		landed = true
	} else {
		for _, s := range env.Solids() {
			if r.Bounds.Intersects(s) {
				r.Bounds.Y = s.Top() - r.Bounds.H
				landed = true
				break
			}
		}
	}

	if landed {
		r.Landed = true
		r.VelY = 0
		r.Pos = r.Bounds.Center()
		r.LandPos = r.Bounds.MidBottom()
		env.RockLanded(r)
	}

	if r.Bounds.Top() > r.screenHeight {
		r.Dead = true
	}
}
