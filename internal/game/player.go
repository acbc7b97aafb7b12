package game

import (
	"math"

	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
)

// Player is the caver.
type Player struct {
	Pos      core.Vec2 // Bottom center
	Vel      core.Vec2
	Acc      core.Vec2
	Bounds   core.RectF
	Grounded bool

	lastDrop     Tick
	rockCooldown Tick

	cfg         config.PlayerConfig
	groundLevel float64
	safetyFloor float64
}

func newPlayer(cfg config.GameConfig, rockCooldown Tick) *Player {
	p := &Player{
		cfg:          cfg.Player,
		groundLevel:  cfg.World.GroundLevel,
		safetyFloor:  cfg.World.SafetyFloor,
		rockCooldown: rockCooldown,
		lastDrop:     -rockCooldown - 1, // First drop of a level is allowed
	}
	p.place(core.V(cfg.Player.StartX, cfg.Player.StartBottom))
	return p
}

// place moves the caver so its bottom center sits at pos.
func (p *Player) place(pos core.Vec2) {
	p.Pos = pos
	p.Bounds = core.RectFromMidBottom(pos, p.cfg.Width, p.cfg.Height)
}

// syncFromBounds re-derives Pos after Bounds was pushed out of a collision.
func (p *Player) syncFromBounds() {
	p.Pos = p.Bounds.MidBottom()
}

// Jump starts a jump if a probe one unit below the caver touches a surface.
func (p *Player) Jump(env Env) bool {
	probe := p.Bounds.Move(0, 1)
	for _, s := range env.Solids() {
		if probe.Intersects(s) {
			p.Vel.Y = -p.cfg.JumpImpulse
			env.Emit(Event{Kind: EventJump, Pos: p.Pos})
			return true
		}
	}
	return false
}

// DropRock drops a rock from the caver's center when off cooldown.
func (p *Player) DropRock(env Env) bool {
	now := env.Now()
	if now-p.lastDrop <= p.rockCooldown {
		return false
	}
	p.lastDrop = now
	env.SpawnRock(p.Bounds.Center())
	env.Emit(Event{Kind: EventRockDropped, Pos: p.Bounds.Center()})
	return true
}

// Update advances caver physics by one tick.
func (p *Player) Update(env Env, left, right bool) {
	p.Acc = core.V(0, p.cfg.Gravity)
	if left {
		p.Acc.X = -p.cfg.Acceleration
	}
	if right {
		p.Acc.X = p.cfg.Acceleration
	}
	if !left && !right {
		p.Acc.X += p.Vel.X * p.cfg.Friction
	}

	p.Vel = p.Vel.Add(p.Acc)
	if math.Abs(p.Vel.X) > p.cfg.MaxSpeed {
		p.Vel.X = math.Copysign(p.cfg.MaxSpeed, p.Vel.X)
	}
	if math.Abs(p.Vel.X) < p.cfg.StopThreshold {
		p.Vel.X = 0
	}

	solids := env.Solids()

	// Horizontal: move, then push out along X.
	p.place(core.V(p.Pos.X+p.Vel.X, p.Pos.Y))
	for _, s := range solids {
		if !p.Bounds.Intersects(s) {
			continue
		}
		if p.Vel.X > 0 {
			p.Bounds.X = s.Left() - p.Bounds.W
		} else if p.Vel.X < 0 {
			p.Bounds.X = s.Right()
		}
		p.syncFromBounds()
		p.Vel.X = 0
	}

	// Vertical: move, then land or bump the ceiling.
	p.place(core.V(p.Pos.X, p.Pos.Y+p.Vel.Y))
	p.Grounded = false
	for _, s := range solids {
		if !p.Bounds.Intersects(s) {
			continue
		}
		if p.Vel.Y > 0 {
			p.Bounds.Y = s.Top() - p.Bounds.H
			p.Grounded = true
			p.Vel.Y = 0
		} else if p.Vel.Y < 0 {
			p.Bounds.Y = s.Bottom()
			p.Vel.Y = 0
		}
		p.syncFromBounds()
	}

	p.clampTo(env.LevelBounds().W)

	if p.Bounds.Bottom() > p.safetyFloor {
		p.Bounds.Y = p.groundLevel - p.Bounds.H
		p.Grounded = true
		p.Vel.Y = 0
	}
	p.syncFromBounds()
}

// clampTo keeps the caver inside [0, width], stopping it at the edge.
func (p *Player) clampTo(width float64) {
	if p.Bounds.Left() < 0 {
		p.Bounds.X = 0
		p.Vel.X = 0
	}
	if p.Bounds.Right() > width {
		p.Bounds.X = width - p.Bounds.W
		p.Vel.X = 0
	}
	p.syncFromBounds()
}
