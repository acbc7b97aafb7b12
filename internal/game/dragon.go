package game

import (
	"time"

	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
)

// DragonState is the behavior state of a dragon.
type DragonState int

const (
	DragonSleeping DragonState = iota
	DragonWaking
	DragonChasing
	DragonDistracted
)

// String returns a human-readable name for the state.
func (s DragonState) String() string {
	switch s {
	case DragonSleeping:
		return "sleeping"
	case DragonWaking:
		return "waking"
	case DragonChasing:
		return "chasing"
	case DragonDistracted:
		return "distracted"
	default:
		return "unknown"
	}
}

// Dragon is a cave guardian. It sleeps until the caver comes close, then
// chases and breathes fire. Landed rocks nearby lure it away for a while.
type Dragon struct {
	Index  int
	Pos    core.Vec2 // Center
	Vel    core.Vec2
	Bounds core.RectF
	State  DragonState

	lastFire     Tick
	target       core.Vec2
	distractedAt Tick

	cfg    config.DragonConfig
	timers dragonTimers
}

// dragonTimers are the dragon intervals in ticks.
type dragonTimers struct {
	fire        Tick
	distraction Tick
}

func newDragonTimers(cfg config.DragonConfig, clock *Clock) dragonTimers {
	return dragonTimers{
		fire:        clock.Ticks(time.Duration(cfg.FireIntervalMS) * time.Millisecond),
		distraction: clock.Ticks(time.Duration(cfg.DistractionMS) * time.Millisecond),
	}
}

// newDragon creates a sleeping dragon standing on spawn (x, yBottom).
func newDragon(index int, spawn core.Vec2, cfg config.DragonConfig, timers dragonTimers) *Dragon {
	d := &Dragon{
		Index:  index,
		State:  DragonSleeping,
		cfg:    cfg,
		timers: timers,
	}
	d.Bounds = core.RectFromMidBottom(spawn, cfg.Width, cfg.Height)
	d.Pos = d.Bounds.Center()
	return d
}

func (d *Dragon) place(center core.Vec2) {
	d.Pos = center
	d.Bounds = core.RectFromCenter(center, d.cfg.Width, d.cfg.Height)
}

// Awake reports whether the dragon is dangerous to touch.
func (d *Dragon) Awake() bool {
	return d.State != DragonSleeping
}

// Target returns the distraction point while distracted.
func (d *Dragon) Target() (core.Vec2, bool) {
	if d.State != DragonDistracted {
		return core.Vec2{}, false
	}
	return d.target, true
}

// WakeUp rouses a sleeping dragon straight into the chase. It is a no-op
// for a dragon that is already awake.
func (d *Dragon) WakeUp(env Env) bool {
	if d.State != DragonSleeping {
		return false
	}
	d.State = DragonWaking
	env.Emit(Event{Kind: EventRoar, Pos: d.Pos, Dragon: d.Index})
	d.State = DragonChasing
	d.lastFire = env.Now()
	return true
}

// Distract sends an awake dragon toward target, restarting the distraction
// timer. Sleeping dragons ignore it.
func (d *Dragon) Distract(env Env, target core.Vec2) bool {
	if d.State != DragonChasing && d.State != DragonDistracted {
		return false
	}
	d.State = DragonDistracted
	d.target = target
	d.distractedAt = env.Now()
	env.Emit(Event{Kind: EventDistracted, Pos: target, Dragon: d.Index})
	return true
}

// Update advances the dragon by one tick.
func (d *Dragon) Update(env Env) {
	switch d.State {
	case DragonSleeping:
		if d.Pos.DistanceTo(env.PlayerPos()) < d.cfg.WakeRange {
			d.WakeUp(env)
		}

	case DragonWaking:
		d.State = DragonChasing

	case DragonDistracted:
		if env.Now()-d.distractedAt > d.timers.distraction {
			d.State = DragonChasing
			d.target = core.Vec2{}
			env.Emit(Event{Kind: EventCalmed, Pos: d.Pos, Dragon: d.Index})
			return
		}
		if d.Pos.DistanceTo(d.target) < d.cfg.ArrivalRadius {
			d.Vel = core.Vec2{}
			return
		}
		d.moveToward(d.target)

	case DragonChasing:
		player := env.PlayerPos()
		if d.Pos.DistanceTo(player) > d.cfg.ChaseEpsilon {
			d.moveToward(player)
		}
		d.breatheFire(env)
	}
}

func (d *Dragon) moveToward(target core.Vec2) {
	dir, ok := target.Sub(d.Pos).Normalize()
	if !ok {
		d.Vel = core.Vec2{}
		return
	}
	d.Vel = dir.Scale(d.cfg.Speed)
	d.place(d.Pos.Add(d.Vel))
}

// breatheFire shoots at the caver once the fire interval has passed.
// A caver exactly at the dragon's center gives no direction; the shot is
// skipped but the interval still restarts.
func (d *Dragon) breatheFire(env Env) {
	now := env.Now()
	if now-d.lastFire <= d.timers.fire {
		return
	}
	d.lastFire = now

	dir, ok := env.PlayerPos().Sub(d.Pos).Normalize()
	if !ok {
		return
	}
	env.SpawnFireball(d.Bounds.Center(), dir)
	env.Emit(Event{Kind: EventFireball, Pos: d.Pos, Dragon: d.Index})
}

// clampTo keeps the dragon inside [0, width].
func (d *Dragon) clampTo(width float64) {
	if d.Bounds.Left() < 0 {
		d.place(core.V(d.Bounds.W/2, d.Pos.Y))
	}
	if d.Bounds.Right() > width {
		d.place(core.V(width-d.Bounds.W/2, d.Pos.Y))
	}
}
