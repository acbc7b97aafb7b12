package game

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/dragoncave/internal/config"
	"github.com/vovakirdan/dragoncave/internal/core"
	"github.com/vovakirdan/dragoncave/internal/levels"
)

// Outcome is how a tick ended for the level.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeComplete
	OutcomeDefeated
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeComplete:
		return "complete"
	case OutcomeDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// World owns every entity of the level being played.
type World struct {
	cfg    config.GameConfig
	def    levels.Definition
	number int // 1-based level number for events
	clock  *Clock
	rng    *rand.Rand

	player    *Player
	dragons   []*Dragon
	fireballs []*Fireball
	rocks     []*Rock

	platforms []core.RectF
	obstacles []core.RectF
	solids    []core.RectF // platforms followed by obstacles
	treasures []core.RectF
	exit      core.RectF

	totalTreasures int
	bigTreasure    core.RectF
	bigSpawned     bool
	bigAlive       bool

	score   int
	camera  Camera
	outcome Outcome

	newlyLanded  []*Rock
	spawnedFire  []*Fireball
	spawnedRocks []*Rock
	events       []Event
}

// NewWorld builds the entities for def with the requested number of dragons.
// rng drives dragon placement fallbacks and pickup noise rolls.
func NewWorld(def levels.Definition, number, dragons int, cfg config.GameConfig, rng *rand.Rand, tickRate int) *World {
	clock := NewClock(tickRate)
	w := &World{
		cfg:    cfg,
		def:    def,
		number: number,
		clock:  clock,
		rng:    rng,
		camera: NewCamera(cfg.World.ScreenWidth, cfg.World.ScrollThresh()),
	}

	cooldown := clock.Ticks(time.Duration(cfg.Player.RockCooldownMS) * time.Millisecond)
	w.player = newPlayer(cfg, cooldown)

	w.platforms = slices.Clone(def.Platforms)
	for _, o := range def.Obstacles {
		w.obstacles = append(w.obstacles, core.RectFromMidBottom(o, cfg.Pickups.ObstacleSize, cfg.Pickups.ObstacleSize))
	}
	w.solids = append(append(w.solids, w.platforms...), w.obstacles...)

	for _, t := range def.Treasures {
		w.treasures = append(w.treasures, core.RectFromMidBottom(t, cfg.Pickups.TreasureSize, cfg.Pickups.TreasureSize))
	}
	w.totalTreasures = len(w.treasures)

	rules := levels.SpawnRules{
		MinFraction: cfg.Dragon.SpawnMinFraction,
		GroundLevel: cfg.World.GroundLevel,
		EdgeMargin:  cfg.Dragon.SpawnEdgeMargin,
	}
	timers := newDragonTimers(cfg.Dragon, clock)
	for i, spawn := range levels.DragonSpawns(def, dragons, rules, rng) {
		w.dragons = append(w.dragons, newDragon(i, spawn, cfg.Dragon, timers))
	}

	w.exit = core.RectFromMidBottom(def.Exit, cfg.Pickups.ExitWidth, cfg.Pickups.ExitHeight)
	return w
}

// Step advances the level by one tick and reports how it ended.
// Once the outcome is no longer running, further steps are no-ops.
func (w *World) Step(in core.InputFrame) Outcome {
	if w.outcome != OutcomeRunning {
		return w.outcome
	}
	w.clock.Advance()
	env := worldEnv{w}

	if in.Has(core.ActionJump) {
		w.player.Jump(env)
	}
	if in.Has(core.ActionDropRock) {
		w.player.DropRock(env)
	}
	// A rock dropped this tick starts falling right away.
	w.flushSpawns()

	w.player.Update(env, in.Holding(core.ActionLeft), in.Holding(core.ActionRight))
	for _, d := range w.dragons {
		d.Update(env)
	}
	for _, f := range w.fireballs {
		f.Update(env)
	}
	for _, r := range w.rocks {
		r.Update(env)
	}
	w.flushSpawns()

	w.camera.Follow(w.player.Bounds.CenterX(), w.player.Vel.X, w.def.Width)

	w.collectTreasures(env)
	w.spawnBigTreasure()
	w.collectBigTreasure()

	if w.player.Bounds.Intersects(w.exit) {
		w.outcome = OutcomeComplete
	}
	// A hit in the same tick overrides reaching the exit, and the level's
	// treasures are not banked.
	if w.harmed() {
		w.outcome = OutcomeDefeated
		w.emit(Event{Kind: EventHit, Pos: w.player.Pos})
	}

	w.resolveDistractions(env)
	w.sweep()

	w.player.clampTo(w.def.Width)
	for _, d := range w.dragons {
		d.clampTo(w.def.Width)
	}
	return w.outcome
}

func (w *World) flushSpawns() {
	w.fireballs = append(w.fireballs, w.spawnedFire...)
	w.rocks = append(w.rocks, w.spawnedRocks...)
	w.spawnedFire = w.spawnedFire[:0]
	w.spawnedRocks = w.spawnedRocks[:0]
}

// collectTreasures picks up every treasure under the caver. Each pickup
// makes noise that may wake sleeping dragons; closer dragons wake more often.
func (w *World) collectTreasures(env Env) {
	kept := w.treasures[:0]
	for _, t := range w.treasures {
		if !w.player.Bounds.Intersects(t) {
			kept = append(kept, t)
			continue
		}
		w.score++
		w.emit(Event{Kind: EventTreasure, Pos: t.MidBottom(), Score: w.score})

		hearing := w.cfg.Dragon.WakeRange * w.cfg.Dragon.PickupWakeFactor
		if hearing <= 0 {
			continue
		}
		for _, d := range w.dragons {
			if d.State != DragonSleeping {
				continue
			}
			dist := w.player.Pos.DistanceTo(d.Pos)
			chance := max(0, (hearing-dist)/hearing)
			if w.rng.Float64() < chance*w.cfg.Dragon.PickupWakeCap {
				d.WakeUp(env)
			}
		}
	}
	w.treasures = kept
}

func (w *World) spawnBigTreasure() {
	if w.totalTreasures == 0 || len(w.treasures) > 0 || w.bigSpawned {
		return
	}
	size := w.cfg.Pickups.BigTreasureSize
	w.bigTreasure = core.RectFromMidBottom(w.exit.MidBottom(), size, size)
	w.bigSpawned = true
	w.bigAlive = true
	w.emit(Event{Kind: EventBigTreasureSpawned, Pos: w.exit.MidBottom()})
}

func (w *World) collectBigTreasure() {
	if !w.bigAlive || !w.player.Bounds.Intersects(w.bigTreasure) {
		return
	}
	w.score *= 2
	w.bigAlive = false
	w.emit(Event{Kind: EventBigTreasure, Pos: w.bigTreasure.MidBottom(), Score: w.score})
}

// harmed reports contact with an awake dragon or a fireball. Hitboxes are
// shrunk so grazing contact is forgiven. Every fireball touching the caver
// is consumed.
func (w *World) harmed() bool {
	hit := false

	ratio := w.cfg.Dragon.HitboxRatio
	body := w.player.Bounds.Inflate(ratio)
	for _, d := range w.dragons {
		if d.Awake() && body.Intersects(d.Bounds.Inflate(ratio)) {
			hit = true
			break
		}
	}

	ratio = w.cfg.Fireball.HitboxRatio
	body = w.player.Bounds.Inflate(ratio)
	for _, f := range w.fireballs {
		if !f.Dead && body.Intersects(f.Bounds.Inflate(ratio)) {
			f.Dead = true
			hit = true
		}
	}
	return hit
}

// resolveDistractions lets each rock that landed this tick lure the first
// awake dragon within hearing range. A rock that lured a dragon is used up.
func (w *World) resolveDistractions(env Env) {
	for _, r := range w.newlyLanded {
		if r.Dead {
			continue
		}
		for _, d := range w.dragons {
			if !d.Awake() || r.LandPos.DistanceTo(d.Pos) >= w.cfg.Rock.HearingRadius {
				continue
			}
			d.Distract(env, r.LandPos)
			r.Dead = true
			break
		}
	}
	w.newlyLanded = w.newlyLanded[:0]
}

// sweep drops retired projectiles.
func (w *World) sweep() {
	fire := w.fireballs[:0]
	for _, f := range w.fireballs {
		if !f.Dead {
			fire = append(fire, f)
		}
	}
	clear(w.fireballs[len(fire):])
	w.fireballs = fire

	rocks := w.rocks[:0]
	for _, r := range w.rocks {
		if !r.Dead {
			rocks = append(rocks, r)
		}
	}
	clear(w.rocks[len(rocks):])
	w.rocks = rocks
}

func (w *World) emit(e Event) {
	if e.Level == 0 {
		e.Level = w.number
	}
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the events recorded since the last call.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}

// Player returns the caver.
func (w *World) Player() *Player { return w.player }

// Dragons returns the level's dragons in spawn order.
func (w *World) Dragons() []*Dragon { return w.dragons }

// Fireballs returns the live fireballs.
func (w *World) Fireballs() []*Fireball { return w.fireballs }

// Rocks returns the dropped rocks still in the level.
func (w *World) Rocks() []*Rock { return w.rocks }

// Treasures returns the bounds of the uncollected treasures.
func (w *World) Treasures() []core.RectF { return w.treasures }

// BigTreasure returns the big treasure bounds while it can be collected.
func (w *World) BigTreasure() (core.RectF, bool) { return w.bigTreasure, w.bigAlive }

// Exit returns the exit bounds.
func (w *World) Exit() core.RectF { return w.exit }

// Platforms returns the platform rectangles.
func (w *World) Platforms() []core.RectF { return w.platforms }

// Obstacles returns the obstacle rectangles.
func (w *World) Obstacles() []core.RectF { return w.obstacles }

// Score returns the treasures collected on this level.
func (w *World) Score() int { return w.score }

// Camera returns the current view offset.
func (w *World) Camera() Camera { return w.camera }

// Width returns the level width.
func (w *World) Width() float64 { return w.def.Width }

// Name returns the level name.
func (w *World) Name() string { return w.def.Name }

// Now returns the ticks elapsed on this level.
func (w *World) Now() Tick { return w.clock.Now() }

// Outcome returns how the level currently stands.
func (w *World) Outcome() Outcome { return w.outcome }

// worldEnv is the Env handed to entities during a tick.
type worldEnv struct {
	w *World
}

func (e worldEnv) Now() Tick               { return e.w.clock.Now() }
func (e worldEnv) Solids() []core.RectF    { return e.w.solids }
func (e worldEnv) Obstacles() []core.RectF { return e.w.obstacles }
func (e worldEnv) PlayerPos() core.Vec2    { return e.w.player.Pos }
func (e worldEnv) Emit(ev Event)           { e.w.emit(ev) }

func (e worldEnv) LevelBounds() core.RectF {
	return core.R(0, 0, e.w.def.Width, e.w.cfg.World.ScreenHeight)
}

func (e worldEnv) SpawnFireball(at, dir core.Vec2) {
	e.w.spawnedFire = append(e.w.spawnedFire, newFireball(at, dir, e.w.cfg.Fireball))
}

func (e worldEnv) SpawnRock(at core.Vec2) {
	e.w.spawnedRocks = append(e.w.spawnedRocks, newRock(at, e.w.cfg))
}

func (e worldEnv) RockLanded(r *Rock) {
	e.w.newlyLanded = append(e.w.newlyLanded, r)
}
