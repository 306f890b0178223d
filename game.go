package herostep

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Game holds everything the movement engine reads and writes. It is built
// once, fully initialized, by New.
type Game struct {
	Hero   *Hero
	Level  *Level
	Config Config
	Hooks  Hooks
	Turn   int              // current turn
	Logs   *Logs            // default message sink (nil if Hooks.Sink is set)
	Trace  *DrawTrace       // if non-nil, records every random draw
	Faults []Fault          // internal-consistency faults reported so far
	PR     *paths.PathRange // path range for travel waves

	rand     Rand
	sink     Sink
	vision   Vision
	pickup   PickupFilter
	ctx      moveContext
	auto     auto
	pending  *step // step suspended on a prompt
	busy     bool  // a step or automated movement is being resolved
	lastPush int   // turn of the last boulder push
}

// New returns a game ready to resolve hero movement on the given level. A
// nil rng gets a default seeded source; nil hooks get defaults.
func New(cfg Config, lvl *Level, h *Hero, hooks Hooks, rng Rand) *Game {
	g := &Game{
		Hero:   h,
		Level:  lvl,
		Config: cfg,
		Hooks:  hooks,
		PR:     paths.NewPathRange(gruid.NewRange(0, 0, MapWidth, MapHeight)),
		rand:   rng,

		lastPush: -unreachable,
	}
	if g.rand == nil {
		g.rand = NewRand(1)
	}
	if hooks.Sink != nil {
		g.sink = hooks.Sink
	} else {
		g.Logs = &Logs{}
		g.sink = g.Logs
	}
	if hooks.Vision != nil {
		g.vision = hooks.Vision
	} else {
		g.vision = NewFOVVision()
	}
	if hooks.Pickup != nil {
		g.pickup = hooks.Pickup
	} else {
		g.pickup = TypeFilter(cfg.PickupTypes)
	}
	if h.Statuses == nil {
		h.Statuses = make(Statuses, NumStatuses)
	}
	h.Room = lvl.RoomAt(h.P)
	g.UpdateVision()
	return g
}

// UpdateVision recomputes what the hero sees and discovers the cells in
// view. It has to be called after the level changed outside of the engine.
func (g *Game) UpdateVision() {
	g.Level.Discover(g.Hero.P)
	g.vision.Update(g.Level, g.Hero)
}

func (g *Game) canSee(p gruid.Point) bool {
	return g.vision.CanSee(p)
}

func (g *Game) canSpot(m *Monster) bool {
	return g.vision.CanSpot(m)
}

// safePet reports whether bumping into the monster swaps places with it
// rather than attacking it.
func (g *Game) safePet(m *Monster) bool {
	h := g.Hero
	return m.Tame && g.Config.SafePet && g.canSpot(m) &&
		!h.Has(StatusConfusion) && !h.Has(StatusStun)
}

// EndTurn processes the end of a turn: hero statuses time out and any
// pending energy drain progresses. The engine calls it after every step that
// consumed time; callers call it for turns spent otherwise (waiting, or
// being helpless).
func (g *Game) EndTurn() {
	g.Turn++
	h := g.Hero
	for st := range NumStatuses {
		if h.Statuses[st] <= 0 {
			continue
		}
		h.Statuses[st]--
		if h.Statuses[st] == 0 {
			g.statusEnded(st)
		}
	}
	if h.drain > 0 {
		h.drain--
		if h.Energy > 0 {
			h.Energy--
		}
	}
	if g.Hooks.AfterTurn != nil {
		g.Hooks.AfterTurn(g)
	}
	if g.Logs != nil {
		g.Logs.Tick()
	}
}

func (g *Game) statusEnded(st Status) {
	switch st {
	case StatusBlind:
		g.LogStyled("You can see again.", LogStatusEnd)
		g.UpdateVision()
	case StatusStun:
		g.LogStyled("You feel a bit steadier now.", LogStatusEnd)
	case StatusConfusion:
		g.LogStyled("You feel less confused now.", LogStatusEnd)
	case StatusSleep:
		g.LogStyled("You wake up.", LogStatusEnd)
	case StatusParalysis:
		g.LogStyled("You can move again.", LogStatusEnd)
	}
}
