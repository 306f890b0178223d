package herostep

import "codeberg.org/anaseto/gruid"

// Combat resolves the hero attacking a monster. Attack reports whether the
// attack took the hero's turn.
type Combat interface {
	Attack(m *Monster) bool
}

// CombatFunc adapts a function to the Combat interface.
type CombatFunc func(m *Monster) bool

func (f CombatFunc) Attack(m *Monster) bool { return f(m) }

// PickupFilter decides which objects autopickup takes.
type PickupFilter interface {
	Wants(o Object) bool
}

// Inventory receives picked up objects. Add reports whether the object could
// be taken; a refused object stays on the floor.
type Inventory interface {
	Add(o Object) bool
}

// InventoryFunc adapts a function to the Inventory interface.
type InventoryFunc func(o Object) bool

func (f InventoryFunc) Add(o Object) bool { return f(o) }

// BoulderHook is notified after the hero pushed a boulder from one cell to
// another. filled is true when the boulder ended up filling a pit or water.
type BoulderHook interface {
	BoulderPushed(from, to gruid.Point, filled bool)
}

// BoulderFunc adapts a function to the BoulderHook interface.
type BoulderFunc func(from, to gruid.Point, filled bool)

func (f BoulderFunc) BoulderPushed(from, to gruid.Point, filled bool) { f(from, to, filled) }

// BallChain drags the iron ball of a punished hero. Drag reports whether
// the hero may move from one cell to the other.
type BallChain interface {
	Drag(from, to gruid.Point) bool
}

// Vision answers what the hero can perceive.
type Vision interface {
	CanSee(p gruid.Point) bool // whether the cell is in view
	CanSpot(m *Monster) bool   // whether the monster is perceived
	Update(l *Level, h *Hero)  // recompute after the hero moved
}

// Hooks groups the engine's collaborators. Nil fields get defaults: a
// harmless combat (bumping a monster reports the blow and takes the turn),
// a TypeFilter built from the configuration, objects vanish into an
// unlimited pack, no boulder notification, and a FOVVision.
type Hooks struct {
	Combat    Combat
	Pickup    PickupFilter
	Inventory Inventory
	Boulders  BoulderHook
	BallChain BallChain
	Vision    Vision
	Sink      Sink
	AfterTurn func(g *Game) // called at the end of every turn (monster moves)
}
