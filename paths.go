package herostep

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// unreachable is the maximal cost of a travel wave.
const unreachable = 9999

// travelPath implements paths.Pather for the reverse travel wave from a
// goal: the neighbors of p are the discovered cells from which the hero
// could step into p.
type travelPath struct {
	g    *Game
	goal gruid.Point
	nbs  paths.Neighbors
}

func (tp *travelPath) Neighbors(p gruid.Point) []gruid.Point {
	g := tp.g
	return tp.nbs.All(p, func(q gruid.Point) bool {
		return inMap(q) && g.Level.IsSeen(q) && g.travelLegal(q, p, tp.goal)
	})
}

// explorePath implements paths.Pather for the forward wave from the hero,
// used to guess a reachable cell close to an unreachable destination.
type explorePath struct {
	g   *Game
	nbs paths.Neighbors
}

func (ep *explorePath) Neighbors(p gruid.Point) []gruid.Point {
	g := ep.g
	return ep.nbs.All(p, func(q gruid.Point) bool {
		return inMap(q) && g.Level.IsSeen(q) && g.canStep(p, q, testTrav)
	})
}

// travelLegal reports whether travel may step from one cell to the other.
// The goal itself may hold a known trap or liquid: that's where the hero
// asked to go.
func (g *Game) travelLegal(from, to, goal gruid.Point) bool {
	if g.canStep(from, to, testTrav) {
		return true
	}
	return to == goal && g.canStep(from, to, testMove)
}

// reverseWave fills g.PR with travel costs towards goal.
func (g *Game) reverseWave(goal gruid.Point) {
	tp := &travelPath{g: g, goal: goal}
	g.PR.BreadthFirstMap(tp, []gruid.Point{goal}, unreachable)
}

// travelGoal returns the cell travel heads for when aiming at dest, and
// leaves its reverse wave in g.PR. When dest is undiscovered or cannot be
// reached, the goal is the reachable discovered cell closest to it, and
// guess is true.
func (g *Game) travelGoal(dest gruid.Point) (goal gruid.Point, guess, ok bool) {
	h := g.Hero
	if inMap(dest) && g.Level.IsSeen(dest) {
		g.reverseWave(dest)
		if g.PR.BreadthFirstMapAt(h.P) <= unreachable {
			return dest, false, true
		}
	}
	goal, ok = g.guessGoal(dest)
	if !ok {
		return InvalidPos, true, false
	}
	g.reverseWave(goal)
	return goal, true, true
}

// guessGoal returns the reachable discovered cell closest to dest (by
// squared distance, then by path length, then in scan order). It fails when
// the best candidate is the hero's own cell.
func (g *Game) guessGoal(dest gruid.Point) (gruid.Point, bool) {
	h := g.Hero
	ep := &explorePath{g: g}
	g.PR.BreadthFirstMap(ep, []gruid.Point{h.P}, unreachable)
	best := InvalidPos
	bestDist, bestCost := 0, 0
	for y := range MapHeight {
		for x := range MapWidth {
			p := gruid.Point{x, y}
			if !g.Level.IsSeen(p) {
				continue
			}
			c := g.PR.BreadthFirstMapAt(p)
			if c > unreachable {
				continue
			}
			d := dist2(p, dest)
			if best == InvalidPos || d < bestDist || d == bestDist && c < bestCost {
				best, bestDist, bestCost = p, d, c
			}
		}
	}
	if best == InvalidPos || best == h.P {
		return InvalidPos, false
	}
	return best, true
}

// nextTravelCell returns the neighbor of p with the lowest cost in the
// current reverse wave, scanning directions in order. The neighbor must
// also be enterable right now, or be a closed door the hero would open.
func (g *Game) nextTravelCell(p, goal gruid.Point) (gruid.Point, bool) {
	cost := g.PR.BreadthFirstMapAt(p)
	if cost > unreachable {
		return p, false
	}
	next, ncost := p, cost
	for q := range Neighbors(p) {
		if !g.travelLegal(p, q, goal) || !g.canStep(p, q, testMove) && !g.canOpen(q) {
			continue
		}
		if c := g.PR.BreadthFirstMapAt(q); c < ncost {
			next, ncost = q, c
		}
	}
	return next, next != p
}
