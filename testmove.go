package herostep

import "codeberg.org/anaseto/gruid"

// moveMode selects the rules of a side-effect free move test.
type moveMode int

const (
	testMove moveMode = iota // an actual step would succeed
	testTrav                 // travel may plan through the step
)

// canStep reports whether the hero could step from one cell to an adjacent
// one, using only the hero's knowledge of the level. It has no side
// effects and draws no random numbers.
func (g *Game) canStep(from, to gruid.Point, mode moveMode) bool {
	l, h := g.Level, g.Hero
	if !inMap(to) {
		return false
	}
	dir := to.Sub(from)
	pw := h.Is(PropPassesWalls)
	t := l.At(to)
	switch {
	case pw:
	case IsObstructed(t):
		return false
	case t == IronBars && !h.Is(PropVerySmall):
		return false
	case l.ClosedDoor(to) && (mode != testTrav || isDiagonal(dir)):
		return false
	case isDiagonal(dir) && (l.IntactDoorway(to) || l.IntactDoorway(from)):
		return false
	case isDiagonal(dir) && g.badRock(gruid.Point{from.X, to.Y}) && g.badRock(gruid.Point{to.X, from.Y}) &&
		(h.Is(PropBig) || h.Load > maxSqueezeLoad):
		return false
	case l.BoulderAt(to):
		return false
	}
	if mode == testTrav {
		if tr := l.TrapAt(to); tr != nil && tr.Seen {
			return false
		}
		if IsPoolOrLava(t) && l.IsSeen(to) && !h.Airborne() {
			return false
		}
	}
	return true
}

// canOpen reports whether a step into the closed door at p would try to
// open it with a chance of success.
func (g *Game) canOpen(p gruid.Point) bool {
	l := g.Level
	return l.ClosedDoor(p) && l.DoorAt(p)&DoorLocked == 0 && g.autoOpens() &&
		!g.Hero.Is(PropVerySmall)
}
