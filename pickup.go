package herostep

// pickupHere handles the objects at the hero's new position: runs stop on
// them, and autopickup takes the wanted ones.
func (g *Game) pickupHere(s *step) {
	l, h := g.Level, g.Hero
	if len(l.ObjectsAt(h.P)) == 0 {
		return
	}
	if !s.travelling() && !s.intent.NoPickup {
		s.halt = true
	}
	picked := 0
	if g.Config.Autopickup && !s.intent.NoPickup && !h.Airborne() &&
		!(s.travelling() && h.P != g.auto.dest) {
		picked = g.autopickup()
	}
	if picked > 0 || s.travelling() && h.P != g.auto.dest {
		return
	}
	switch objs := l.ObjectsAt(h.P); {
	case len(objs) == 0:
	case len(objs) == 1:
		g.Logf("You see here %s.", objs[0])
	case len(objs) >= 10:
		g.Log("There are many objects here.")
	default:
		g.Log("There are several objects here.")
	}
}

// autopickup picks up gold first, then the first other wanted object. It
// returns the number of objects taken.
func (g *Game) autopickup() int {
	l, h := g.Level, g.Hero
	n := 0
	for _, gold := range []bool{true, false} {
		objs := l.ObjectsAt(h.P)
		for i, o := range objs {
			if (o.Class == ClassCoin) != gold || !g.pickup.Wants(o) {
				continue
			}
			if inv := g.Hooks.Inventory; inv != nil && !inv.Add(o) {
				g.Logf("You cannot carry %s.", o)
				continue
			}
			l.removeObject(h.P, i)
			g.Logf("You pick up %s.", o)
			n++
			break
		}
	}
	return n
}

// describeHere mentions noteworthy terrain when the hero stops on it.
func (g *Game) describeHere(s *step) {
	l, h := g.Level, g.Hero
	if !g.Config.Verbose || s.run != runNone {
		return
	}
	t := l.At(h.P)
	switch {
	case h.P == l.Branch && (t == StairsUp || t == StairsDown):
		g.Log("There is a branch staircase here.")
	case IsFurniture(t):
		g.Logf("There is %s here.", An(TerrainName(t)))
	}
}
