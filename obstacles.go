package herostep

import "codeberg.org/anaseto/gruid"

// gateBoulder checks that the boulders at the destination can be pushed.
// The push itself happens on commit, once the later gates let the hero go.
func (g *Game) gateBoulder(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	if !l.BoulderAt(s.to) || h.Is(PropPassesWalls) {
		return next()
	}
	if s.run >= runRush && !h.Has(StatusBlind) {
		g.mention("A boulder blocks your path.")
		return s.stop(false, ReasonBoulderAhead)
	}
	ok, squeeze := g.canPushBoulder(s)
	switch {
	case ok:
		s.push = true
	case squeeze && h.Is(PropVerySmall):
		g.Log("However, you can squeeze yourself into a small crevice below the boulder.")
	default:
		return s.stop(false, ReasonBoulderStuck)
	}
	return next()
}

// moveBoulders pushes every boulder at the destination one cell further. It
// reports whether the hero may enter the destination.
func (g *Game) moveBoulders(s *step) bool {
	for g.Level.BoulderAt(s.to) {
		ok, squeeze := g.canPushBoulder(s)
		if !ok {
			if squeeze && g.Hero.Is(PropVerySmall) {
				g.Log("However, you can squeeze yourself into a small crevice below the boulder.")
				return true
			}
			return false
		}
		if !g.pushBoulder(s) {
			return false
		}
	}
	return true
}

// canPushBoulder reports whether the top boulder at the destination can be
// pushed, without moving it. When it cannot, squeeze tells whether a very
// small hero could still slip in.
func (g *Game) canPushBoulder(s *step) (ok, squeeze bool) {
	l, h := g.Level, g.Hero
	if h.Is(PropLevitation) || l.AirLevel {
		g.Log("You don't have enough leverage to push the boulder.")
		return false, false
	}
	if h.Is(PropVerySmall) {
		g.Log("You're too small to push that boulder.")
		return false, true
	}
	rx := s.to.Add(s.dir)
	if !g.boulderFits(rx, s.dir) {
		g.Log("You try to move the boulder, but in vain.")
		return false, true
	}
	if m := l.MonsterAt(rx); m != nil {
		if g.canSpot(m) {
			g.Logf("There's %s on the other side.", An(m.Name))
		} else {
			g.Log("You hear a monster behind the boulder.")
		}
		if g.Config.Verbose {
			g.Log("Perhaps that's why you cannot move past it.")
		}
		return false, true
	}
	if l.ClosedDoor(rx) {
		g.Log("You try to move the boulder, but in vain.")
		return false, true
	}
	return true, false
}

// pushBoulder rolls the top boulder at the destination one cell further.
func (g *Game) pushBoulder(s *step) bool {
	l := g.Level
	rx := s.to.Add(s.dir)
	if !l.removeBoulder(s.to) {
		g.impossible("boulder", "no boulder to push at %v", s.to)
		return false
	}
	if g.Turn > g.lastPush+2 {
		g.Log("With great effort you move the boulder.")
	}
	g.lastPush = g.Turn
	filled := g.dropBoulder(rx)
	if g.Hooks.Boulders != nil {
		g.Hooks.Boulders.BoulderPushed(s.to, rx, filled)
	}
	g.UpdateVision()
	return true
}

// boulderFits reports whether a boulder can be rolled into p, moving in
// direction dir.
func (g *Game) boulderFits(p, dir gruid.Point) bool {
	l := g.Level
	if !inMap(p) {
		return false
	}
	t := l.At(p)
	switch {
	case IsObstructed(t), t == IronBars:
		return false
	case isDiagonal(dir) && l.IntactDoorway(p):
		return false
	case l.BoulderAt(p):
		return false
	}
	return true
}

// dropBoulder puts a pushed boulder at p, where it may fill a pit or a pool.
// It reports whether the boulder was used up.
func (g *Game) dropBoulder(p gruid.Point) bool {
	l := g.Level
	if t := l.TrapAt(p); t != nil && t.Kind.isPit() {
		if g.canSee(p) {
			g.Log("The boulder fills a pit.")
		} else {
			g.Log("You hear the boulder fall.")
		}
		l.RemoveTrap(t)
		return true
	}
	t := l.At(p)
	if !IsPoolOrLava(t) {
		l.AddBoulder(p)
		return false
	}
	chance := g.rn2(10, DrawBoulderFill)
	lava := t == Lava
	fills := chance != 0
	if lava {
		fills = chance == 0
	}
	switch {
	case fills && lava:
		g.Log("The boulder fills the molten lava.")
		l.Set(p, Floor)
	case fills:
		g.Logf("There is a large splash as the boulder fills the %s.", TerrainName(t))
		l.Set(p, Floor)
	case lava:
		g.Log("The boulder sinks into the molten lava.")
	default:
		g.Log("There is a large splash as the boulder sinks without a trace!")
	}
	return true
}

func (g *Game) gateDoor(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	if !l.ClosedDoor(s.to) || h.Is(PropPassesWalls) {
		return next()
	}
	if (s.run == runNone || s.travelling()) && g.autoOpens() {
		return g.openDoor(s)
	}
	if !isDiagonal(s.dir) {
		if h.Has(StatusBlind) || h.Has(StatusStun) || h.Dex < 10 || h.Has(StatusFumbling) {
			g.LogStyled("Ouch! You bump into a door.", LogHurtPlayer)
		} else {
			g.Log("That door is closed.")
		}
	}
	return s.stop(false, ReasonDoorClosed)
}

// autoOpens reports whether walking into a closed door tries to open it.
func (g *Game) autoOpens() bool {
	h := g.Hero
	return g.Config.AutoOpen && !h.Has(StatusConfusion) && !h.Has(StatusStun) && !h.Has(StatusFumbling)
}

func (g *Game) openDoor(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	if l.DoorAt(s.to)&DoorLocked != 0 {
		g.Log("This door is locked.")
		return s.stop(false, ReasonDoorLocked)
	}
	if h.Is(PropVerySmall) {
		g.Log("You're too small to pull the door open.")
		return s.stop(false, ReasonDoorClosed)
	}
	if g.rnl(20, DrawDoorOpen) < h.attrSum()/3 {
		g.Log("The door opens.")
		l.SetDoor(s.to, DoorOpen)
		g.UpdateVision()
		return s.stop(true, ReasonDoorOpened)
	}
	g.Log("The door resists!")
	return s.stop(true, ReasonDoorResisted)
}

func (g *Game) gateTerrain(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	switch t := l.At(s.to); {
	case IsObstructed(t) && !h.Is(PropPassesWalls):
		switch t {
		case Stone:
			g.mention("It's solid stone.")
		case Wall:
			g.mention("It's a wall.")
		case Tree:
			g.mention("It's a tree.")
		}
		return s.stop(false, ReasonTerrain)
	case t == IronBars && !h.Is(PropPassesWalls) && !h.Is(PropVerySmall):
		g.mention("You cannot pass through the bars.")
		return s.stop(false, ReasonTerrain)
	}
	if !isDiagonal(s.dir) || !g.badRock(gruid.Point{s.from.X, s.to.Y}) ||
		!g.badRock(gruid.Point{s.to.X, s.from.Y}) {
		return next()
	}
	switch {
	case h.Is(PropBig):
		g.Log("Your body is too large to fit through.")
	case h.Load > maxSqueezeLoad:
		g.Log("You are carrying too much to get through.")
	default:
		return next()
	}
	return s.stop(false, ReasonSqueeze)
}

// maxSqueezeLoad is the carried weight above which the hero cannot squeeze
// diagonally between two obstacles.
const maxSqueezeLoad = 600

func (g *Game) gateSwim(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	t := l.At(s.to)
	if !IsPoolOrLava(t) || t == l.At(s.from) || !l.IsSeen(s.to) || h.Airborne() ||
		h.Has(StatusStun) || h.Has(StatusConfusion) {
		return next()
	}
	if IsPool(t) && h.Is(PropWaterWalking) {
		return next()
	}
	if s.intent.NoPickup {
		g.auto = auto{}
		g.ctx.reset()
		s.run = runNone
		return next()
	}
	if g.Config.ParanoidSwim {
		name := "water"
		if t == Lava {
			name = "lava"
		}
		g.Logf("You avoid stepping into the %s.", name)
		return s.stop(false, ReasonSwim)
	}
	return next()
}
