package herostep

import "codeberg.org/anaseto/gruid"

// gate is a check of step resolution. Its function reports true when the
// step ends there: the result then either carries a prompt, in which case
// the step is suspended, or is the final outcome of the step.
type gate struct {
	name string
	fn   func(g *Game, s *step) (StepResult, bool)
}

// stepGates lists the checks of a step in resolution order. A suspended step
// resumes at the gate that prompted.
var stepGates = []gate{
	{"travel", (*Game).gateTravel},
	{"helpless", (*Game).gateHelpless},
	{"capacity", (*Game).gateCapacity},
	{"turbulence", (*Game).gateTurbulence},
	{"confusion", (*Game).gateConfusion},
	{"edge", (*Game).gateEdge},
	{"trap-ahead", (*Game).gateTrapAhead},
	{"diagonal-door", (*Game).gateDiagonalDoor},
	{"stuck", (*Game).gateStuck},
	{"monster", (*Game).gateMonster},
	{"iron-bars", (*Game).gateIronBars},
	{"web", (*Game).gateWeb},
	{"fight-empty", (*Game).gateFightEmpty},
	{"boulder", (*Game).gateBoulder},
	{"door", (*Game).gateDoor},
	{"terrain", (*Game).gateTerrain},
	{"swim", (*Game).gateSwim},
	{"trap-confirm", (*Game).gateTrapConfirm},
	{"trapped", (*Game).gateTrapped},
	{"ball-chain", (*Game).gateBallChain},
}

func next() (StepResult, bool) {
	return StepResult{}, false
}

func (s *step) stop(time bool, r Reason) (StepResult, bool) {
	s.halt = true
	return StepResult{Time: time, Reason: r}, true
}

func ask(p *Prompt) (StepResult, bool) {
	return StepResult{Prompt: p}, true
}

func (g *Game) mention(format string, a ...any) {
	if g.Config.MentionWalls {
		g.Logf(format, a...)
	}
}

// badRock reports whether p blocks the hero's body.
func (g *Game) badRock(p gruid.Point) bool {
	return IsObstructed(g.Level.At(p)) && !g.Hero.Is(PropPassesWalls)
}

func (g *Game) gateTravel(s *step) (StepResult, bool) {
	if !s.travelling() {
		return next()
	}
	dir, ok := g.travelDir()
	if !ok {
		return s.stop(false, ReasonNoTravelPath)
	}
	s.setDir(dir)
	return next()
}

func (g *Game) gateHelpless(s *step) (StepResult, bool) {
	h := g.Hero
	switch {
	case h.Has(StatusSleep):
		g.Log("You are asleep and cannot move.")
	case h.Has(StatusParalysis):
		g.Log("You are paralyzed and cannot move.")
	default:
		return next()
	}
	return s.stop(false, ReasonHelpless)
}

func (g *Game) gateCapacity(s *step) (StepResult, bool) {
	h := g.Hero
	if g.Level.AirLevel {
		return next()
	}
	switch {
	case h.Encumbrance >= Overloaded:
		g.Log("You collapse under your load.")
	case h.Encumbrance > Burdened && h.HP < 10 && h.HP != h.MaxHP:
		g.Log("You don't have enough stamina to move.")
	default:
		return next()
	}
	return s.stop(false, ReasonOverloaded)
}

func (g *Game) gateTurbulence(s *step) (StepResult, bool) {
	if !g.Level.AirLevel {
		return next()
	}
	if g.rn2(4, DrawTurbulence) == 0 || g.Hero.Airborne() {
		return next()
	}
	switch g.rn2(3, DrawTurbulenceMsg) {
	case 0:
		g.Log("You tumble in place.")
	case 1:
		g.Log("You can't control your movements very well.")
	default:
		g.Log("It's hard to walk in thin air.")
	}
	return s.stop(false, ReasonTurbulence)
}

func (g *Game) gateConfusion(s *step) (StepResult, bool) {
	h := g.Hero
	if !h.Has(StatusStun) && !(h.Has(StatusConfusion) && g.rn2(5, DrawConfusion) == 0) {
		return next()
	}
	for tries := 0; ; tries++ {
		if tries > 50 {
			g.Log("You stagger around, unable to pick a direction.")
			return s.stop(false, ReasonConfused)
		}
		s.setDir(Directions[g.rn2(len(Directions), DrawConfusedDir)])
		if inMap(s.to) && !g.badRock(s.to) {
			break
		}
	}
	return next()
}

func (g *Game) gateEdge(s *step) (StepResult, bool) {
	if inMap(s.to) || s.intent.ForceFight {
		return next()
	}
	g.mention("You have already gone as far %s as possible.", DirName(s.dir))
	return s.stop(false, ReasonOffMap)
}

func (g *Game) gateTrapAhead(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	t := l.TrapAt(s.to)
	known := t != nil && t.Seen
	liquid := h.Has(StatusBlind) && !h.Airborne() && l.IsSeen(s.to) && IsPoolOrLava(l.At(s.to))
	if !known && !liquid || s.travelling() && s.to == g.auto.dest {
		return next()
	}
	if s.run >= runRush {
		if known {
			g.mention("You stop in front of %s.", An(t.Kind.String()))
		} else {
			g.mention("You stop at the edge of the %s.", TerrainName(l.At(s.to)))
		}
		return s.stop(false, ReasonTrapAhead)
	}
	if s.run != runNone {
		s.halt = true
	}
	return next()
}

func (g *Game) gateDiagonalDoor(s *step) (StepResult, bool) {
	l := g.Level
	if !isDiagonal(s.dir) || g.Hero.Is(PropPassesWalls) {
		return next()
	}
	switch {
	case l.IntactDoorway(s.to):
		g.mention("You can't move diagonally into an intact doorway.")
	case l.IntactDoorway(s.from):
		g.mention("You can't move diagonally out of an intact doorway.")
	default:
		return next()
	}
	return s.stop(false, ReasonDiagonalDoor)
}

func (g *Game) gateStuck(s *step) (StepResult, bool) {
	h := g.Hero
	m := h.Stuck
	if m == nil || s.to == m.P {
		return next()
	}
	if g.Level.MonsterAt(m.P) != m {
		g.impossible("stuck", "hero held by %s, which is not on the level", m.Name)
		h.Stuck = nil
		return next()
	}
	if dist2(h.P, m.P) > 2 {
		h.Stuck = nil
		return next()
	}
	if h.Is(PropSticky) {
		g.Logf("You release %s.", m.The())
		h.Stuck = nil
		return next()
	}
	n := 40
	if !m.CanMove() {
		n = 8
	}
	switch r := g.rn2(n, DrawBreakaway); {
	case r < 3:
		g.Logf("You pull free from %s.", m.The())
		h.Stuck = nil
		return next()
	case r == 3 && !m.CanMove():
		g.Logf("You wrench yourself free from %s, waking it.", m.The())
		m.Asleep = false
		m.Frozen = 1
		h.Stuck = nil
		return next()
	case m.Tame:
		g.Logf("You pull free from %s.", m.The())
		h.Stuck = nil
		return next()
	}
	g.LogfStyled("You cannot escape from %s!", LogHurtPlayer, m.The())
	return s.stop(true, ReasonHeld)
}

func (g *Game) gateTrapConfirm(s *step) (StepResult, bool) {
	h := g.Hero
	t := g.Level.TrapAt(s.to)
	if !g.Config.ParanoidTrap || s.run != runNone || t == nil || !t.Seen ||
		h.Has(StatusStun) || h.Has(StatusConfusion) {
		return next()
	}
	switch s.answer {
	case answeredYes:
		return next()
	case answeredNo:
		return s.stop(false, ReasonTrapCancelled)
	}
	if s.prompted {
		return next()
	}
	return ask(&Prompt{Kind: PromptEnterTrap, Text: "Really step onto that " + t.Kind.String() + "?", Trap: t})
}

func (g *Game) gateTrapped(s *step) (StepResult, bool) {
	h := g.Hero
	if h.Utrap <= 0 {
		return next()
	}
	moved := g.escapeTrap(s)
	if h.Utrap <= 0 {
		h.releaseTrap()
	}
	if moved {
		return next()
	}
	return s.stop(true, ReasonTrapped)
}

func (g *Game) gateBallChain(s *step) (StepResult, bool) {
	if !g.Hero.Punished {
		return next()
	}
	bc := g.Hooks.BallChain
	if bc == nil {
		g.impossible("ball-chain", "punished hero without ball and chain")
		return next()
	}
	if !bc.Drag(s.from, s.to) {
		return s.stop(true, ReasonBallChain)
	}
	return next()
}
