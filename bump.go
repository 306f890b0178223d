package herostep

import "fmt"

// gateMonster handles a monster at the destination: stop a run in front of
// it, bump into it, reveal it, swap places with a pet or attack it.
func (g *Game) gateMonster(s *step) (StepResult, bool) {
	m := g.Level.MonsterAt(s.to)
	if m == nil {
		return next()
	}
	s.mon = m
	safe := g.safePet(m) && !s.intent.ForceFight
	if !safe {
		if s.run != runNone && g.canSpot(m) {
			g.mention("%s blocks your path.", UpperFirst(m.The()))
			return s.stop(false, ReasonMonsterAhead)
		}
		if s.intent.NoPickup && !s.travelling() && g.canSpot(m) {
			if m.Peaceful || m.Tame {
				g.Logf("Pardon me, %s.", m.Name)
			} else {
				g.Logf("You move right into %s.", m.The())
			}
			return s.stop(true, ReasonBumpMonster)
		}
	}
	if m.Hidden {
		m.Hidden = false
		g.LogStyled(fmt.Sprintf("Wait! There's %s hiding there!", An(m.Name)), LogNotable)
		return s.stop(true, ReasonRevealHidden)
	}
	if safe {
		if m.Stationary() && g.rn2(6, DrawPetRefusal) != 0 {
			g.Logf("%s doesn't seem to move!", UpperFirst(m.The()))
			return s.stop(true, ReasonPetRefused)
		}
		s.displace = true
		return next()
	}
	if (m.Peaceful || m.Tame) && g.Config.Confirm && g.canSpot(m) {
		switch s.answer {
		case answeredNo:
			return s.stop(false, ReasonAttackCancelled)
		case unanswered:
			if !s.prompted {
				return ask(&Prompt{
					Kind:    PromptAttackPeaceful,
					Text:    fmt.Sprintf("Really attack %s?", m.The()),
					Monster: m,
				})
			}
		}
	}
	return g.attack(s, m)
}

func (g *Game) attack(s *step, m *Monster) (StepResult, bool) {
	if g.Hooks.Combat == nil {
		g.LogfStyled("You hit %s.", LogHurtMons, m.The())
		return s.stop(true, ReasonAttack)
	}
	return s.stop(g.Hooks.Combat.Attack(m), ReasonAttack)
}

// gateIronBars handles force-fighting iron bars with a wielded weapon.
func (g *Game) gateIronBars(s *step) (StepResult, bool) {
	w := g.Hero.Weapon
	if !s.intent.ForceFight || w == nil || !inMap(s.to) || g.Level.At(s.to) != IronBars {
		return next()
	}
	g.LogfStyled("You bang your %s against the iron bars. Clang!", LogNotable, w.Name)
	g.wakeNearby()
	return s.stop(true, ReasonFightBars)
}

// gateWeb handles force-fighting a known web.
func (g *Game) gateWeb(s *step) (StepResult, bool) {
	l, h := g.Level, g.Hero
	t := l.TrapAt(s.to)
	if !s.intent.ForceFight || t == nil || t.Kind != Web || !t.Seen {
		return next()
	}
	w := h.Weapon
	switch {
	case w != nil && w.CutsWebs:
		g.Logf("%s cuts through the web!", UpperFirst(w.Name))
		l.RemoveTrap(t)
	case w == nil:
		g.Log("You can't cut a web with your bare hands.")
	case !w.Blade:
		g.Logf("You can't cut a web with your %s.", w.Name)
	case g.rn2(20, DrawWebCut) > h.Str+w.Enchantment:
		g.Log("You hack ineffectually at the web.")
	default:
		g.Log("You cut through the web.")
		l.RemoveTrap(t)
	}
	return s.stop(true, ReasonFightWeb)
}

// gateFightEmpty handles force-fighting when nothing worth fighting is
// there.
func (g *Game) gateFightEmpty(s *step) (StepResult, bool) {
	if !s.intent.ForceFight {
		return next()
	}
	g.Logf("You harmlessly attack %s.", g.emptyTarget(s))
	return s.stop(true, ReasonFightEmpty)
}

func (g *Game) emptyTarget(s *step) string {
	l := g.Level
	p := s.to
	if !inMap(p) {
		return "the edge of the map"
	}
	if !l.IsSeen(p) {
		return "an unknown obstacle"
	}
	t := l.At(p)
	switch {
	case l.BoulderAt(p):
		return "the boulder"
	case p == l.Branch && (t == StairsUp || t == StairsDown):
		return "the branch staircase"
	case IsObstructed(t), IsFurniture(t), IsPoolOrLava(t), t == IronBars:
		return "the " + TerrainName(t)
	case l.ClosedDoor(p):
		return "the closed door"
	}
	return "thin air"
}
