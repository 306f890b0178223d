package herostep

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// TrapKind represents the different kinds of traps.
type TrapKind int

const (
	SqueakyBoard TrapKind = iota
	BearTrap
	SleepingGasTrap
	FireTrap
	Pit
	SpikedPit
	Web
	AntiMagicField
	NumTrapKinds
)

func (k TrapKind) String() string {
	switch k {
	case SqueakyBoard:
		return "squeaky board"
	case BearTrap:
		return "bear trap"
	case SleepingGasTrap:
		return "sleeping gas trap"
	case FireTrap:
		return "fire trap"
	case Pit:
		return "pit"
	case SpikedPit:
		return "spiked pit"
	case Web:
		return "web"
	case AntiMagicField:
		return "anti-magic field"
	}
	return fmt.Sprintf("trap(%d)", int(k))
}

func (k TrapKind) isPit() bool {
	return k == Pit || k == SpikedPit
}

// Trap represents a trap on the level.
type Trap struct {
	Kind TrapKind
	P    gruid.Point
	Seen bool // discovered by the hero
	Note int  // pitch of a squeaky board, in [0, 12)
}

var trapNotes = [12]string{
	"C note", "D flat", "D note", "E flat", "E note", "F note",
	"F sharp", "G note", "G sharp", "A note", "B flat", "B note",
}

// stepOnTrap handles the hero arriving on a trap. A seen trap may be
// avoided; an unseen one is discovered and sprung.
func (g *Game) stepOnTrap(t *Trap, s *step) {
	h := g.Hero
	s.halt = true
	if t.Seen {
		if h.Airborne() && (t.Kind.isPit() || t.Kind == BearTrap) {
			g.Logf("You %s over %s.", g.airVerb(), An(t.Kind.String()))
			return
		}
		if !h.Has(StatusFumbling) && t.Kind != AntiMagicField && !s.adjPit &&
			g.rn2(5, DrawTrapEscape) == 0 {
			g.Logf("You escape %s.", An(t.Kind.String()))
			return
		}
	}
	t.Seen = true
	g.springTrap(t, s)
}

// springTrap applies the trap's effect on the hero. Each kind draws its
// random numbers in a fixed order.
func (g *Game) springTrap(t *Trap, s *step) {
	switch t.Kind {
	case SqueakyBoard:
		g.squeakyBoard(t)
	case BearTrap:
		g.bearTrap()
	case SleepingGasTrap:
		g.sleepingGasTrap()
	case FireTrap:
		g.fireTrap()
	case Pit, SpikedPit:
		g.fallIntoPit(t, s)
	case Web:
		g.webTrap(t)
	case AntiMagicField:
		g.antiMagicField()
	default:
		g.impossible("trap", "unknown trap kind %d at %v", t.Kind, t.P)
	}
}

func (g *Game) airVerb() string {
	if g.Hero.Is(PropLevitation) {
		return "float"
	}
	return "fly"
}

func (g *Game) squeakyBoard(t *Trap) {
	h := g.Hero
	if h.Airborne() {
		if !h.Has(StatusBlind) {
			g.Log("You notice a loose board below you.")
		}
		return
	}
	g.LogfStyled("A board beneath you squeaks %s loudly.", LogNotable, trapNotes[(t.Note%12+12)%12])
	g.wakeNearby()
}

func (g *Game) bearTrap() {
	h := g.Hero
	dmg := g.dice(2, 4, DrawTrapDamage)
	if h.Airborne() {
		g.Logf("You %s over a bear trap.", g.airVerb())
		return
	}
	if h.Is(PropVerySmall) {
		g.Log("A bear trap closes harmlessly over you.")
		return
	}
	h.Utrap, h.Hold = g.rn1(4, 4, DrawTrapHold), HoldBearTrap
	g.LogStyled("A bear trap closes on your foot!", LogHurtPlayer)
	g.loseHP(g.halfPhysical(dmg))
}

func (g *Game) sleepingGasTrap() {
	h := g.Hero
	if h.Is(PropSleepRes) {
		g.Log("You are enveloped in a cloud of gas!")
		return
	}
	g.LogStyled("A cloud of gas puts you to sleep!", LogHurtPlayer)
	h.Statuses.Put(StatusSleep, g.rnd(25, DrawSleepDuration))
}

func (g *Game) fireTrap() {
	h := g.Hero
	g.LogStyled("A tower of flame erupts from the floor!", LogHurtPlayer)
	var dmg int
	if h.Is(PropFireRes) {
		dmg = g.rn2(2, DrawFireResisted)
	} else {
		dmg = g.dice(2, 4, DrawTrapDamage)
		if h.MaxHP > h.Level {
			h.MaxHP -= g.rn2(min(h.MaxHP, dmg+1), DrawFireMaxHP)
			h.HP = min(h.HP, h.MaxHP)
		}
	}
	if dmg == 0 {
		g.Log("You are uninjured.")
	} else {
		g.loseHP(dmg)
	}
	if !g.burnArmor() {
		// Possessions burning is handled by the inventory owner: the
		// roll is drawn all the same.
		g.rn2(3, DrawBurnItems)
	}
}

// burnArmor picks random armor slots until something burns. It reports
// true when the body slot was picked.
func (g *Game) burnArmor() bool {
	h := g.Hero
	// The body slot ends the loop: the cap only matters for pathological
	// random sources.
	for range 1000 {
		slot := ArmorSlot(g.rn2(int(NumSlots), DrawArmorScorch))
		if slot == SlotBody {
			if a := h.Armor[SlotBody]; a != nil {
				g.burnDamage(a)
			}
			return true
		}
		if a := h.Armor[slot]; a != nil && g.burnDamage(a) {
			return false
		}
	}
	return true
}

func (g *Game) burnDamage(a *Armor) bool {
	switch {
	case a.Fireproof:
		g.Logf("Somehow, your %s is not affected.", a.Name)
		return false
	case a.Erosion >= MaxErosion:
		g.Logf("Your %s looks completely burnt.", a.Name)
		return false
	}
	a.Erosion++
	if a.Erosion > 1 {
		g.Logf("Your %s smoulders further.", a.Name)
	} else {
		g.Logf("Your %s smoulders.", a.Name)
	}
	return true
}

func (g *Game) fallIntoPit(t *Trap, s *step) {
	h := g.Hero
	if h.Airborne() {
		g.Logf("You %s over %s.", g.airVerb(), An(t.Kind.String()))
		return
	}
	spiked := t.Kind == SpikedPit
	if s.adjPit {
		g.Log("You move into an adjacent pit.")
	} else {
		g.LogStyled("You fall into a pit!", LogHurtPlayer)
	}
	if spiked {
		g.LogStyled("You land on a set of sharp iron spikes!", LogHurtPlayer)
	}
	h.Utrap, h.Hold = g.rn1(6, 2, DrawTrapHold), HoldPit
	if !spiked {
		n := 6
		if s.adjPit {
			n = 3
		}
		g.loseHP(g.halfPhysical(g.rnd(n, DrawTrapDamage)))
		return
	}
	n := 10
	if s.adjPit {
		n = 6
	}
	g.loseHP(g.halfPhysical(g.rnd(n, DrawTrapDamage)))
	if h.IsDead() {
		return
	}
	if g.rn2(6, DrawSpikePoison) == 0 {
		g.poisoned("spikes", 8)
	}
}

// poisoned applies strength-draining poison. fatal is the odds against
// instant death.
func (g *Game) poisoned(what string, fatal int) {
	h := g.Hero
	g.LogfStyled("The %s were poisoned!", LogHurtPlayer, what)
	if h.Is(PropPoisonRes) {
		g.Log("The poison doesn't seem to affect you.")
		return
	}
	i := g.rn2(fatal, DrawPoisonSeverity)
	switch {
	case i == 0:
		g.LogStyled("The poison was deadly...", LogSpecial)
		g.loseHP(h.HP)
	case i > 5:
		g.loseHP(g.rn1(10, 6, DrawPoisonLoss))
	default:
		loss := g.dice(2, 2, DrawPoisonLoss)
		str := max(3, h.Str-loss)
		if str < h.Str {
			h.Str = str
			g.LogStyled("You feel weaker!", LogHurtPlayer)
		} else {
			g.Log("You feel very weak for a moment.")
		}
	}
}

func (g *Game) webTrap(t *Trap) {
	h := g.Hero
	if w := h.Weapon; w != nil && w.CutsWebs {
		g.Logf("%s cuts through the web!", UpperFirst(w.Name))
		return
	}
	g.Log("You stumble into a spider web!")
	var tim int
	switch str := h.Str; {
	case str <= 3:
		tim = g.rn1(6, 6, DrawTrapHold)
	case str < 6:
		tim = g.rn1(6, 4, DrawTrapHold)
	case str < 9:
		tim = g.rn1(4, 4, DrawTrapHold)
	case str < 12:
		tim = g.rn1(4, 2, DrawTrapHold)
	case str < 15:
		tim = g.rn1(2, 2, DrawTrapHold)
	case str < 18:
		tim = g.rnd(2, DrawTrapHold)
	case str == 18:
		tim = 1
	}
	if tim == 0 {
		g.Log("You tear through the web!")
		g.Level.RemoveTrap(t)
		return
	}
	h.Utrap, h.Hold = tim, HoldWeb
}

func (g *Game) antiMagicField() {
	h := g.Hero
	if !h.Is(PropMagicRes) {
		g.drainEnergy(g.rnd(h.Level, DrawEnergyDrain) + 1)
		return
	}
	dmg := g.rnd(4, DrawTrapDamage)
	if h.Is(PropHalfPhysical) {
		dmg += g.rnd(4, DrawTrapDamage)
	}
	switch {
	case dmg >= h.HP:
		g.LogStyled("You feel unbearably torpid!", LogHurtPlayer)
	case dmg >= h.HP/4:
		g.LogStyled("You feel very lethargic.", LogHurtPlayer)
	default:
		g.LogStyled("You feel sluggish.", LogHurtPlayer)
	}
	g.loseHP(dmg)
}

// drainEnergy removes half of n energy points now (rounded up) and queues
// the rest, drained one point per turn. Energy never goes below zero.
func (g *Game) drainEnergy(n int) {
	h := g.Hero
	if h.MaxEnergy < 1 {
		g.Log("You feel momentarily lethargic.")
		return
	}
	punct := '.'
	if n > h.Energy {
		punct = '!'
	}
	g.LogfStyled("You feel your magical energy drain away%c", LogHurtPlayer, punct)
	now := (n + 1) / 2
	h.Energy = max(0, h.Energy-now)
	h.drain += n - now
}

func (g *Game) halfPhysical(dmg int) int {
	if g.Hero.Is(PropHalfPhysical) {
		return (dmg + 1) / 2
	}
	return dmg
}

func (g *Game) loseHP(n int) {
	h := g.Hero
	if n <= 0 || h.IsDead() {
		return
	}
	h.HP -= n
	if h.IsDead() {
		g.LogStyled("You die...", LogSpecial)
	}
}

// wakeNearby wakes monsters within earshot of the hero.
func (g *Game) wakeNearby() {
	h := g.Hero
	for _, m := range g.Level.Monsters() {
		if dist2(m.P, h.P) < h.Level*20 {
			m.Asleep = false
		}
	}
}

// escapeTrap tries to get the hero out of the trap holding it. It reports
// true when the hero may move anyway (from a pit into an adjacent pit).
func (g *Game) escapeTrap(s *step) bool {
	h := g.Hero
	switch h.Hold {
	case HoldBearTrap:
		if g.Config.Verbose {
			g.Log("You are caught in a bear trap.")
		}
		if isDiagonal(s.dir) || g.rn2(5, DrawBearTrapEscape) == 0 {
			h.Utrap--
		}
		if h.Utrap <= 0 {
			g.Log("You finally wriggle free.")
		}
	case HoldPit:
		if t := g.Level.TrapAt(s.to); t != nil && t.Seen && t.Kind.isPit() {
			s.adjPit = true
			return true
		}
		g.climbPit()
	case HoldWeb:
		if w := h.Weapon; w != nil && w.CutsWebs {
			h.Utrap = 0
			g.Logf("Using %s, you slice your way free of the web.", w.Name)
			break
		}
		h.Utrap--
		if h.Utrap > 0 {
			if g.Config.Verbose {
				g.Log("You are stuck to the web.")
			}
		} else {
			g.Log("You disentangle yourself.")
		}
	case HoldFloor:
		h.Utrap--
		if h.Utrap > 0 {
			if g.Config.Verbose {
				g.Log("You are stuck in the floor.")
			}
		} else {
			g.Log("You finally wriggle free.")
		}
	default:
		g.impossible("trapmove", "stuck in unknown trap (%d)", h.Hold)
		h.Utrap = 0
	}
	return false
}

func (g *Game) climbPit() {
	h := g.Hero
	switch {
	case h.Is(PropPassesWalls):
		g.Log("You ascend from the pit.")
		h.releaseTrap()
	case g.rn2(2, DrawPitCrevice) == 0 && g.Level.BoulderAt(h.P):
		g.Log("Your leg gets stuck in a crevice.")
		g.Log("You free your leg.")
	case h.Is(PropFlying):
		g.Log("You fly from the pit.")
		h.releaseTrap()
	default:
		h.Utrap--
		if h.Utrap <= 0 {
			h.releaseTrap()
			g.Log("You crawl to the edge of the pit.")
		} else if g.Config.Verbose {
			g.Log("You are still in a pit.")
		}
	}
}
