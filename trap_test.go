package herostep

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trapRoom = []string{
	"-------",
	"|.....|",
	"|.@...|",
	"|.....|",
	"-------",
}

var trapPos = gruid.Point{3, 2}

// stepOnto builds a game with a trap east of the hero and steps on it.
func stepOnto(t *testing.T, kind TrapKind, seen bool, setup func(*Hero), vals ...int) (*Game, StepResult) {
	t.Helper()
	g := testGame(t, newSeqRand(vals...), trapRoom...)
	g.Level.AddTrap(kind, trapPos).Seen = seen
	if setup != nil {
		setup(g.Hero)
	}
	return g, g.AttemptStep(east)
}

func TestBearTrap(t *testing.T) {
	g, res := stepOnto(t, BearTrap, false, nil, 1, 2, 3, 1)
	require.True(t, res.Moved)
	assert.Equal(t, 9, g.Hero.HP)
	assert.Equal(t, 7, g.Hero.Utrap)
	assert.Equal(t, HoldBearTrap, g.Hero.Hold)
	assert.Equal(t, []Draw{DrawTrapDamage, DrawTrapDamage, DrawTrapHold}, g.Trace.Draws())
	assert.Contains(t, logText(g), "A bear trap closes on your foot!")

	// Only diagonal moves or a zero roll loosen the trap.
	g.Trace.Reset()
	res = g.AttemptStep(east)
	assert.Equal(t, ReasonTrapped, res.Reason)
	assert.Equal(t, 7, g.Hero.Utrap)
	assert.Equal(t, []Draw{DrawBearTrapEscape}, g.Trace.Draws())
	res = g.AttemptStep(southEast)
	assert.Equal(t, ReasonTrapped, res.Reason)
	assert.Equal(t, 6, g.Hero.Utrap)
}

func TestBearTrapVerySmall(t *testing.T) {
	g, res := stepOnto(t, BearTrap, false, func(h *Hero) { h.Props |= PropVerySmall })
	require.True(t, res.Moved)
	assert.Zero(t, g.Hero.Utrap)
	assert.Equal(t, 14, g.Hero.HP)
	assert.Equal(t, []Draw{DrawTrapDamage, DrawTrapDamage}, g.Trace.Draws())
	assert.Equal(t, "A bear trap closes harmlessly over you.", g.Logs.Last())
}

func TestFireTrap(t *testing.T) {
	g, res := stepOnto(t, FireTrap, false, nil, 1, 1, 2, 1)
	require.True(t, res.Moved)
	assert.Equal(t, 12, g.Hero.MaxHP)
	assert.Equal(t, 8, g.Hero.HP)
	assert.Equal(t, []Draw{DrawTrapDamage, DrawTrapDamage, DrawFireMaxHP, DrawArmorScorch}, g.Trace.Draws())
}

func TestFireTrapBurnsArmor(t *testing.T) {
	helm := &Armor{Name: "helmet"}
	g, _ := stepOnto(t, FireTrap, false, func(h *Hero) { h.Armor[SlotHelm] = helm }, 1, 1, 2, 0, 0)
	assert.Equal(t, 1, helm.Erosion)
	assert.Contains(t, logText(g), "Your helmet smoulders.")
	assert.Equal(t, []Draw{DrawTrapDamage, DrawTrapDamage, DrawFireMaxHP, DrawArmorScorch, DrawBurnItems}, g.Trace.Draws())

	// A fireproof piece does not end the search.
	cloak := &Armor{Name: "cloak", Fireproof: true}
	g, _ = stepOnto(t, FireTrap, false, func(h *Hero) { h.Armor[SlotHelm] = cloak }, 1, 1, 2, 0, 1)
	assert.Zero(t, cloak.Erosion)
	assert.Contains(t, logText(g), "Somehow, your cloak is not affected.")
	assert.Equal(t, []Draw{DrawTrapDamage, DrawTrapDamage, DrawFireMaxHP, DrawArmorScorch, DrawArmorScorch}, g.Trace.Draws())
}

func TestFireTrapResisted(t *testing.T) {
	g, _ := stepOnto(t, FireTrap, false, func(h *Hero) { h.Props |= PropFireRes }, 0, 1)
	assert.Equal(t, 14, g.Hero.HP)
	assert.Equal(t, 14, g.Hero.MaxHP)
	assert.Contains(t, logText(g), "You are uninjured.")
	assert.Equal(t, []Draw{DrawFireResisted, DrawArmorScorch}, g.Trace.Draws())
}

func TestAntiMagicField(t *testing.T) {
	g, res := stepOnto(t, AntiMagicField, false, func(h *Hero) { h.Level = 5 }, 3)
	require.True(t, res.Moved)
	// Five points: three now, one more at the end of the turn.
	assert.Equal(t, 3, g.Hero.Energy)
	assert.Equal(t, 1, g.Hero.PendingDrain())
	assert.Equal(t, "You feel your magical energy drain away.", logText(g))
	g.EndTurn()
	assert.Equal(t, 2, g.Hero.Energy)
	assert.Zero(t, g.Hero.PendingDrain())
}

func TestAntiMagicFieldResisted(t *testing.T) {
	g, _ := stepOnto(t, AntiMagicField, false, func(h *Hero) { h.Props |= PropMagicRes }, 1)
	assert.Equal(t, 12, g.Hero.HP)
	assert.Equal(t, "You feel sluggish.", g.Logs.Last())
	assert.Equal(t, []Draw{DrawTrapDamage}, g.Trace.Draws())
}

func TestSeenTrapEscape(t *testing.T) {
	g, res := stepOnto(t, SqueakyBoard, true, nil, 0)
	require.True(t, res.Moved)
	assert.Equal(t, "You escape a squeaky board.", g.Logs.Last())
	assert.Equal(t, []Draw{DrawTrapEscape}, g.Trace.Draws())

	g, _ = stepOnto(t, SqueakyBoard, true, nil, 1)
	assert.Equal(t, "A board beneath you squeaks C note loudly.", g.Logs.Last())
	assert.Equal(t, []Draw{DrawTrapEscape}, g.Trace.Draws())
}

func TestSeenAntiMagicFieldAlwaysTriggers(t *testing.T) {
	g, _ := stepOnto(t, AntiMagicField, true, nil, 0)
	assert.Equal(t, []Draw{DrawEnergyDrain}, g.Trace.Draws())
}

func TestFloatOverSeenPit(t *testing.T) {
	g, res := stepOnto(t, Pit, true, func(h *Hero) { h.Props |= PropLevitation })
	require.True(t, res.Moved)
	assert.Zero(t, g.Hero.Utrap)
	assert.Equal(t, "You float over a pit.", g.Logs.Last())
	assert.Empty(t, g.Trace.Records)
}

func TestWeb(t *testing.T) {
	g, _ := stepOnto(t, Web, false, nil, 1)
	assert.Equal(t, 2, g.Hero.Utrap)
	assert.Equal(t, HoldWeb, g.Hero.Hold)
	assert.Equal(t, []Draw{DrawTrapHold}, g.Trace.Draws())

	res := g.AttemptStep(east)
	assert.Equal(t, ReasonTrapped, res.Reason)
	assert.Equal(t, "You are stuck to the web.", g.Logs.Last())
	res = g.AttemptStep(east)
	assert.Equal(t, ReasonTrapped, res.Reason)
	assert.Equal(t, "You disentangle yourself.", g.Logs.Last())
	assert.Equal(t, HoldNone, g.Hero.Hold)
	res = g.AttemptStep(east)
	assert.True(t, res.Moved)

	g, _ = stepOnto(t, Web, false, func(h *Hero) { h.Str = 18 })
	assert.Equal(t, 1, g.Hero.Utrap)
	assert.Empty(t, g.Trace.Records)

	g, _ = stepOnto(t, Web, false, func(h *Hero) { h.Str = 19 })
	assert.Zero(t, g.Hero.Utrap)
	assert.Nil(t, g.Level.TrapAt(trapPos))
	assert.Equal(t, "You tear through the web!", g.Logs.Last())
}

func TestSpikedPitPoison(t *testing.T) {
	g, _ := stepOnto(t, SpikedPit, false, nil, 0, 0, 0, 7, 0)
	assert.Equal(t, 7, g.Hero.HP)
	assert.Equal(t, 2, g.Hero.Utrap)
	assert.Equal(t, []Draw{DrawTrapHold, DrawTrapDamage, DrawSpikePoison, DrawPoisonSeverity, DrawPoisonLoss}, g.Trace.Draws())
	assert.Contains(t, logText(g), "The spikes were poisoned!")

	g, _ = stepOnto(t, SpikedPit, false, nil, 0, 0, 0, 3, 1, 1)
	assert.Equal(t, 12, g.Hero.Str)
	assert.Contains(t, logText(g), "You feel weaker!")

	g, _ = stepOnto(t, SpikedPit, false, func(h *Hero) { h.Props |= PropPoisonRes }, 0, 0, 0)
	assert.Equal(t, 16, g.Hero.Str)
	assert.Equal(t, "The poison doesn't seem to affect you.", g.Logs.Last())
}

func TestDeadlyPoison(t *testing.T) {
	g, _ := stepOnto(t, SpikedPit, false, nil, 0, 0, 0, 0)
	assert.True(t, g.Hero.IsDead())
	assert.Equal(t, "You die...", g.Logs.Last())
}

func TestSleepingGas(t *testing.T) {
	g, res := stepOnto(t, SleepingGasTrap, false, nil, 4)
	require.True(t, res.Moved)
	assert.Equal(t, 4, g.Hero.Statuses[StatusSleep])
	res = g.AttemptStep(east)
	assert.Equal(t, StepResult{Reason: ReasonHelpless}, res)

	g, _ = stepOnto(t, SleepingGasTrap, false, func(h *Hero) { h.Props |= PropSleepRes })
	assert.False(t, g.Hero.Has(StatusSleep))
	assert.Empty(t, g.Trace.Records)
}

func TestAdjacentPit(t *testing.T) {
	g := testGame(t, newSeqRand(0, 0, 0, 1), corridorRoom...)
	g.Level.AddTrap(Pit, gruid.Point{3, 1})
	g.Level.AddTrap(Pit, gruid.Point{4, 1}).Seen = true
	g.AttemptStep(east)
	require.Equal(t, HoldPit, g.Hero.Hold)
	res := g.AttemptStep(east)
	require.True(t, res.Moved)
	assert.Equal(t, gruid.Point{4, 1}, g.Hero.P)
	assert.Contains(t, logText(g), "You move into an adjacent pit.")
	// The adjacent pit is entered without an escape roll, and hurts less.
	assert.Equal(t, []Draw{DrawTrapHold, DrawTrapDamage, DrawTrapHold, DrawTrapDamage}, g.Trace.Draws())
	assert.Equal(t, 3, g.Trace.Records[3].N)
}

func TestClimbOutOfPit(t *testing.T) {
	g := testGame(t, newSeqRand(0, 0, 1, 1), corridorRoom...)
	g.Level.AddTrap(Pit, gruid.Point{3, 1})
	g.AttemptStep(east)
	require.Equal(t, 2, g.Hero.Utrap)
	g.AttemptStep(east)
	g.AttemptStep(east)
	assert.Equal(t, HoldNone, g.Hero.Hold)
	assert.Equal(t, "You crawl to the edge of the pit.", g.Logs.Last())
	res := g.AttemptStep(east)
	assert.True(t, res.Moved)
}
