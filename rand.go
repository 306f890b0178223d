package herostep

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the random source consumed by the engine. A *rand.Rand from
// math/rand/v2 satisfies it. Only the order in which numbers are drawn is
// part of the engine's contract.
type Rand interface {
	IntN(n int) int
}

// NewRand returns the default seeded random source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw names a point in step resolution where a random number is drawn.
// Each draw point appears at exactly one place in the code.
type Draw int

const (
	DrawTurbulence    Draw = iota // whether air turbulence hampers the step
	DrawTurbulenceMsg             // which turbulence message is shown
	DrawConfusion                 // whether confusion redirects the step
	DrawConfusedDir               // random direction while stunned or confused
	DrawBreakaway                 // pulling free from a holding monster
	DrawPetRefusal                // an immobile pet refusing to be displaced
	DrawWebCut                    // cutting a web by force-fighting it
	DrawLuck                      // luck adjustment of a luck-weighted roll
	DrawDoorOpen                  // forcing a closed door open
	DrawBearTrapEscape            // loosening a bear trap
	DrawPitCrevice                // boulder crevice while climbing a pit
	DrawTrapEscape                // avoiding a seen trap
	DrawTrapHold                  // turns held by a trap
	DrawTrapDamage                // damage dealt by a trap
	DrawSpikePoison               // whether pit spikes are poisoned
	DrawPoisonSeverity            // which poison effect applies
	DrawPoisonLoss                // hit points or strength lost to poison
	DrawSleepDuration             // turns of sleep from a gas trap
	DrawFireResisted              // residual damage of a resisted fire trap
	DrawFireMaxHP                 // maximum hit points burnt away
	DrawArmorScorch               // which armor slot fire reaches
	DrawBurnItems                 // possessions reached by fire
	DrawEnergyDrain               // energy drained by an anti-magic field
	DrawBoulderFill               // whether a pushed boulder fills water or lava
)

var drawNames = [...]string{
	DrawTurbulence:     "turbulence",
	DrawTurbulenceMsg:  "turbulence-msg",
	DrawConfusion:      "confusion",
	DrawConfusedDir:    "confused-dir",
	DrawBreakaway:      "breakaway",
	DrawPetRefusal:     "pet-refusal",
	DrawWebCut:         "web-cut",
	DrawLuck:           "luck",
	DrawDoorOpen:       "door-open",
	DrawBearTrapEscape: "bear-trap-escape",
	DrawPitCrevice:     "pit-crevice",
	DrawTrapEscape:     "trap-escape",
	DrawTrapHold:       "trap-hold",
	DrawTrapDamage:     "trap-damage",
	DrawSpikePoison:    "spike-poison",
	DrawPoisonSeverity: "poison-severity",
	DrawPoisonLoss:     "poison-loss",
	DrawSleepDuration:  "sleep-duration",
	DrawFireResisted:   "fire-resisted",
	DrawFireMaxHP:      "fire-maxhp",
	DrawArmorScorch:    "armor-scorch",
	DrawBurnItems:      "burn-items",
	DrawEnergyDrain:    "energy-drain",
	DrawBoulderFill:    "boulder-fill",
}

func (d Draw) String() string {
	if d >= 0 && int(d) < len(drawNames) {
		return drawNames[d]
	}
	return fmt.Sprintf("draw(%d)", int(d))
}

// DrawRecord records a single random draw.
type DrawRecord struct {
	Draw  Draw
	N     int // exclusive upper bound
	Value int
}

func (r DrawRecord) String() string {
	return fmt.Sprintf("%v:rn2(%d)=%d", r.Draw, r.N, r.Value)
}

// DrawTrace accumulates the random draws made by the engine, in order.
type DrawTrace struct {
	Records []DrawRecord
}

// Draws returns the sequence of draw points recorded so far.
func (tr *DrawTrace) Draws() []Draw {
	ds := make([]Draw, len(tr.Records))
	for i, r := range tr.Records {
		ds[i] = r.Draw
	}
	return ds
}

// Reset forgets recorded draws.
func (tr *DrawTrace) Reset() {
	tr.Records = tr.Records[:0]
}

// rn2 returns a random number in [0, n). Non-positive bounds return 0
// without drawing.
func (g *Game) rn2(n int, d Draw) int {
	if n <= 0 {
		return 0
	}
	v := g.rand.IntN(n)
	if g.Trace != nil {
		g.Trace.Records = append(g.Trace.Records, DrawRecord{Draw: d, N: n, Value: v})
	}
	return v
}

// rnd returns a random number in [1, n].
func (g *Game) rnd(n int, d Draw) int {
	return g.rn2(n, d) + 1
}

// rn1 returns a random number in [y, y+x).
func (g *Game) rn1(x, y int, d Draw) int {
	return g.rn2(x, d) + y
}

// dice rolls n dice of x faces.
func (g *Game) dice(n, x int, d Draw) int {
	sum := n
	for range n {
		sum += g.rn2(x, d)
	}
	return sum
}

// rnl returns a luck-weighted random number in [0, n): good luck favors low
// results. The luck adjustment is only drawn when luck is not zero.
func (g *Game) rnl(n int, d Draw) int {
	luck := g.Hero.Luck
	adj := luck
	if n <= 15 {
		adj = (abs(luck) + 1) / 3 * sign(luck)
	}
	i := g.rn2(n, d)
	if adj != 0 && g.rn2(37+abs(adj), DrawLuck) != 0 {
		i -= adj
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
	}
	return i
}
