package herostep

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// MaxRunSteps is the maximum number of steps of a single run or travel.
const MaxRunSteps = 80

// RunStyle is the kind of run started with StartRun.
type RunStyle int

const (
	RunUntilBlocked RunStyle = iota // keep going until something blocks the way
	RunRush                         // stop at anything interesting, forks included
	RunCorridor                     // like RunRush, but follow corridors past forks
)

func (st RunStyle) mode() runMode {
	switch st {
	case RunRush:
		return runRush
	case RunCorridor:
		return runGo
	default:
		return runBlocked
	}
}

func (st RunStyle) String() string {
	switch st {
	case RunUntilBlocked:
		return "run"
	case RunRush:
		return "rush"
	case RunCorridor:
		return "corridor"
	}
	return fmt.Sprintf("runstyle(%d)", int(st))
}

// StopReason tells why an automated movement stopped.
type StopReason int

const (
	StopNone           StopReason = iota
	StopBlocked                   // the last step did not move the hero
	StopCap                       // too many steps
	StopBlind                     // the hero cannot see
	StopMonster                   // a monster is in the way
	StopDoor                      // a closed door is next to the hero
	StopTrap                      // a known trap is ahead
	StopWater                     // water or lava is ahead
	StopInteresting               // something interesting is nearby, or a dead end
	StopCorridorWidens            // the corridor forks
	StopHalted                    // the last step stopped automated movement
	StopArrived                   // travel reached its destination
	StopUnreachable               // no discovered cell gets closer to the destination
	StopPrompt                    // a step awaits confirmation
	StopCancelled                 // nothing to continue
	StopReentrant                 // automated movement is already in progress
	StopDead                      // the hero died
)

var stopNames = [...]string{
	StopNone:           "none",
	StopBlocked:        "blocked",
	StopCap:            "step cap",
	StopBlind:          "blind",
	StopMonster:        "monster",
	StopDoor:           "door",
	StopTrap:           "trap ahead",
	StopWater:          "water ahead",
	StopInteresting:    "interesting feature",
	StopCorridorWidens: "corridor widens",
	StopHalted:         "halted",
	StopArrived:        "arrived",
	StopUnreachable:    "unreachable",
	StopPrompt:         "awaiting confirmation",
	StopCancelled:      "cancelled",
	StopReentrant:      "reentrant movement",
	StopDead:           "dead",
}

func (sr StopReason) String() string {
	if sr >= 0 && int(sr) < len(stopNames) {
		return stopNames[sr]
	}
	return fmt.Sprintf("stop(%d)", int(sr))
}

// RunResult reports the outcome of a run.
type RunResult struct {
	Steps  int        // successful steps
	Time   bool       // at least one turn passed
	Stop   StopReason // why the run stopped (never StopNone)
	Last   StepResult // result of the last attempted step
	Prompt *Prompt    // prompt of a suspended last step
}

// autoMode represents the kinds of automated movement.
type autoMode int

const (
	noAuto autoMode = iota
	autoRun
	autoTravel
)

// auto represents information related to automated movement in progress.
type auto struct {
	mode  autoMode
	dir   gruid.Point // last step direction
	dest  gruid.Point // travel destination
	guess bool        // travelling towards a guessed cell
	steps int         // travel steps so far
}

// StartRun runs in the given direction until something stops the hero. It
// cancels any other automated movement first.
func (g *Game) StartRun(dir gruid.Point, style RunStyle) RunResult {
	if g.busy {
		return RunResult{Stop: StopReentrant}
	}
	g.CancelAuto()
	g.busy = true
	defer func() { g.busy = false }()
	g.auto = auto{mode: autoRun, dir: dir}
	g.ctx.run = style.mode()
	rr := g.run()
	g.endAuto()
	if g.Config.LogGame {
		Logger.WithField("turn", g.Turn).Debugf("run %v %s: %d steps, %v", style, DirName(dir), rr.Steps, rr.Stop)
	}
	return rr
}

// Running reports whether a run or travel is in progress.
func (g *Game) Running() bool {
	return g.auto.mode != noAuto
}

func (g *Game) endAuto() {
	g.auto = auto{}
	g.ctx.reset()
}

func (g *Game) run() RunResult {
	var rr RunResult
	for rr.Steps < MaxRunSteps {
		if rr.Steps > 0 {
			if stop := g.lookaround(); stop != StopNone {
				rr.Stop = stop
				return rr
			}
		}
		s := g.newStep(g.auto.dir)
		res := g.resolve(s)
		rr.Last = res
		rr.Time = rr.Time || res.Time
		switch {
		case res.Suspended():
			rr.Stop = StopPrompt
			rr.Prompt = res.Prompt
			return rr
		case !res.Moved:
			rr.Stop = StopBlocked
			return rr
		}
		rr.Steps++
		g.auto.dir = s.dir
		switch {
		case g.Hero.IsDead():
			rr.Stop = StopDead
			return rr
		case s.halt || g.ctx.run == runNone:
			rr.Stop = StopHalted
			return rr
		}
	}
	rr.Stop = StopCap
	return rr
}

// lookaround scans the cells around the hero before a run or travel step.
// It either stops the movement, or may bend the run direction to follow a
// corridor.
func (g *Game) lookaround() StopReason {
	l, h := g.Level, g.Hero
	run := g.ctx.run
	if run == runNone {
		return StopNone
	}
	if h.Has(StatusBlind) {
		return StopBlind
	}
	travel := run == runTravel
	dir := g.auto.dir
	ahead := h.P.Add(dir)
	behind := h.P.Sub(dir)
	var p0 gruid.Point
	i0, corrct, noturn := 9, 0, false
	exits := 0
	m0 := true
	for x := h.P.X - 1; x <= h.P.X+1; x++ {
		for y := h.P.Y - 1; y <= h.P.Y+1; y++ {
			p := gruid.Point{x, y}
			if !inMap(p) || p == h.P {
				continue
			}
			m := l.MonsterAt(p)
			if m != nil && g.canSpot(m) {
				if run != runBlocked && !m.Tame || p == ahead && !travel {
					g.mention("%s blocks your path.", UpperFirst(An(m.Name)))
					return StopMonster
				}
			} else {
				m = nil
			}
			t := l.At(p)
			if p != behind && !IsRock(t) {
				exits++
			}
			if t == Stone || p == behind {
				continue
			}
			corridor := false
			switch tr := l.TrapAt(p); {
			case IsObstructed(t) || t == Floor || t == Air:
				continue
			case l.ClosedDoor(p):
				if x != h.P.X && y != h.P.Y {
					continue
				}
				if run != runBlocked && !travel {
					g.mention("You stop in front of the door.")
					return StopDoor
				}
				corridor = true
			case t == Corridor:
				corridor = true
			case tr != nil && tr.Seen:
				if run == runBlocked {
					corridor = true
					break
				}
				if p == ahead {
					g.mention("You stop in front of %s.", An(tr.Kind.String()))
					return StopTrap
				}
				continue
			case IsPoolOrLava(t):
				if !h.Airborne() && p == ahead {
					g.mention("You stop at the edge of the %s.", TerrainName(t))
					return StopWater
				}
				continue
			default:
				if run == runBlocked {
					corridor = true
					break
				}
				if travel || m != nil {
					continue
				}
				if x == behind.X && y != ahead.Y || y == behind.Y && x != ahead.X {
					continue
				}
				return StopInteresting
			}
			if !corridor {
				continue
			}
			if l.IsSeen(p) {
				i := dist2(p, ahead)
				if i > 2 {
					continue
				}
				if corrct == 1 && dist2(p, p0) != 1 {
					noturn = true
				}
				if i < i0 {
					i0, p0, m0 = i, p, m != nil
				}
			}
			corrct++
		}
	}
	if exits == 0 && !travel && l.At(h.P) == Corridor {
		g.Log("You reach a dead end.")
		return StopInteresting
	}
	if corrct > 1 && run == runRush {
		g.mention("You stop at the fork.")
		return StopCorridorWidens
	}
	if (run == runBlocked || run == runGo || travel) && !noturn && !m0 && i0 != 0 &&
		(corrct == 1 || corrct == 2 && i0 == 1) {
		g.bendRun(p0, i0)
	}
	return StopNone
}

// bendRun turns the run towards the corridor continuation p0, unless the
// accumulated turn would leave [-2, 2].
func (g *Game) bendRun(p0 gruid.Point, i0 int) {
	hp := g.Hero.P
	dir := g.auto.dir
	var i int
	switch {
	case i0 == 2:
		if dir.X == p0.Y-hp.Y && dir.Y == hp.X-p0.X {
			i = 2
		} else {
			i = -2
		}
	case isDiagonal(dir):
		if dir.X == dir.Y && p0.Y == hp.Y || dir.X != dir.Y && p0.Y != hp.Y {
			i = -1
		} else {
			i = 1
		}
	default:
		if p0.X-hp.X == p0.Y-hp.Y && dir.Y == 0 || p0.X-hp.X != p0.Y-hp.Y && dir.Y != 0 {
			i = 1
		} else {
			i = -1
		}
	}
	i += g.ctx.lastStrTurn
	if i <= 2 && i >= -2 {
		g.ctx.lastStrTurn = i
		g.auto.dir = p0.Sub(hp)
	}
}
