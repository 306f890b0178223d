package herostep

import "codeberg.org/anaseto/gruid"

// Plan is the path travel would currently follow.
type Plan struct {
	Steps []gruid.Point // cells to walk through, the hero's cell excluded
	Guess bool          // the path leads to the reachable cell closest to the destination
}

// PlanTravel computes, without moving, the path the hero would follow to
// dest with the current knowledge of the level. It reports false when no
// discovered cell brings the hero closer to dest. Planning to the hero's
// own cell gives an empty plan.
func (g *Game) PlanTravel(dest gruid.Point) (Plan, bool) {
	h := g.Hero
	if dest == h.P {
		return Plan{}, true
	}
	goal, guess, ok := g.travelGoal(dest)
	if !ok {
		return Plan{Guess: true}, false
	}
	plan := Plan{Guess: guess}
	for p := h.P; p != goal; {
		q, ok := g.nextTravelCell(p, goal)
		if !ok || len(plan.Steps) > unreachable {
			g.impossible("travel", "broken travel wave from %v to %v", p, goal)
			return plan, false
		}
		plan.Steps = append(plan.Steps, q)
		p = q
	}
	return plan, true
}

// TravelResult reports the outcome of travel turns.
type TravelResult struct {
	Arrived bool       // the hero is at the destination
	Time    bool       // at least one turn passed
	Steps   int        // successful steps
	Stop    StopReason // StopNone while travel goes on
	Last    StepResult // result of the last attempted step
	Prompt  *Prompt    // prompt of a suspended last step
}

// StartTravel starts travelling to dest and takes the first step. It
// cancels any other automated movement first. Travel then goes on, one step
// per call, with ContinueTravel, until the result has a stop reason.
func (g *Game) StartTravel(dest gruid.Point) TravelResult {
	if g.busy {
		return TravelResult{Stop: StopReentrant}
	}
	g.CancelAuto()
	if dest == g.Hero.P {
		return TravelResult{Arrived: true, Stop: StopArrived}
	}
	if !inMap(dest) {
		return TravelResult{Stop: StopUnreachable}
	}
	g.auto = auto{mode: autoTravel, dest: dest}
	g.ctx.run = runTravel
	return g.travelTurn(true)
}

// ContinueTravel takes the next travel step.
func (g *Game) ContinueTravel() TravelResult {
	if g.busy {
		return TravelResult{Stop: StopReentrant}
	}
	if g.auto.mode != autoTravel {
		return TravelResult{Stop: StopCancelled}
	}
	return g.travelTurn(false)
}

// Travel travels to dest until something stops the hero.
func (g *Game) Travel(dest gruid.Point) TravelResult {
	tr := g.StartTravel(dest)
	for tr.Stop == StopNone {
		next := g.ContinueTravel()
		next.Steps += tr.Steps
		next.Time = next.Time || tr.Time
		tr = next
	}
	return tr
}

// TravelDest returns the current travel destination, if travelling.
func (g *Game) TravelDest() (gruid.Point, bool) {
	if g.auto.mode != autoTravel {
		return InvalidPos, false
	}
	return g.auto.dest, true
}

func (g *Game) travelTurn(first bool) TravelResult {
	g.busy = true
	defer func() { g.busy = false }()
	var tr TravelResult
	if !first {
		if stop := g.lookaround(); stop != StopNone {
			g.endAuto()
			tr.Stop = stop
			return tr
		}
	}
	s := g.newStep(g.auto.dir)
	res := g.resolve(s)
	tr.Last = res
	tr.Time = res.Time
	switch {
	case res.Suspended():
		tr.Stop = StopPrompt
		tr.Prompt = res.Prompt
	case !res.Moved && res.Reason == ReasonNoTravelPath:
		tr.Stop = StopUnreachable
	case res.Reason == ReasonDoorOpened || res.Reason == ReasonDoorResisted:
		// the way goes on through the door next turn
		g.auto.steps++
		if g.auto.steps >= MaxRunSteps {
			tr.Stop = StopCap
		}
	case !res.Moved:
		tr.Stop = StopBlocked
	default:
		tr.Steps = 1
		g.auto.steps++
		g.auto.dir = s.dir
		switch {
		case g.Hero.P == g.auto.dest:
			tr.Arrived = true
			tr.Stop = StopArrived
		case g.Hero.IsDead():
			tr.Stop = StopDead
		case s.halt || g.ctx.run == runNone:
			tr.Stop = StopHalted
		case g.auto.steps >= MaxRunSteps:
			tr.Stop = StopCap
		}
	}
	if tr.Stop != StopNone {
		if g.Config.LogGame {
			Logger.WithField("turn", g.Turn).Debugf("travel to %v: %d steps, %v", g.auto.dest, g.auto.steps, tr.Stop)
		}
		g.endAuto()
	}
	return tr
}

// travelDir returns the direction of the next travel step, re-derived from
// the current state of the level.
func (g *Game) travelDir() (gruid.Point, bool) {
	h := g.Hero
	dest := g.auto.dest
	d := dest.Sub(h.P)
	if d == (gruid.Point{}) {
		return d, false
	}
	if max(abs(d.X), abs(d.Y)) == 1 && g.canStep(h.P, dest, testMove) {
		g.auto.guess = false
		return d, true
	}
	goal, guess, ok := g.travelGoal(dest)
	g.auto.guess = guess
	if !ok {
		g.Log("You cannot find a way there.")
		return d, false
	}
	next, ok := g.nextTravelCell(h.P, goal)
	if !ok {
		g.Log("You cannot find a way there.")
		return d, false
	}
	return next.Sub(h.P), true
}
