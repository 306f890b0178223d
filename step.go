package herostep

import (
	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// AttemptStep attempts to move the hero one step in the given direction. It
// consumes the hero's pending intent, and cancels any automated movement and
// any step awaiting confirmation.
func (g *Game) AttemptStep(dir gruid.Point) StepResult {
	if g.busy {
		return StepResult{Reason: ReasonReentrant}
	}
	g.CancelAuto()
	g.busy = true
	defer func() { g.busy = false }()
	return g.resolve(g.newStep(dir))
}

// Fight attacks in the given direction, whatever is there.
func (g *Game) Fight(dir gruid.Point) StepResult {
	if g.busy {
		return StepResult{Reason: ReasonReentrant}
	}
	g.Hero.Intent.ForceFight = true
	return g.AttemptStep(dir)
}

// MoveNoPickup steps in the given direction without picking up anything,
// and without fighting a monster in the way.
func (g *Game) MoveNoPickup(dir gruid.Point) StepResult {
	if g.busy {
		return StepResult{Reason: ReasonReentrant}
	}
	g.Hero.Intent.NoPickup = true
	return g.AttemptStep(dir)
}

// Pending returns the prompt the current step is waiting on, if any.
func (g *Game) Pending() *Prompt {
	if g.pending == nil {
		return nil
	}
	return g.pending.prompt
}

// Resume answers the pending prompt and carries on resolving the suspended
// step from the gate that asked. Without a pending prompt, it does nothing.
func (g *Game) Resume(yes bool) StepResult {
	if g.busy {
		return StepResult{Reason: ReasonReentrant}
	}
	s := g.pending
	if s == nil {
		return StepResult{Reason: ReasonNone}
	}
	g.pending = nil
	s.prompt = nil
	if yes {
		s.answer = answeredYes
	} else {
		s.answer = answeredNo
	}
	g.busy = true
	defer func() { g.busy = false }()
	return g.resolve(s)
}

// CancelAuto stops any automated movement and drops a step awaiting
// confirmation. No time passes.
func (g *Game) CancelAuto() {
	g.auto = auto{}
	g.ctx.reset()
	g.pending = nil
}

func (g *Game) newStep(dir gruid.Point) *step {
	h := g.Hero
	s := &step{from: h.P, intent: h.Intent, run: g.ctx.run}
	h.Intent = Intent{}
	s.setDir(dir)
	return s
}

// resolve evaluates the step gates in order, starting at the step's current
// gate, and commits the move when none of them ended the step.
func (g *Game) resolve(s *step) StepResult {
	for s.gate < len(stepGates) {
		res, done := stepGates[s.gate].fn(g, s)
		if done {
			if res.Prompt != nil {
				return g.suspend(s, res.Prompt)
			}
			return g.finish(s, res)
		}
		s.gate++
		s.answer = unanswered
	}
	return g.finish(s, g.commit(s))
}

func (g *Game) suspend(s *step, p *Prompt) StepResult {
	s.prompt = p
	s.prompted = true
	g.pending = s
	g.LogStyled(p.Text+" [yn] (n)", LogConfirm)
	return StepResult{Reason: ReasonSuspended, Prompt: p}
}

func (g *Game) finish(s *step, res StepResult) StepResult {
	if !res.Moved {
		s.halt = true
	}
	gate := "commit"
	if s.gate < len(stepGates) {
		gate = stepGates[s.gate].name
	}
	if res.Reason == ReasonNone {
		g.impossible("step", "%s: step from %v to %v ended without reason", gate, s.from, s.to)
	}
	if g.Config.LogGame {
		Logger.WithFields(logrus.Fields{
			"turn":   g.Turn,
			"gate":   gate,
			"reason": res.Reason,
		}).Debugf("step %v -> %v", s.from, s.to)
	}
	if res.Time {
		g.EndTurn()
	}
	return res
}

// commit pushes any boulder out of the way and moves the hero into the
// destination cell, then applies what happens there: pet swap, room change,
// liquids, traps and objects.
func (g *Game) commit(s *step) StepResult {
	l, h := g.Level, g.Hero
	if s.displace {
		if res, blocked := g.petBlocked(s); blocked {
			return res
		}
	}
	if s.push && !g.moveBoulders(s) {
		s.halt = true
		return StepResult{Reason: ReasonBoulderStuck}
	}
	h.P = s.to
	if s.displace {
		l.MoveMonster(s.mon, s.from)
		g.Logf("You swap places with %s.", s.mon.The())
	}
	g.UpdateVision()
	g.checkRoom(s)
	t := l.At(h.P)
	if s.run != runNone && s.run != runTravel && (t == Door || IsObstructed(t) || IsFurniture(t)) {
		s.halt = true
	}
	if IsPoolOrLava(t) && !h.Airborne() && !(IsPool(t) && h.Is(PropWaterWalking)) {
		s.halt = true
		if t == Lava {
			g.LogStyled("You fall into the lava!", LogHurtPlayer)
		} else {
			g.LogStyled("You fall into the water!", LogHurtPlayer)
		}
	}
	if tr := l.TrapAt(h.P); tr != nil {
		g.stepOnTrap(tr, s)
	}
	if !h.IsDead() {
		g.pickupHere(s)
		g.describeHere(s)
	}
	return StepResult{Moved: true, Time: true, Reason: ReasonMoved}
}

func (g *Game) petBlocked(s *step) (StepResult, bool) {
	m := s.mon
	l := g.Level
	diag := isDiagonal(s.dir)
	switch {
	case m.InPit && l.BoulderAt(s.to):
		g.Logf("You stop. %s can't move out of that pit.", UpperFirst(m.The()))
	case diag && m.NoDiag:
		g.Logf("You stop. %s can't move diagonally.", UpperFirst(m.The()))
	case diag && m.Big && IsObstructed(l.At(gruid.Point{s.from.X, s.to.Y})) &&
		IsObstructed(l.At(gruid.Point{s.to.X, s.from.Y})):
		g.Logf("You stop. %s won't fit through.", UpperFirst(m.The()))
	default:
		return StepResult{}, false
	}
	s.halt = true
	return StepResult{Time: true, Reason: ReasonPetBlocked}, true
}

// checkRoom reports entering and leaving special rooms.
func (g *Game) checkRoom(s *step) {
	l, h := g.Level, g.Hero
	r := l.RoomAt(h.P)
	if r == h.Room {
		return
	}
	if h.Room >= 0 && h.Room < len(l.Rooms) {
		if old := l.Rooms[h.Room]; old.Kind != RoomOrdinary {
			g.Logf("You leave %s.", old.Name)
		}
	}
	h.Room = r
	if r < 0 {
		return
	}
	room := l.Rooms[r]
	switch {
	case room.Greeting != "":
		g.LogStyled(room.Greeting, LogNotable)
	case room.Kind != RoomOrdinary:
		g.LogfStyled("You enter %s.", LogNotable, room.Name)
	default:
		return
	}
	s.halt = true
}
