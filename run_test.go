package herostep

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
)

var openRoom = []string{
	"-----------",
	"|@........|",
	"|.........|",
	"|.........|",
	"-----------",
}

var cornerCorridor = []string{
	"@####",
	"    #",
	"    #",
}

func TestRunToWall(t *testing.T) {
	for _, style := range []RunStyle{RunUntilBlocked, RunRush, RunCorridor} {
		g := testGame(t, newSeqRand(), openRoom...)
		rr := g.StartRun(east, style)
		if rr.Stop != StopBlocked || rr.Steps != 8 || g.Hero.P != (gruid.Point{9, 1}) {
			t.Errorf("%v: stopped at %v after %d steps (%v)", style, g.Hero.P, rr.Steps, rr.Stop)
		}
		assert.Equal(t, ReasonTerrain, rr.Last.Reason, style.String())
		assert.True(t, rr.Time)
		assert.Equal(t, 8, g.Turn)
		assert.False(t, g.Running())
	}
}

func TestCorridorFollowsCorner(t *testing.T) {
	g := testGame(t, newSeqRand(), cornerCorridor...)
	rr := g.StartRun(east, RunCorridor)
	assert.Equal(t, StopInteresting, rr.Stop)
	assert.Equal(t, 6, rr.Steps)
	assert.Equal(t, gruid.Point{4, 2}, g.Hero.P)
	assert.Equal(t, "You reach a dead end.", g.Logs.Last())
}

func TestRunStopsAtDeadEnd(t *testing.T) {
	for _, style := range []RunStyle{RunUntilBlocked, RunRush, RunCorridor} {
		g := testGame(t, newSeqRand(), "@####")
		rr := g.StartRun(east, style)
		assert.Equal(t, StopInteresting, rr.Stop, style.String())
		assert.Equal(t, 4, rr.Steps, style.String())
		assert.Equal(t, gruid.Point{4, 0}, g.Hero.P, style.String())
		assert.True(t, rr.Last.Moved, style.String())
		assert.Equal(t, "You reach a dead end.", g.Logs.Last(), style.String())
	}
}

func TestCorridorIntoRoomIsNoDeadEnd(t *testing.T) {
	g := testGame(t, newSeqRand(),
		"@##...",
		"   ...",
	)
	rr := g.StartRun(east, RunUntilBlocked)
	assert.NotEqual(t, StopInteresting, rr.Stop)
	assert.Greater(t, g.Hero.P.X, 2)
}

func TestRushStopsAtFork(t *testing.T) {
	g := testGame(t, newSeqRand(), cornerCorridor...)
	rr := g.StartRun(east, RunRush)
	assert.Equal(t, StopCorridorWidens, rr.Stop)
	assert.Equal(t, 3, rr.Steps)
	assert.Equal(t, gruid.Point{3, 0}, g.Hero.P)
}

func TestRushStopsAtDoor(t *testing.T) {
	g := testGame(t, newSeqRand(),
		"----+------",
		"|@........|",
		"|.........|",
		"-----------",
	)
	rr := g.StartRun(east, RunRush)
	assert.Equal(t, StopDoor, rr.Stop)
	assert.Equal(t, 3, rr.Steps)
	assert.Equal(t, gruid.Point{4, 1}, g.Hero.P)
}

func TestRunStopsAtMonster(t *testing.T) {
	for _, style := range []RunStyle{RunUntilBlocked, RunRush} {
		g := testGame(t, newSeqRand(), openRoom...)
		addMonster(t, g, &Monster{Name: "jackal", P: gruid.Point{5, 1}})
		rr := g.StartRun(east, style)
		assert.Equal(t, StopMonster, rr.Stop, style.String())
		assert.Equal(t, gruid.Point{4, 1}, g.Hero.P, style.String())
	}
}

func TestRunPastPet(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	addMonster(t, g, &Monster{Name: "little dog", P: gruid.Point{5, 2}, Tame: true})
	rr := g.StartRun(east, RunUntilBlocked)
	assert.Equal(t, StopBlocked, rr.Stop)
	assert.Equal(t, gruid.Point{9, 1}, g.Hero.P)
}

func TestRushStopsBeforeSeenTrap(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	g.Level.AddTrap(BearTrap, gruid.Point{5, 1}).Seen = true
	rr := g.StartRun(east, RunRush)
	assert.Equal(t, StopBlocked, rr.Stop)
	assert.Equal(t, ReasonTrapAhead, rr.Last.Reason)
	assert.Equal(t, gruid.Point{4, 1}, g.Hero.P)
	assert.Empty(t, g.Trace.Records)
}

func TestRunStopsOnObjects(t *testing.T) {
	g := testGame(t, newSeqRand(), "|@..$...|")
	rr := g.StartRun(east, RunUntilBlocked)
	assert.Equal(t, StopHalted, rr.Stop)
	assert.Equal(t, gruid.Point{4, 0}, g.Hero.P)
	assert.Equal(t, 3, rr.Steps)
}

func TestRunBlind(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	g.Hero.Statuses.Put(StatusBlind, 10)
	g.UpdateVision()
	rr := g.StartRun(east, RunUntilBlocked)
	assert.Equal(t, StopBlind, rr.Stop)
	assert.Equal(t, 1, rr.Steps)
}

func TestRunAttacksUnseenMonster(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	m := addMonster(t, g, &Monster{Name: "watchman", P: gruid.Point{3, 1}, Peaceful: true})
	m.Invisible = true
	g.UpdateVision()
	rr := g.StartRun(east, RunUntilBlocked)
	// Unseen monsters are attacked without confirmation.
	assert.Equal(t, StopBlocked, rr.Stop)
	assert.Equal(t, ReasonAttack, rr.Last.Reason)
	assert.Nil(t, g.Pending())
}
