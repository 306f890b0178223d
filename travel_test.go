package herostep

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTravelOwnCell(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	tr := g.StartTravel(g.Hero.P)
	assert.Equal(t, TravelResult{Arrived: true, Stop: StopArrived}, tr)
	assert.Zero(t, g.Turn)
	plan, ok := g.PlanTravel(g.Hero.P)
	assert.True(t, ok)
	assert.Empty(t, plan.Steps)
}

func TestTravelOffMap(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	tr := g.StartTravel(gruid.Point{-3, 2})
	assert.Equal(t, StopUnreachable, tr.Stop)
	assert.False(t, g.Running())
}

var wallRoom = []string{
	"-------",
	"|.....|",
	"|@.|..|",
	"|..|..|",
	"-------",
}

func TestTravelAroundWall(t *testing.T) {
	g := testGame(t, newSeqRand(), wallRoom...)
	discoverAll(g.Level)
	dest := gruid.Point{4, 2}
	plan, ok := g.PlanTravel(dest)
	require.True(t, ok)
	assert.False(t, plan.Guess)
	assert.Equal(t, []gruid.Point{{2, 1}, {3, 1}, {4, 2}}, plan.Steps)

	tr := g.Travel(dest)
	assert.True(t, tr.Arrived)
	assert.Equal(t, StopArrived, tr.Stop)
	assert.Equal(t, 3, tr.Steps)
	assert.True(t, tr.Time)
	assert.Equal(t, dest, g.Hero.P)
	assert.Equal(t, 3, g.Turn)
	assert.False(t, g.Running())
	assert.Empty(t, g.Trace.Records)
}

func TestTravelStepByStep(t *testing.T) {
	g := testGame(t, newSeqRand(), wallRoom...)
	discoverAll(g.Level)
	dest := gruid.Point{4, 2}
	tr := g.StartTravel(dest)
	assert.Equal(t, StopNone, tr.Stop)
	assert.Equal(t, 1, tr.Steps)
	assert.True(t, g.Running())
	d, ok := g.TravelDest()
	assert.True(t, ok)
	assert.Equal(t, dest, d)

	// The way is now walled off: travel heads for the closest reachable
	// cell, then gives up.
	g.Level.Set(gruid.Point{3, 1}, Wall)
	tr = g.ContinueTravel()
	assert.Equal(t, StopNone, tr.Stop)
	assert.Equal(t, gruid.Point{2, 2}, g.Hero.P)
	tr = g.ContinueTravel()
	assert.Equal(t, StopUnreachable, tr.Stop)
	assert.Equal(t, gruid.Point{2, 2}, g.Hero.P)
	assert.False(t, g.Running())
	assert.Equal(t, StopCancelled, g.ContinueTravel().Stop)
}

func TestTravelGuess(t *testing.T) {
	g := testGame(t, newSeqRand(),
		"-------",
		"|@.|...",
		"|..|...",
		"-------",
	)
	dest := gruid.Point{5, 1}
	require.False(t, g.Level.IsSeen(dest))
	plan, ok := g.PlanTravel(dest)
	require.True(t, ok)
	assert.True(t, plan.Guess)
	assert.Equal(t, []gruid.Point{{2, 1}}, plan.Steps)

	tr := g.Travel(dest)
	assert.Equal(t, StopUnreachable, tr.Stop)
	assert.False(t, tr.Arrived)
	assert.Equal(t, 1, tr.Steps)
	assert.True(t, tr.Time)
	assert.Equal(t, gruid.Point{2, 1}, g.Hero.P)
	assert.Equal(t, "You cannot find a way there.", g.Logs.Last())
}

func TestTravelAdjacentTrap(t *testing.T) {
	g := testGame(t, newSeqRand(0), openRoom...)
	dest := gruid.Point{2, 1}
	g.Level.AddTrap(SqueakyBoard, dest).Seen = true
	tr := g.Travel(dest)
	assert.True(t, tr.Arrived)
	assert.Equal(t, 1, tr.Steps)
	assert.Equal(t, "You escape a squeaky board.", g.Logs.Last())
}

func TestTravelAvoidsKnownTraps(t *testing.T) {
	g := testGame(t, newSeqRand(),
		"-------",
		"|.....|",
		"|@...||",
		"|.....|",
		"-------",
	)
	discoverAll(g.Level)
	g.Level.AddTrap(BearTrap, gruid.Point{2, 2}).Seen = true
	plan, ok := g.PlanTravel(gruid.Point{4, 2})
	require.True(t, ok)
	assert.NotContains(t, plan.Steps, gruid.Point{2, 2})
	assert.Len(t, plan.Steps, 3)
}

func TestStepCancelsTravel(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	tr := g.StartTravel(gruid.Point{9, 3})
	require.Equal(t, StopNone, tr.Stop)
	require.True(t, g.Running())
	res := g.AttemptStep(south)
	assert.True(t, res.Moved)
	assert.False(t, g.Running())
	assert.Equal(t, StopCancelled, g.ContinueTravel().Stop)
	_, ok := g.TravelDest()
	assert.False(t, ok)
}

func TestTravelStopsAtMonster(t *testing.T) {
	g := testGame(t, newSeqRand(), wallRoom...)
	discoverAll(g.Level)
	addMonster(t, g, &Monster{Name: "newt", P: gruid.Point{3, 1}})
	tr := g.Travel(gruid.Point{4, 2})
	assert.Equal(t, StopMonster, tr.Stop)
	assert.Equal(t, gruid.Point{2, 1}, g.Hero.P)
}

func TestTravelStepCap(t *testing.T) {
	g := testGame(t, newSeqRand(),
		"@"+strings.Repeat(".", MapWidth-1),
		strings.Repeat("-", MapWidth-1)+".",
		strings.Repeat(".", MapWidth),
	)
	discoverAll(g.Level)
	tr := g.Travel(gruid.Point{0, 2})
	assert.Equal(t, StopCap, tr.Stop)
	assert.Equal(t, MaxRunSteps, tr.Steps)
	assert.Equal(t, gruid.Point{MapWidth - 2, 2}, g.Hero.P)
}

func TestTravelOpensDoor(t *testing.T) {
	g := testGame(t, newSeqRand(), "|@..+..|")
	door := gruid.Point{4, 0}
	tr := g.Travel(gruid.Point{6, 0})
	assert.True(t, tr.Arrived)
	assert.Equal(t, StopArrived, tr.Stop)
	assert.Equal(t, 5, tr.Steps)
	assert.Equal(t, 6, g.Turn)
	assert.Equal(t, DoorOpen, g.Level.DoorAt(door))
	assert.Contains(t, logText(g), "The door opens.")
	assert.Equal(t, []Draw{DrawDoorOpen}, g.Trace.Draws())
}

func TestTravelLockedDoor(t *testing.T) {
	g := testGame(t, newSeqRand(), "|@..L..|")
	tr := g.Travel(gruid.Point{6, 0})
	assert.Equal(t, StopUnreachable, tr.Stop)
	assert.Equal(t, gruid.Point{3, 0}, g.Hero.P)
	assert.Equal(t, "You cannot find a way there.", g.Logs.Last())

	tr = g.Travel(gruid.Point{6, 0})
	assert.Equal(t, StopUnreachable, tr.Stop)
	assert.Zero(t, tr.Steps)
	assert.Empty(t, g.Trace.Records)
}
