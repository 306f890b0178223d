package herostep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRnlWithoutLuck(t *testing.T) {
	g := testGame(t, newSeqRand(7), "@")
	assert.Equal(t, 7, g.rnl(20, DrawDoorOpen))
	assert.Equal(t, []Draw{DrawDoorOpen}, g.Trace.Draws())
}

func TestRnlLuck(t *testing.T) {
	g := testGame(t, newSeqRand(5, 1, 5, 0), "@")
	g.Hero.Luck = 13
	assert.Equal(t, 0, g.rnl(20, DrawDoorOpen))
	assert.Equal(t, 5, g.rnl(20, DrawDoorOpen))
	assert.Equal(t, []Draw{DrawDoorOpen, DrawLuck, DrawDoorOpen, DrawLuck}, g.Trace.Draws())
	assert.Equal(t, 50, g.Trace.Records[1].N)

	// Small ranges use a reduced adjustment.
	g = testGame(t, newSeqRand(5, 1), "@")
	g.Hero.Luck = -4
	assert.Equal(t, 6, g.rnl(10, DrawDoorOpen))
	assert.Equal(t, 38, g.Trace.Records[1].N)
}

func TestDice(t *testing.T) {
	g := testGame(t, newSeqRand(0, 1), "@")
	assert.Equal(t, 3, g.dice(2, 4, DrawTrapDamage))
	assert.Equal(t, 0, g.rn2(0, DrawTrapDamage))
	assert.Len(t, g.Trace.Records, 2)
	assert.Equal(t, "trap-damage:rn2(4)=1", g.Trace.Records[1].String())
}

func TestNewRandDeterministic(t *testing.T) {
	r1, r2 := NewRand(42), NewRand(42)
	for range 100 {
		if r1.IntN(1000) != r2.IntN(1000) {
			t.Fatal("same seed, different sequences")
		}
	}
}

func TestDrawNames(t *testing.T) {
	for d := DrawTurbulence; d <= DrawBoulderFill; d++ {
		if drawNames[d] == "" {
			t.Errorf("draw %d has no name", int(d))
		}
	}
	assert.Equal(t, "draw(99)", Draw(99).String())
}
