package herostep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogsFoldDuplicates(t *testing.T) {
	l := &Logs{}
	l.Message("You hear a door open.", LogNormal)
	l.Message("You hear a door open.", LogNormal)
	l.Message("You hear a door open.", LogNormal)
	assert.Len(t, l.Entries, 1)
	assert.Equal(t, "You hear a door open. (3×)", l.Entries[0].String())

	l.Tick()
	l.Message("You hear a door open.", LogNormal)
	assert.Len(t, l.Entries, 2)
	assert.True(t, l.Entries[1].Tick)
	assert.Equal(t, "• @NYou hear a door open.@N", l.Entries[1].MarkupString())
}

func TestGameLogUpperFirst(t *testing.T) {
	g := testGame(t, newSeqRand(), "@")
	g.Logf("%s doesn't seem to move!", "your kitten")
	assert.Equal(t, "Your kitten doesn't seem to move!", g.Logs.Last())
}

type recordSink []string

func (rs *recordSink) Message(text string, style LogStyle) {
	*rs = append(*rs, text)
}

func TestCustomSink(t *testing.T) {
	var rs recordSink
	l, p, err := ParseLevel([]string{"|@.|"})
	assert.NoError(t, err)
	g := New(DefaultConfig(), l, NewHero(p), Hooks{Sink: &rs}, newSeqRand())
	assert.Nil(t, g.Logs)
	g.Fight(east)
	assert.Equal(t, recordSink{"You harmlessly attack thin air."}, rs)
}
