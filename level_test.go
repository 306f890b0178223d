package herostep

import (
	"errors"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	rows := []string{
		"-------",
		"|@.+$0|",
		"|}~=L'|",
		"|DB<_{|",
		"-------",
	}
	l, p, err := ParseLevel(rows)
	require.NoError(t, err)
	assert.Equal(t, gruid.Point{1, 1}, p)
	want := strings.Join([]string{
		"|||||||",
		"|..+.0|",
		"|}~=L'|",
		"|DB<_{|",
		"|||||||",
	}, "\n")
	assert.Equal(t, want, l.String())
	assert.Len(t, l.ObjectsAt(gruid.Point{4, 1}), 1)
}

func TestParseFurniture(t *testing.T) {
	l, _, err := ParseLevel([]string{"@S\\"})
	require.NoError(t, err)
	assert.Equal(t, SinkCell, l.At(gruid.Point{1, 0}))
	assert.Equal(t, "kitchen sink", TerrainName(l.At(gruid.Point{1, 0})))
	assert.True(t, IsFurniture(SinkCell))
	assert.Equal(t, Throne, l.At(gruid.Point{2, 0}))
	assert.Equal(t, ".S\\", strings.TrimRight(l.String(), " \n"))
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no hero", []string{"|..|"}},
		{"two heroes", []string{"|@@|"}},
		{"unknown rune", []string{"|@?|"}},
		{"too long", []string{"@" + strings.Repeat(".", MapWidth)}},
		{"too many rows", append([]string{"@"}, make([]string, MapHeight)...)},
	}
	for _, tc := range tests {
		_, _, err := ParseLevel(tc.rows)
		if !errors.Is(err, ErrBadLevel) {
			t.Errorf("%s: got error %v", tc.name, err)
		}
	}
}

func TestDoorStates(t *testing.T) {
	tests := []struct {
		ds             DoorState
		intact, closed bool
	}{
		{NoDoor, false, false},
		{DoorBroken, false, false},
		{DoorOpen, true, false},
		{DoorClosed, true, true},
		{DoorLocked, true, true},
		{DoorClosed | DoorLocked, true, true},
	}
	for _, tc := range tests {
		if tc.ds.Intact() != tc.intact || tc.ds.Closed() != tc.closed {
			t.Errorf("door state %d: intact=%v closed=%v", tc.ds, tc.ds.Intact(), tc.ds.Closed())
		}
	}
}

func TestLevelMonsters(t *testing.T) {
	l := NewLevel()
	m := &Monster{Name: "newt", P: gruid.Point{3, 3}}
	require.NoError(t, l.AddMonster(m))
	assert.Error(t, l.AddMonster(&Monster{Name: "rat", P: gruid.Point{3, 3}}))
	assert.Error(t, l.AddMonster(&Monster{Name: "rat", P: gruid.Point{-1, 3}}))
	l.MoveMonster(m, gruid.Point{4, 3})
	assert.Nil(t, l.MonsterAt(gruid.Point{3, 3}))
	assert.Same(t, m, l.MonsterAt(gruid.Point{4, 3}))
	l.RemoveMonster(m)
	assert.Nil(t, l.MonsterAt(gruid.Point{4, 3}))
	assert.Empty(t, l.Monsters())
}

func TestLevelRooms(t *testing.T) {
	g := testGame(t, newSeqRand(), openRoom...)
	g.Level.AddRoom(Room{
		Name: "Asidonhopo's general store",
		Kind: RoomShop,
		Area: gruid.NewRange(4, 1, 10, 4),
	})
	g.StartRun(east, RunUntilBlocked)
	assert.Equal(t, gruid.Point{4, 1}, g.Hero.P)
	assert.Equal(t, "You enter Asidonhopo's general store.", g.Logs.Last())
	g.AttemptStep(west)
	assert.Equal(t, "You leave Asidonhopo's general store.", g.Logs.Last())
	assert.Equal(t, -1, g.Hero.Room)
}

func TestCacheGridBounds(t *testing.T) {
	cg := CacheGrid[int](nil).New()
	cg.Set(gruid.Point{MapWidth, 0}, 3)
	assert.Zero(t, cg.At(gruid.Point{0, 1}))
	assert.Zero(t, cg.At(gruid.Point{-1, 0}))
	cg.Set(gruid.Point{2, 2}, 5)
	assert.Equal(t, 5, cg.At(gruid.Point{2, 2}))
	cg = cg.New()
	assert.Zero(t, cg.At(gruid.Point{2, 2}))
}
