package herostep

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/require"
)

var (
	east      = gruid.Point{1, 0}
	west      = gruid.Point{-1, 0}
	north     = gruid.Point{0, -1}
	south     = gruid.Point{0, 1}
	southEast = gruid.Point{1, 1}
	northEast = gruid.Point{1, -1}
)

// seqRand is a scripted random source. Values are returned in order, and
// zero once exhausted. A value out of bounds is clamped.
type seqRand struct {
	vals []int
	i    int
	ns   []int // bounds asked for, in order
}

func newSeqRand(vals ...int) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) IntN(n int) int {
	r.ns = append(r.ns, n)
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	if v >= n {
		v = n - 1
	}
	return v
}

// testGame builds a game from an ASCII level with default options, and
// records every draw.
func testGame(t *testing.T, rng Rand, rows ...string) *Game {
	t.Helper()
	return testGameConfig(t, DefaultConfig(), rng, rows...)
}

func testGameConfig(t *testing.T, cfg Config, rng Rand, rows ...string) *Game {
	t.Helper()
	l, p, err := ParseLevel(rows)
	require.NoError(t, err)
	g := New(cfg, l, NewHero(p), Hooks{}, rng)
	g.Trace = &DrawTrace{}
	return g
}

// discoverAll marks the whole level as discovered.
func discoverAll(l *Level) {
	for y := range MapHeight {
		for x := range MapWidth {
			l.Discover(gruid.Point{x, y})
		}
	}
}

func addMonster(t *testing.T, g *Game, m *Monster) *Monster {
	t.Helper()
	require.NoError(t, g.Level.AddMonster(m))
	g.UpdateVision()
	return m
}

// logText returns the game log, one entry per line.
func logText(g *Game) string {
	return strings.Join(g.Logs.Texts(), "\n")
}
