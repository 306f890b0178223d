package herostep

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid"
)

// Directions lists the eight directions in the order used when a random
// direction is drawn or when neighbors are scanned: west, north-west, north,
// north-east, east, south-east, south, south-west.
var Directions = [8]gruid.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

var dirNames = map[gruid.Point]string{
	{-1, 0}:  "west",
	{-1, -1}: "northwest",
	{0, -1}:  "north",
	{1, -1}:  "northeast",
	{1, 0}:   "east",
	{1, 1}:   "southeast",
	{0, 1}:   "south",
	{-1, 1}:  "southwest",
}

// DirName returns the compass name of a unit direction.
func DirName(dir gruid.Point) string {
	if s, ok := dirNames[dir]; ok {
		return s
	}
	return "nowhere"
}

// isDiagonal reports whether the direction has both components.
func isDiagonal(dir gruid.Point) bool {
	return dir.X != 0 && dir.Y != 0
}

// sign returns -1, 0 or 1.
func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dist2 returns the squared euclidean distance between two points.
func dist2(p, q gruid.Point) int {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Neighbors returns an iterator over the in-map neighbors (diagonals
// included) of the given position, in Directions order.
func Neighbors(p gruid.Point) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for _, d := range Directions {
			q := p.Add(d)
			if inMap(q) && !yield(q) {
				return
			}
		}
	}
}

// UpperFirst returns a string with its first letter in upper case.
func UpperFirst(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[utf8.RuneLen(r):]
}
