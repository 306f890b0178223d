package herostep

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// These constants define the common width and height of all levels.
const (
	MapWidth  = 80
	MapHeight = 21
)

// InvalidPos is a special variable containing an invalid position.
var InvalidPos = gruid.Point{-1, -1}

// Terrain cell types. The order matters: every type before Pool blocks
// movement and sight, and every type from Door on is accessible.
const (
	Stone rl.Cell = iota
	Wall
	Tree
	Pool
	Moat
	Lava
	IronBars
	Door
	Corridor
	Floor
	StairsUp
	StairsDown
	Fountain
	Throne
	SinkCell
	Grave
	Altar
	Ice
	Air
)

// IsObstructed reports whether the terrain is solid rock, a wall or a tree.
func IsObstructed(t rl.Cell) bool {
	return t < Pool
}

// IsRock reports whether the terrain blocks ordinary movement regardless of
// doors: obstructed terrain, water, lava and iron bars.
func IsRock(t rl.Cell) bool {
	return t < Door
}

// IsAccessible reports whether the terrain type can be walked on (closed
// doors aside).
func IsAccessible(t rl.Cell) bool {
	return t >= Door
}

// IsPool reports whether the terrain is deep water.
func IsPool(t rl.Cell) bool {
	return t == Pool || t == Moat
}

// IsPoolOrLava reports whether the terrain drowns or burns a walking hero.
func IsPoolOrLava(t rl.Cell) bool {
	return IsPool(t) || t == Lava
}

// IsFurniture reports whether the terrain is a dungeon feature worth
// noticing: stairs, fountains, thrones, sinks, graves and altars.
func IsFurniture(t rl.Cell) bool {
	return t >= StairsUp && t <= Altar
}

// TerrainName returns a short description of the terrain.
func TerrainName(t rl.Cell) string {
	switch t {
	case Stone:
		return "stone"
	case Wall:
		return "wall"
	case Tree:
		return "tree"
	case Pool:
		return "pool of water"
	case Moat:
		return "moat"
	case Lava:
		return "molten lava"
	case IronBars:
		return "iron bars"
	case Door:
		return "doorway"
	case Corridor:
		return "corridor"
	case Floor:
		return "floor"
	case StairsUp:
		return "staircase up"
	case StairsDown:
		return "staircase down"
	case Fountain:
		return "fountain"
	case Throne:
		return "opulent throne"
	case SinkCell:
		return "kitchen sink"
	case Grave:
		return "grave"
	case Altar:
		return "altar"
	case Ice:
		return "ice"
	case Air:
		return "air"
	default:
		return "unknown terrain"
	}
}

// terrainRune returns the ASCII representation used by Level.String and
// ParseLevel.
func terrainRune(t rl.Cell) rune {
	switch t {
	case Stone:
		return ' '
	case Wall:
		return '|'
	case Tree:
		return 'T'
	case Pool:
		return '}'
	case Moat:
		return 'W'
	case Lava:
		return '~'
	case IronBars:
		return '='
	case Door:
		return 'D'
	case Corridor:
		return '#'
	case Floor:
		return '.'
	case StairsUp:
		return '<'
	case StairsDown:
		return '>'
	case Fountain:
		return '{'
	case Throne:
		return '\\'
	case SinkCell:
		return 'S'
	case Grave:
		return 'G'
	case Altar:
		return '_'
	case Ice:
		return 'I'
	case Air:
		return 'A'
	}
	return '?'
}

// DoorState describes the state of a door as a bitmask.
type DoorState uint8

const (
	NoDoor     DoorState = 0 // empty doorway
	DoorBroken DoorState = 1 << iota
	DoorOpen
	DoorClosed
	DoorLocked
)

// Intact reports whether there is an actual door in the doorway, open or
// closed.
func (ds DoorState) Intact() bool {
	return ds&^DoorBroken != NoDoor
}

// Closed reports whether the door blocks movement.
func (ds DoorState) Closed() bool {
	return ds&(DoorClosed|DoorLocked) != 0
}

// inMap reports whether a position is within map bounds (assumming they're
// relative to the upper-left map's corner).
func inMap(p gruid.Point) bool {
	return p.X >= 0 && p.X < MapWidth && p.Y >= 0 && p.Y < MapHeight
}

// CacheGrid represents a map-sized grid of any type.
type CacheGrid[T any] []T

// At returns the value in the grid at a given position.
func (bs CacheGrid[T]) At(p gruid.Point) T {
	var zero T
	i := p.Y*MapWidth + p.X
	if i >= 0 && i < len(bs) && p.X >= 0 && p.X < MapWidth {
		return bs[i]
	}
	return zero
}

// Set puts a value at the given position in the grid.
func (bs CacheGrid[T]) Set(p gruid.Point, v T) {
	i := p.Y*MapWidth + p.X
	if i < 0 || i >= len(bs) || p.X < 0 || p.X >= MapWidth {
		return
	}
	bs[i] = v
}

// New prepares a map-sized grid of zero values. It uses bs if already
// initialized.
func (bs CacheGrid[T]) New() CacheGrid[T] {
	if bs == nil {
		return make(CacheGrid[T], MapWidth*MapHeight)
	}
	clear(bs)
	return bs
}
