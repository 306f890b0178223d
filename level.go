package herostep

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// ErrBadLevel is returned when a level description cannot be parsed.
var ErrBadLevel = errors.New("bad level description")

// Level represents the current dungeon level: terrain and everything that
// lies on it. Level generation is done elsewhere: a Level is either built
// cell by cell or parsed from an ASCII description with ParseLevel.
type Level struct {
	Terrain  rl.Grid              // terrain cells
	Doors    CacheGrid[DoorState] // door state for Door cells
	Seen     CacheGrid[bool]      // cells discovered by the hero
	Boulders CacheGrid[int]       // number of boulders on each cell
	Objects  CacheGrid[[]Object]  // object stacks (boulders excluded)
	Rooms    []Room               // special rooms
	Depth    int                  // dungeon depth
	AirLevel bool                 // whether turbulence hampers movement
	Branch   gruid.Point          // branch staircase position (InvalidPos if none)

	traps     []*Trap
	trapAt    CacheGrid[*Trap]
	monsters  []*Monster
	monsterAt CacheGrid[*Monster]
	roomAt    CacheGrid[int] // room index plus one
}

// NewLevel returns an empty level made of solid stone.
func NewLevel() *Level {
	return &Level{
		Terrain:   rl.NewGrid(MapWidth, MapHeight),
		Doors:     CacheGrid[DoorState](nil).New(),
		Seen:      CacheGrid[bool](nil).New(),
		Boulders:  CacheGrid[int](nil).New(),
		Objects:   CacheGrid[[]Object](nil).New(),
		trapAt:    CacheGrid[*Trap](nil).New(),
		monsterAt: CacheGrid[*Monster](nil).New(),
		roomAt:    CacheGrid[int](nil).New(),
		Depth:     1,
		Branch:    InvalidPos,
	}
}

// At returns the terrain at p. Positions outside the map are stone.
func (l *Level) At(p gruid.Point) rl.Cell {
	return l.Terrain.At(p)
}

// Set changes the terrain at p.
func (l *Level) Set(p gruid.Point, t rl.Cell) {
	l.Terrain.Set(p, t)
}

// DoorAt returns the door state at p.
func (l *Level) DoorAt(p gruid.Point) DoorState {
	if l.At(p) != Door {
		return NoDoor
	}
	return l.Doors.At(p)
}

// SetDoor turns p into a doorway with the given door state.
func (l *Level) SetDoor(p gruid.Point, ds DoorState) {
	l.Set(p, Door)
	l.Doors.Set(p, ds)
}

// ClosedDoor reports whether there is a closed (or locked) door at p.
func (l *Level) ClosedDoor(p gruid.Point) bool {
	return l.At(p) == Door && l.Doors.At(p).Closed()
}

// IntactDoorway reports whether p is a doorway with an actual door in it,
// which forbids diagonal movement in and out.
func (l *Level) IntactDoorway(p gruid.Point) bool {
	return l.At(p) == Door && l.Doors.At(p).Intact()
}

// Accessible reports whether p can be walked on: accessible terrain and no
// closed door.
func (l *Level) Accessible(p gruid.Point) bool {
	return inMap(p) && IsAccessible(l.At(p)) && !l.ClosedDoor(p)
}

// Discover marks p as seen by the hero.
func (l *Level) Discover(p gruid.Point) {
	l.Seen.Set(p, true)
}

// IsSeen reports whether the hero has already discovered p.
func (l *Level) IsSeen(p gruid.Point) bool {
	return l.Seen.At(p)
}

// BoulderAt reports whether there is at least one boulder at p.
func (l *Level) BoulderAt(p gruid.Point) bool {
	return l.Boulders.At(p) > 0
}

// AddBoulder puts a boulder at p.
func (l *Level) AddBoulder(p gruid.Point) {
	l.Boulders.Set(p, l.Boulders.At(p)+1)
}

// removeBoulder removes a boulder at p. It reports false if there was none.
func (l *Level) removeBoulder(p gruid.Point) bool {
	n := l.Boulders.At(p)
	if n <= 0 {
		return false
	}
	l.Boulders.Set(p, n-1)
	return true
}

// ObjectsAt returns the object stack at p.
func (l *Level) ObjectsAt(p gruid.Point) []Object {
	return l.Objects.At(p)
}

// AddObject puts an object on top of the stack at p.
func (l *Level) AddObject(p gruid.Point, o Object) {
	l.Objects.Set(p, append(l.Objects.At(p), o))
}

// removeObject removes the i-th object of the stack at p.
func (l *Level) removeObject(p gruid.Point, i int) Object {
	objs := l.Objects.At(p)
	o := objs[i]
	objs = append(objs[:i:i], objs[i+1:]...)
	if len(objs) == 0 {
		objs = nil
	}
	l.Objects.Set(p, objs)
	return o
}

// TrapAt returns the trap at p, if any.
func (l *Level) TrapAt(p gruid.Point) *Trap {
	return l.trapAt.At(p)
}

// Traps returns all the traps in the level.
func (l *Level) Traps() []*Trap {
	return l.traps
}

// AddTrap creates a new undiscovered trap of the given kind at p. Any
// previous trap at p is replaced.
func (l *Level) AddTrap(kind TrapKind, p gruid.Point) *Trap {
	if t := l.TrapAt(p); t != nil {
		l.RemoveTrap(t)
	}
	t := &Trap{Kind: kind, P: p}
	l.traps = append(l.traps, t)
	l.trapAt.Set(p, t)
	return t
}

// RemoveTrap deletes a trap from the level.
func (l *Level) RemoveTrap(t *Trap) {
	for i, lt := range l.traps {
		if lt == t {
			l.traps = append(l.traps[:i], l.traps[i+1:]...)
			break
		}
	}
	if l.trapAt.At(t.P) == t {
		l.trapAt.Set(t.P, nil)
	}
}

// MonsterAt returns the monster at p, if any.
func (l *Level) MonsterAt(p gruid.Point) *Monster {
	return l.monsterAt.At(p)
}

// Monsters returns the monsters in the level.
func (l *Level) Monsters() []*Monster {
	return l.monsters
}

// AddMonster places a monster at its position. It fails if the cell is
// already occupied.
func (l *Level) AddMonster(m *Monster) error {
	if !inMap(m.P) {
		return fmt.Errorf("placing %s: position %v out of map", m.Name, m.P)
	}
	if other := l.MonsterAt(m.P); other != nil {
		return fmt.Errorf("placing %s: %v already occupied by %s", m.Name, m.P, other.Name)
	}
	l.monsters = append(l.monsters, m)
	l.monsterAt.Set(m.P, m)
	return nil
}

// MoveMonster moves a monster to p, which should be free.
func (l *Level) MoveMonster(m *Monster, p gruid.Point) {
	if l.monsterAt.At(m.P) == m {
		l.monsterAt.Set(m.P, nil)
	}
	m.P = p
	l.monsterAt.Set(p, m)
}

// RemoveMonster removes a monster from the level.
func (l *Level) RemoveMonster(m *Monster) {
	for i, lm := range l.monsters {
		if lm == m {
			l.monsters = append(l.monsters[:i], l.monsters[i+1:]...)
			break
		}
	}
	if l.monsterAt.At(m.P) == m {
		l.monsterAt.Set(m.P, nil)
	}
}

// AddRoom registers a special room covering the given area.
func (l *Level) AddRoom(r Room) {
	l.Rooms = append(l.Rooms, r)
	idx := len(l.Rooms)
	for y := r.Area.Min.Y; y < r.Area.Max.Y; y++ {
		for x := r.Area.Min.X; x < r.Area.Max.X; x++ {
			l.roomAt.Set(gruid.Point{x, y}, idx)
		}
	}
}

// RoomAt returns the index of the room containing p, or -1.
func (l *Level) RoomAt(p gruid.Point) int {
	return l.roomAt.At(p) - 1
}

// ParseLevel builds a level from an ASCII description and returns it along
// with the hero position marked by '@'. Rows shorter than the map are padded
// with stone. The following runes are recognized:
//
//	' ' stone        '-' '|' wall    'T' tree       '}' pool
//	'W' moat         '~' lava        '=' iron bars  '#' corridor
//	'.' floor        '<' '>' stairs  '{' fountain   '\' throne
//	'S' sink         'G' grave       '_' altar      'I' ice
//	'A' air          '+' closed door 'L' locked door
//	'\'' open door   'D' doorless doorway           'B' broken door
//	'0' boulder on floor             '$' gold on floor
//	'@' hero on floor
func ParseLevel(rows []string) (*Level, gruid.Point, error) {
	if len(rows) > MapHeight {
		return nil, InvalidPos, fmt.Errorf("%w: %d rows (max %d)", ErrBadLevel, len(rows), MapHeight)
	}
	l := NewLevel()
	hero := InvalidPos
	for y, row := range rows {
		x := 0
		for _, r := range row {
			if x >= MapWidth {
				return nil, InvalidPos, fmt.Errorf("%w: row %d too long", ErrBadLevel, y)
			}
			p := gruid.Point{x, y}
			switch r {
			case ' ':
				l.Set(p, Stone)
			case '-', '|':
				l.Set(p, Wall)
			case 'T':
				l.Set(p, Tree)
			case '}':
				l.Set(p, Pool)
			case 'W':
				l.Set(p, Moat)
			case '~':
				l.Set(p, Lava)
			case '=':
				l.Set(p, IronBars)
			case '#':
				l.Set(p, Corridor)
			case '.':
				l.Set(p, Floor)
			case '<':
				l.Set(p, StairsUp)
			case '>':
				l.Set(p, StairsDown)
			case '{':
				l.Set(p, Fountain)
			case '\\':
				l.Set(p, Throne)
			case 'S':
				l.Set(p, SinkCell)
			case 'G':
				l.Set(p, Grave)
			case '_':
				l.Set(p, Altar)
			case 'I':
				l.Set(p, Ice)
			case 'A':
				l.Set(p, Air)
			case '+':
				l.SetDoor(p, DoorClosed)
			case 'L':
				l.SetDoor(p, DoorLocked)
			case '\'':
				l.SetDoor(p, DoorOpen)
			case 'D':
				l.SetDoor(p, NoDoor)
			case 'B':
				l.SetDoor(p, DoorBroken)
			case '0':
				l.Set(p, Floor)
				l.AddBoulder(p)
			case '$':
				l.Set(p, Floor)
				l.AddObject(p, Object{Name: "gold piece", Class: ClassCoin, Quantity: 1})
			case '@':
				if hero != InvalidPos {
					return nil, InvalidPos, fmt.Errorf("%w: two heroes at %v and %v", ErrBadLevel, hero, p)
				}
				l.Set(p, Floor)
				hero = p
			default:
				return nil, InvalidPos, fmt.Errorf("%w: unknown rune %q at %v", ErrBadLevel, r, p)
			}
			x++
		}
	}
	if hero == InvalidPos {
		return nil, InvalidPos, fmt.Errorf("%w: no hero position", ErrBadLevel)
	}
	return l, hero, nil
}

// String returns an ASCII representation of the level, in the format
// understood by ParseLevel (without hero nor objects). Trailing stone is
// trimmed.
func (l *Level) String() string {
	lines := make([]string, 0, MapHeight)
	var sb strings.Builder
	for y := range MapHeight {
		sb.Reset()
		for x := range MapWidth {
			p := gruid.Point{x, y}
			sb.WriteRune(l.cellRune(p))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (l *Level) cellRune(p gruid.Point) rune {
	if l.BoulderAt(p) {
		return '0'
	}
	t := l.At(p)
	if t != Door {
		return terrainRune(t)
	}
	switch ds := l.Doors.At(p); {
	case ds&DoorLocked != 0:
		return 'L'
	case ds&DoorClosed != 0:
		return '+'
	case ds&DoorOpen != 0:
		return '\''
	case ds&DoorBroken != 0:
		return 'B'
	}
	return 'D'
}
