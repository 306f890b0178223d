package herostep

import "codeberg.org/anaseto/gruid"

// Status represents a temporary hero condition.
type Status int

const (
	StatusBlind Status = iota
	StatusStun
	StatusConfusion
	StatusFumbling
	StatusSleep
	StatusParalysis
	NumStatuses
)

func (st Status) String() string {
	switch st {
	case StatusBlind:
		return "blind"
	case StatusStun:
		return "stunned"
	case StatusConfusion:
		return "confused"
	case StatusFumbling:
		return "fumbling"
	case StatusSleep:
		return "asleep"
	case StatusParalysis:
		return "paralyzed"
	}
	return "unknown status"
}

// Statuses stores remaining turns for each status.
type Statuses []int

// Put puts on a particular status for a given number of turns (if greater than current one).
func (sts Statuses) Put(st Status, turns int) bool {
	if turns <= sts[st] {
		return false
	}
	sts[st] = turns
	return true
}

// Has reports whether the given status is ongoing.
func (sts Statuses) Has(st Status) bool {
	return sts[st] > 0
}

// Props is a bitset of intrinsic or extrinsic hero properties.
type Props uint32

const (
	PropLevitation Props = 1 << iota
	PropFlying
	PropPassesWalls
	PropFireRes
	PropSleepRes
	PropPoisonRes
	PropMagicRes
	PropWaterWalking
	PropHalfPhysical
	PropVerySmall // too small to push boulders or open doors
	PropBig       // too big to squeeze diagonally
	PropSticky    // the hero holds monsters rather than being held
	PropSeeInvisible
)

// HoldKind tells what currently holds the hero in place.
type HoldKind int

const (
	HoldNone HoldKind = iota
	HoldBearTrap
	HoldPit
	HoldWeb
	HoldFloor // stuck in solidified floor
)

// Encumbrance levels, from the hero's carried load.
type Encumbrance int

const (
	Unencumbered Encumbrance = iota
	Burdened
	Stressed
	Strained
	Overtaxed
	Overloaded
)

// Weapon describes the wielded weapon, as far as movement is concerned.
type Weapon struct {
	Name        string
	Blade       bool // slashing weapon that can cut webs
	CutsWebs    bool // cuts through webs without force-fighting
	Enchantment int
}

// ArmorSlot identifies a worn armor piece, in the order a fire trap picks
// them.
type ArmorSlot int

const (
	SlotHelm ArmorSlot = iota
	SlotBody
	SlotShield
	SlotGloves
	SlotBoots
	NumSlots
)

// MaxErosion is the erosion level at which armor cannot burn further.
const MaxErosion = 3

// Armor describes a worn armor piece.
type Armor struct {
	Name      string
	Erosion   int
	Fireproof bool
}

// Intent holds single-step modifiers for the next attempted step.
type Intent struct {
	ForceFight bool // attack whatever is there, even thin air
	NoPickup   bool // do not pick up, nor attack known monsters
}

// Hero contains the state of the hero relevant to movement.
type Hero struct {
	P      gruid.Point
	Intent Intent   // pending intent, consumed by the next step
	Stuck  *Monster // monster holding the hero (or held by a sticky hero)
	Utrap  int      // turns left held by Hold
	Hold   HoldKind

	Statuses Statuses
	Props    Props

	Str, Dex, Con int
	HP, MaxHP     int
	Energy        int
	MaxEnergy     int
	Level         int // experience level
	Luck          int

	Encumbrance Encumbrance
	Load        int // carried weight
	Weapon      *Weapon
	Armor       [NumSlots]*Armor
	Punished    bool // chained to an iron ball
	Room        int  // index of current special room, or -1

	drain int // energy still to be drained by an anti-magic field
}

// NewHero returns an average unencumbered first level hero at p.
func NewHero(p gruid.Point) *Hero {
	return &Hero{
		P:         p,
		Statuses:  make(Statuses, NumStatuses),
		Str:       16,
		Dex:       14,
		Con:       14,
		HP:        14,
		MaxHP:     14,
		Energy:    7,
		MaxEnergy: 7,
		Level:     1,
		Room:      -1,
	}
}

// Has reports whether the given status is ongoing.
func (h *Hero) Has(st Status) bool {
	return h.Statuses.Has(st)
}

// Is reports whether the hero has all the given properties.
func (h *Hero) Is(ps Props) bool {
	return h.Props&ps == ps
}

// Airborne reports whether the hero is levitating or flying.
func (h *Hero) Airborne() bool {
	return h.Props&(PropLevitation|PropFlying) != 0
}

// Helpless reports whether the hero is asleep or paralyzed.
func (h *Hero) Helpless() bool {
	return h.Has(StatusSleep) || h.Has(StatusParalysis)
}

// IsDead reports whether the hero ran out of hit points.
func (h *Hero) IsDead() bool {
	return h.HP <= 0
}

// PendingDrain returns the energy that will still be drained over the next
// turns.
func (h *Hero) PendingDrain() int {
	return h.drain
}

// Trapped reports whether the hero is currently held by a trap.
func (h *Hero) Trapped() bool {
	return h.Utrap > 0
}

func (h *Hero) releaseTrap() {
	h.Utrap = 0
	h.Hold = HoldNone
}

// attrSum returns the combined door-forcing attribute score.
func (h *Hero) attrSum() int {
	return h.Str + h.Dex + h.Con
}
