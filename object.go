package herostep

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// ObjectClass is the display symbol of an object class, as used in the
// autopickup type filter.
type ObjectClass rune

const (
	ClassCoin      ObjectClass = '$'
	ClassWeapon    ObjectClass = ')'
	ClassArmor     ObjectClass = '['
	ClassRing      ObjectClass = '='
	ClassAmulet    ObjectClass = '"'
	ClassTool      ObjectClass = '('
	ClassFood      ObjectClass = '%'
	ClassPotion    ObjectClass = '!'
	ClassScroll    ObjectClass = '?'
	ClassSpellbook ObjectClass = '+'
	ClassWand      ObjectClass = '/'
	ClassGem       ObjectClass = '*'
)

// Object is a floor object. Inventory bookkeeping is delegated to the
// Inventory collaborator.
type Object struct {
	Name     string
	Class    ObjectClass
	Quantity int
	Weight   int
}

func (o Object) String() string {
	if o.Quantity > 1 {
		return fmt.Sprintf("%d %ss", o.Quantity, o.Name)
	}
	return An(o.Name)
}

// An returns the name with an indefinite article.
func An(name string) string {
	if name == "" {
		return name
	}
	if strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}

// RoomKind is the kind of a special room.
type RoomKind int

const (
	RoomOrdinary RoomKind = iota
	RoomShop
	RoomTemple
	RoomZoo
	RoomVault
)

// Room describes a special room. Entering or leaving it is reported.
type Room struct {
	Name     string
	Kind     RoomKind
	Area     gruid.Range
	Greeting string // message when entering, if any
}
