package herostep

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// Monster represents the movement-relevant state of a monster. Monster AI
// lives elsewhere: the engine only looks at what happens when the hero bumps
// into one.
type Monster struct {
	Name      string
	P         gruid.Point
	Tame      bool // pet
	Peaceful  bool
	Asleep    bool
	Frozen    int  // paralysis turns
	Immobile  bool // never moves on its own (speed zero)
	Hidden    bool // hiding and undetected
	Invisible bool
	NoDiag    bool // cannot move diagonally
	Big       bool // too big to squeeze between boulders
	InPit     bool // trapped in a pit
}

// CanMove reports whether the monster is currently able to act.
func (m *Monster) CanMove() bool {
	return !m.Asleep && m.Frozen == 0
}

// Stationary reports whether the monster cannot be moved out of its cell:
// it is paralyzed or never moves.
func (m *Monster) Stationary() bool {
	return m.Frozen > 0 || m.Immobile
}

// The returns the definite noun phrase for the monster.
func (m *Monster) The() string {
	if m.Tame || isProperName(m.Name) {
		if m.Tame && !isProperName(m.Name) {
			return "your " + m.Name
		}
		return m.Name
	}
	return "the " + m.Name
}

func (m *Monster) String() string {
	return fmt.Sprintf("%s@%v", m.Name, m.P)
}

func isProperName(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
