package herostep

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// runMode is the kind of automated movement in progress.
type runMode int

const (
	runNone    runMode = 0
	runBlocked runMode = 1 // run until something blocks the way
	runRush    runMode = 2 // stop at anything interesting, forks included
	runGo      runMode = 3 // like rush, but corridor forks are fine
	runTravel  runMode = 8
)

// moveContext holds the movement state that carries over between consecutive
// steps of an automated movement.
type moveContext struct {
	run         runMode
	lastStrTurn int // accumulated corridor turn, within [-2, 2]
}

func (c *moveContext) reset() {
	*c = moveContext{}
}

// Reason tells why a step ended the way it did.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMoved
	ReasonSuspended
	ReasonReentrant
	ReasonCancelled
	ReasonNoTravelPath
	ReasonHelpless
	ReasonOverloaded
	ReasonTurbulence
	ReasonConfused
	ReasonOffMap
	ReasonTrapAhead
	ReasonDiagonalDoor
	ReasonHeld
	ReasonMonsterAhead
	ReasonBumpMonster
	ReasonRevealHidden
	ReasonAttack
	ReasonAttackCancelled
	ReasonPetRefused
	ReasonPetBlocked
	ReasonFightBars
	ReasonFightWeb
	ReasonFightEmpty
	ReasonBoulderAhead
	ReasonBoulderStuck
	ReasonDoorOpened
	ReasonDoorResisted
	ReasonDoorLocked
	ReasonDoorClosed
	ReasonTerrain
	ReasonSqueeze
	ReasonSwim
	ReasonTrapCancelled
	ReasonBallChain
	ReasonTrapped
)

var reasonNames = [...]string{
	ReasonNone:            "none",
	ReasonMoved:           "moved",
	ReasonSuspended:       "awaiting confirmation",
	ReasonReentrant:       "reentrant movement",
	ReasonCancelled:       "cancelled",
	ReasonNoTravelPath:    "no travel path",
	ReasonHelpless:        "helpless",
	ReasonOverloaded:      "overloaded",
	ReasonTurbulence:      "turbulence",
	ReasonConfused:        "confused",
	ReasonOffMap:          "off map",
	ReasonTrapAhead:       "known trap ahead",
	ReasonDiagonalDoor:    "diagonal doorway",
	ReasonHeld:            "held by monster",
	ReasonMonsterAhead:    "monster ahead",
	ReasonBumpMonster:     "bumped monster",
	ReasonRevealHidden:    "revealed hidden monster",
	ReasonAttack:          "attack",
	ReasonAttackCancelled: "attack cancelled",
	ReasonPetRefused:      "pet refused",
	ReasonPetBlocked:      "pet blocked",
	ReasonFightBars:       "fought iron bars",
	ReasonFightWeb:        "fought web",
	ReasonFightEmpty:      "fought empty space",
	ReasonBoulderAhead:    "boulder ahead",
	ReasonBoulderStuck:    "boulder stuck",
	ReasonDoorOpened:      "door opened",
	ReasonDoorResisted:    "door resisted",
	ReasonDoorLocked:      "door locked",
	ReasonDoorClosed:      "door closed",
	ReasonTerrain:         "terrain",
	ReasonSqueeze:         "cannot squeeze",
	ReasonSwim:            "avoided water",
	ReasonTrapCancelled:   "trap step cancelled",
	ReasonBallChain:       "ball and chain",
	ReasonTrapped:         "trapped",
}

func (r Reason) String() string {
	if r >= 0 && int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// StepResult reports the outcome of an attempted step.
type StepResult struct {
	Moved  bool    // the hero's position changed
	Time   bool    // a turn passed
	Reason Reason  // what ended the step
	Prompt *Prompt // non-nil when the step awaits confirmation
}

// Suspended reports whether the step awaits an answer to its prompt.
func (r StepResult) Suspended() bool {
	return r.Prompt != nil
}

// PromptKind identifies a confirmation prompt.
type PromptKind int

const (
	PromptAttackPeaceful PromptKind = iota
	PromptEnterTrap
)

// Prompt is a yes/no question suspending a step.
type Prompt struct {
	Kind    PromptKind
	Text    string
	Monster *Monster // for PromptAttackPeaceful
	Trap    *Trap    // for PromptEnterTrap
}

// answer is the state of a step's confirmation.
type answer int

const (
	unanswered answer = iota
	answeredYes
	answeredNo
)

// step is the record threaded through one attempted step. A fresh one is
// built for every attempt: only the run mode (travel included) is copied
// from the persistent context.
type step struct {
	dir    gruid.Point
	from   gruid.Point
	to     gruid.Point
	intent Intent
	run    runMode

	gate     int     // next gate to evaluate
	answer   answer  // answer for the gate that prompted
	prompted bool    // a prompt was already shown during this step
	prompt   *Prompt // pending prompt

	mon      *Monster // monster at destination
	displace bool     // swap places with a pet
	adjPit   bool     // moving from a pit into an adjacent seen pit
	push     bool     // boulders at the destination get pushed on commit
	halt     bool     // automated movement must stop after this step
}

func (s *step) setDir(dir gruid.Point) {
	s.dir = dir
	s.to = s.from.Add(dir)
}

func (s *step) travelling() bool {
	return s.run == runTravel
}
