package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"

	"codeberg.org/herostep/herostep"
)

// demoLevel is the default playground: two rooms joined by corridors, a
// small shop with the down stairs, and a flooded cellar.
var demoLevel = []string{
	" ------------                  -----------------",
	" |..........|                  |...............|",
	" |..@.......+##########        |.......{.......|",
	" |..........|         #        |...............|",
	" |....0.....|         ####'####'...............|",
	" |..........|                  |......0........|",
	" ----D-------                  --------B--------",
	"     #                                 #",
	"     #            ------               #",
	"     #            |....|      ##########",
	"     ##########   |.>..|      #",
	"              #   |....|      #",
	"              ####+....|   ---'-------",
	"                  ------   |....}}}..|",
	"                           |..~~.....|",
	"                           |.........|",
	"                           -----------",
}

// populate adds the traps, monsters, objects and special rooms of the demo
// level. Custom levels only get what their ASCII description holds.
func populate(l *herostep.Level, demo bool) error {
	if !demo {
		return nil
	}
	traps := []struct {
		kind herostep.TrapKind
		p    gruid.Point
		seen bool
	}{
		{herostep.SqueakyBoard, gruid.Point{7, 1}, true},
		{herostep.BearTrap, gruid.Point{8, 3}, false},
		{herostep.Pit, gruid.Point{17, 2}, false},
		{herostep.Web, gruid.Point{9, 10}, true},
		{herostep.FireTrap, gruid.Point{40, 2}, false},
		{herostep.AntiMagicField, gruid.Point{44, 3}, true},
		{herostep.SleepingGasTrap, gruid.Point{35, 5}, false},
		{herostep.SpikedPit, gruid.Point{30, 15}, false},
	}
	for _, t := range traps {
		l.AddTrap(t.kind, t.p).Seen = t.seen
	}
	monsters := []*herostep.Monster{
		{Name: "little dog", P: gruid.Point{4, 3}, Tame: true},
		{Name: "newt", P: gruid.Point{36, 1}},
		{Name: "watchman", P: gruid.Point{42, 5}, Peaceful: true},
		{Name: "Asidonhopo", P: gruid.Point{19, 11}, Peaceful: true, Immobile: true},
		{Name: "gnome lord", P: gruid.Point{36, 14}, Asleep: true},
		{Name: "lurker above", P: gruid.Point{22, 3}, Hidden: true},
	}
	for _, m := range monsters {
		if err := l.AddMonster(m); err != nil {
			return fmt.Errorf("demo level: %w", err)
		}
	}
	objects := []struct {
		p gruid.Point
		o herostep.Object
	}{
		{gruid.Point{10, 5}, herostep.Object{Name: "gold piece", Class: herostep.ClassCoin, Quantity: 23}},
		{gruid.Point{3, 5}, herostep.Object{Name: "potion of healing", Class: herostep.ClassPotion, Quantity: 1, Weight: 20}},
		{gruid.Point{45, 1}, herostep.Object{Name: "scroll of mapping", Class: herostep.ClassScroll, Quantity: 1, Weight: 5}},
		{gruid.Point{21, 9}, herostep.Object{Name: "pick-axe", Class: herostep.ClassTool, Quantity: 1, Weight: 100}},
		{gruid.Point{36, 15}, herostep.Object{Name: "food ration", Class: herostep.ClassFood, Quantity: 2, Weight: 20}},
	}
	for _, ob := range objects {
		l.AddObject(ob.p, ob.o)
	}
	l.AddRoom(herostep.Room{
		Name:     "Asidonhopo's general store",
		Kind:     herostep.RoomShop,
		Area:     gruid.NewRange(19, 9, 23, 13),
		Greeting: "Hello, stranger! Welcome to Asidonhopo's general store!",
	})
	l.AddRoom(herostep.Room{
		Name:     "the flooded cellar",
		Area:     gruid.NewRange(28, 13, 37, 16),
		Greeting: "The air is damp and warm.",
	})
	return nil
}
