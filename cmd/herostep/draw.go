package main

import (
	"fmt"
	"strings"
	"unicode"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"

	"codeberg.org/herostep/herostep"
)

// mapOffset is the position of the map's upper-left corner on screen.
var mapOffset = gruid.Point{0, 2}

// Markups are the @rune styles understood in log and status texts.
var Markups = map[rune]gruid.Style{
	'B': {Fg: ColorBlue},
	'C': {Fg: ColorCyan},
	'G': {Fg: ColorGreen},
	'M': {Fg: ColorMagenta},
	'O': {Fg: ColorOrange},
	'R': {Fg: ColorRed},
	'V': {Fg: ColorViolet},
	'Y': {Fg: ColorYellow},
}

// Draw implements gruid.Model.Draw.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	if md.mode == modeQuit {
		return md.gd
	}
	md.log.Content = md.DrawLog()
	md.log.Draw(md.gd.Slice(md.gd.Range().Lines(0, 2)))
	md.drawMap(md.gd.Slice(md.gd.Range().Shift(mapOffset.X, mapOffset.Y, 0, -1)))
	md.status.Content = md.statusText()
	md.status.Draw(md.gd.Slice(md.gd.Range().Line(UIHeight - 1)))
	return md.gd
}

// DrawLog returns the last log entries that fit in two lines.
func (md *model) DrawLog() ui.StyledText {
	g := md.g
	stt := ui.StyledText{}.WithMarkups(Markups)
	tick := false
	for i := len(g.Logs.Entries) - 1; i >= 0; i-- {
		e := g.Logs.Entries[i]
		s := e.MarkupString()
		if stt.Text() != "" {
			if tick {
				s = s + "\n"
				tick = false
			} else {
				s = s + " "
			}
		}
		if e.Tick {
			tick = true
		}
		if stt.WithText(s+stt.Text()).Format(UIWidth-1).Size().Y > 2 {
			break
		}
		stt = stt.WithText(s + stt.Text()).Format(UIWidth - 1)
	}
	return stt
}

func (md *model) drawMap(gd gruid.Grid) {
	g := md.g
	l := g.Level
	it := l.Terrain.Iterator()
	for it.Next() {
		p := it.P()
		if !l.IsSeen(p) {
			continue
		}
		visible := md.vision.CanSee(p)
		c := gruid.Cell{Rune: md.terrainRune(p), Style: gruid.Style{Fg: terrainColor(l, p)}}
		if t := l.TrapAt(p); t != nil && t.Seen {
			c.Rune = '^'
			c.Style.Fg = ColorTrap
		}
		if objs := l.ObjectsAt(p); len(objs) > 0 {
			c.Rune = rune(objs[len(objs)-1].Class)
			c.Style.Fg = ColorObject
		}
		if l.BoulderAt(p) {
			c.Rune = '0'
			c.Style.Fg = ColorForegroundEmph
		}
		if !visible {
			c.Style.Fg = ColorRemembered
		} else if m := l.MonsterAt(p); m != nil && md.vision.CanSpot(m) {
			c.Rune = monsterRune(m)
			c.Style.Fg = monsterColor(m)
		}
		gd.Set(p, c)
	}
	gd.Set(g.Hero.P, gruid.Cell{Rune: '@', Style: gruid.Style{Fg: ColorHero, Attrs: AttrBold}})
}

// terrainRune returns the map glyph of the terrain at p. Walls are drawn
// vertical unless they continue horizontally.
func (md *model) terrainRune(p gruid.Point) rune {
	l := md.g.Level
	switch l.At(p) {
	case herostep.Stone:
		return ' '
	case herostep.Wall:
		if md.wallAt(p.Add(gruid.Point{-1, 0})) || md.wallAt(p.Add(gruid.Point{1, 0})) {
			return '-'
		}
		return '|'
	case herostep.Door:
		ds := l.DoorAt(p)
		switch {
		case ds.Closed():
			return '+'
		case ds.Intact():
			return '\''
		}
		return '.'
	case herostep.Corridor:
		return '#'
	case herostep.Tree:
		return '#'
	case herostep.Pool, herostep.Moat, herostep.Lava:
		return '}'
	case herostep.IronBars, herostep.SinkCell:
		return '#'
	case herostep.StairsUp:
		return '<'
	case herostep.StairsDown:
		return '>'
	case herostep.Fountain:
		return '{'
	case herostep.Throne:
		return '\\'
	case herostep.Grave:
		return '|'
	case herostep.Altar:
		return '_'
	case herostep.Ice:
		return '.'
	case herostep.Air:
		return ' '
	}
	return '.'
}

func (md *model) wallAt(p gruid.Point) bool {
	t := md.g.Level.At(p)
	return t == herostep.Wall || t == herostep.Door
}

func terrainColor(l *herostep.Level, p gruid.Point) gruid.Color {
	switch t := l.At(p); {
	case t == herostep.Door:
		return ColorDoor
	case t == herostep.Lava:
		return ColorLava
	case herostep.IsPool(t), t == herostep.Fountain:
		return ColorWater
	case t == herostep.Tree:
		return ColorGreen
	case t == herostep.Ice:
		return ColorCyan
	}
	return ColorForeground
}

func monsterRune(m *herostep.Monster) rune {
	name := m.Name
	if name == "" {
		return 'I'
	}
	r := []rune(name)[0]
	if unicode.IsUpper(r) || strings.HasSuffix(name, "man") {
		// people
		return '@'
	}
	if strings.HasPrefix(name, "gnome") {
		return 'G'
	}
	return r
}

func monsterColor(m *herostep.Monster) gruid.Color {
	switch {
	case m.Tame:
		return ColorPet
	case m.Peaceful:
		return ColorPeaceful
	}
	return ColorMonster
}

var encumbranceNames = [...]string{
	herostep.Burdened:   "Burdened",
	herostep.Stressed:   "Stressed",
	herostep.Strained:   "Strained",
	herostep.Overtaxed:  "Overtaxed",
	herostep.Overloaded: "Overloaded",
}

func (md *model) statusText() ui.StyledText {
	g := md.g
	h := g.Hero
	var sb strings.Builder
	hpm := 'N'
	if h.HP*3 < h.MaxHP {
		hpm = 'R'
	}
	fmt.Fprintf(&sb, "HP:@%c%d@N(%d) Pw:%d(%d) St:%d T:%d $:%d", hpm, h.HP, h.MaxHP, h.Energy, h.MaxEnergy, h.Str, g.Turn, md.gold())
	for st := range herostep.NumStatuses {
		if h.Has(st) {
			fmt.Fprintf(&sb, " @V%s@N", st)
		}
	}
	if h.Encumbrance > herostep.Unencumbered {
		fmt.Fprintf(&sb, " @O%s@N", encumbranceNames[h.Encumbrance])
	}
	if h.Trapped() {
		sb.WriteString(" @MTrapped@N")
	}
	switch md.mode {
	case modePrompt:
		sb.WriteString(" @Y[y/n]@N")
	case modeDirection:
		sb.WriteString(" @YDirection?@N")
	case modeDead:
		sb.WriteString(" @RYou died. Press any key.@N")
	}
	if g.Running() {
		if dest, ok := g.TravelDest(); ok {
			fmt.Fprintf(&sb, " @CTravel %v@N", dest)
		}
	}
	return ui.StyledText{}.WithMarkups(Markups).WithText(sb.String())
}

func (md *model) gold() int {
	n := 0
	for _, o := range md.pack {
		if o.Class == herostep.ClassCoin {
			n += o.Quantity
		}
	}
	return n
}
