package main

import (
	"codeberg.org/anaseto/gruid"
)

// Palette colors, given 16-palette numbers compatible with terminals. The
// styler maps them to a 256-color palette when asked to.
const (
	ColorBackground          gruid.Color = gruid.ColorDefault
	ColorBackgroundSecondary gruid.Color = 1 + 0 // black
	ColorForeground          gruid.Color = gruid.ColorDefault
	ColorForegroundSecondary gruid.Color = 1 + 7  // white
	ColorForegroundEmph      gruid.Color = 1 + 15 // bright white
	ColorRed                 gruid.Color = 1 + 9  // bright red
	ColorGreen               gruid.Color = 1 + 2
	ColorYellow              gruid.Color = 1 + 3
	ColorBlue                gruid.Color = 1 + 4
	ColorMagenta             gruid.Color = 1 + 5
	ColorCyan                gruid.Color = 1 + 6
	ColorOrange              gruid.Color = 1 + 1  // red
	ColorViolet              gruid.Color = 1 + 12 // bright blue
)

// Map colors.
var (
	ColorHero       = ColorForegroundEmph
	ColorMonster    = ColorRed
	ColorPet        = ColorGreen
	ColorPeaceful   = ColorYellow
	ColorTrap       = ColorMagenta
	ColorDoor       = ColorOrange
	ColorWater      = ColorBlue
	ColorLava       = ColorRed
	ColorObject     = ColorCyan
	ColorRemembered = ColorForegroundSecondary
	ColorStatus     = ColorViolet
)

// Styling attributes.
const (
	AttrReverse gruid.AttrMask = 1 << iota
	AttrBold
)

// ColorModeType describes the terminal color palette in use.
type ColorModeType int

const (
	ColorMode16 ColorModeType = iota
	ColorMode256
)

// ColorMode is the palette used by the styler.
var ColorMode ColorModeType

// DarkColors selects the dark variant of the palettes.
var DarkColors = true
