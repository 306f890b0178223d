package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	tc "github.com/gdamore/tcell/v2"
)

func newDriver() gruid.Driver {
	return tcell.NewDriver(tcell.Config{StyleManager: styler{}})
}

// styler implements the tcell.StyleManager interface.
type styler struct{}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	switch ColorMode {
	case ColorMode256:
		fg := map16ColorTo256(cst.Fg, true)
		bg := map16ColorTo256(cst.Bg, false)
		st = st.Background(tc.ColorValid + tc.Color(bg)).Foreground(tc.ColorValid + tc.Color(fg))
	default:
		if !DarkColors {
			cst.Fg = map16ColorToLight(cst.Fg)
			cst.Bg = map16ColorToLight(cst.Bg)
		}
		if cst.Bg == gruid.ColorDefault {
			st = st.Background(tc.ColorDefault)
		} else {
			st = st.Background(tc.ColorValid + tc.Color(cst.Bg) - 1)
		}
		if cst.Fg == gruid.ColorDefault {
			st = st.Foreground(tc.ColorDefault)
		} else {
			st = st.Foreground(tc.ColorValid + tc.Color(cst.Fg) - 1)
		}
	}
	if cst.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if cst.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	return st
}

func map16ColorToLight(c gruid.Color) gruid.Color {
	switch c {
	case ColorBackgroundSecondary:
		return ColorForegroundEmph
	case ColorForegroundSecondary, ColorForegroundEmph:
		return ColorBackgroundSecondary
	default:
		return c
	}
}

// xterm solarized colors: http://ethanschoonover.com/solarized
const (
	Color256Base03  gruid.Color = 234
	Color256Base02  gruid.Color = 235
	Color256Base01  gruid.Color = 240
	Color256Base00  gruid.Color = 241 // for dark on light background
	Color256Base0   gruid.Color = 244
	Color256Base1   gruid.Color = 245
	Color256Base2   gruid.Color = 254
	Color256Base3   gruid.Color = 230
	Color256Yellow  gruid.Color = 136
	Color256Orange  gruid.Color = 166
	Color256Red     gruid.Color = 160
	Color256Magenta gruid.Color = 125
	Color256Violet  gruid.Color = 61
	Color256Blue    gruid.Color = 33
	Color256Cyan    gruid.Color = 37
	Color256Green   gruid.Color = 64
)

// pick returns the dark or light variant depending on DarkColors.
func pick(dark, light gruid.Color) gruid.Color {
	if DarkColors {
		return dark
	}
	return light
}

func map16ColorTo256(c gruid.Color, fg bool) gruid.Color {
	switch c {
	case ColorBackground:
		if fg {
			return pick(Color256Base0, Color256Base00)
		}
		return pick(Color256Base03, Color256Base3)
	case ColorBackgroundSecondary:
		return pick(Color256Base02, Color256Base2)
	case ColorForegroundEmph:
		return pick(Color256Base1, Color256Base01)
	case ColorForegroundSecondary:
		return pick(Color256Base01, Color256Base1)
	case ColorYellow:
		return Color256Yellow
	case ColorOrange:
		return Color256Orange
	case ColorRed:
		return Color256Red
	case ColorMagenta:
		return Color256Magenta
	case ColorViolet:
		return Color256Violet
	case ColorBlue:
		return Color256Blue
	case ColorCyan:
		return Color256Cyan
	case ColorGreen:
		return Color256Green
	default:
		return c
	}
}
