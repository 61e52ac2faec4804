package engine

import "github.com/gdamore/tcell/v2"

// CursorIcon is drawn at the cursor position in the active cursor color
const CursorIcon = '⬤'

// ColorPair is one palette entry.
// Paint fills painted cells (as a background behind a blank).
// Cursor colors the cursor icon (as a foreground).
type ColorPair struct {
	Paint  tcell.Color
	Cursor tcell.Color
}

// Colors is the fixed palette, dark variant paints and bright variant marks the cursor
var Colors = [6]ColorPair{
	{Paint: tcell.ColorPurple, Cursor: tcell.ColorFuchsia}, // magenta
	{Paint: tcell.ColorNavy, Cursor: tcell.ColorBlue},
	{Paint: tcell.ColorGreen, Cursor: tcell.ColorLime},
	{Paint: tcell.ColorMaroon, Cursor: tcell.ColorRed},
	{Paint: tcell.ColorOlive, Cursor: tcell.ColorYellow},
	{Paint: tcell.ColorSilver, Cursor: tcell.ColorWhite},
}

// Glyph is the cursor icon rendered in a color; always derived from the palette
type Glyph struct {
	Icon  rune
	Color tcell.Color
}

// String returns the icon as printable text
func (g Glyph) String() string {
	return string(g.Icon)
}

// Palette selects one of Colors by a cyclic index
type Palette struct {
	index int
}

// Index returns the active index in [0, len(Colors))
func (p *Palette) Index() int {
	return p.index
}

// Current returns the active pair
func (p *Palette) Current() ColorPair {
	return Colors[p.index]
}

// Advance moves to the next pair, wrapping after the last
func (p *Palette) Advance() ColorPair {
	p.index = (p.index + 1) % len(Colors)
	return Colors[p.index]
}

// Glyph returns the cursor glyph for the active pair
func (p *Palette) Glyph() Glyph {
	return Glyph{Icon: CursorIcon, Color: Colors[p.index].Cursor}
}
