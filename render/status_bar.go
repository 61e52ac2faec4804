package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status bar colors: white on magenta
const (
	StatusFg = tcell.ColorWhite
	StatusBg = tcell.ColorPurple
)

// commandLegend lists the single-key commands
const commandLegend = " - [d]raw - [q]uit - [c]lear - [n]ext_color - [r]eload"

// StatusLabel returns the unpadded status text
func StatusLabel(drawing bool) string {
	if drawing {
		return " Drawing" + commandLegend
	}
	return " Not drawing" + commandLegend
}

// statusLayout returns the padding width and the row the bar goes on
func (r *Renderer) statusLayout(cols, rows, labelWidth int) (pad, row int) {
	row = rows
	if labelWidth <= cols {
		return cols - labelWidth, row
	}
	if !r.opts.LegacyPadding {
		return 0, row
	}
	pad = cols*2 - labelWidth
	if pad < 0 {
		pad = 0
	}
	return pad, rows - 1
}

// StatusBar draws the mode and command legend on the reserved bottom row
func (r *Renderer) StatusBar(drawing bool) error {
	cols, rows := r.term.Size()
	col, row, err := r.cursor()
	if err != nil {
		return err
	}

	label := StatusLabel(drawing)
	pad, barRow := r.statusLayout(cols, rows, runewidth.StringWidth(label))

	r.term.MoveTo(1, barRow)
	r.term.ClearLine()
	r.term.Print(label+strings.Repeat(" ", pad), StatusFg, StatusBg)

	r.term.MoveTo(col, row)
	return nil
}
