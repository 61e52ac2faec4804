package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sketch/engine"
)

// Canvas repaints every painted cell in append order, so newer entries cover
// older ones at the same coordinate. The cell under the cursor is skipped to
// keep the cursor glyph visible.
func (r *Renderer) Canvas(cells []engine.PaintedCell) error {
	col, row, err := r.cursor()
	if err != nil {
		return err
	}

	for _, c := range cells {
		if c.Col == col && c.Row == row {
			continue
		}
		r.term.MoveTo(c.Col, c.Row)
		r.term.Print(" ", tcell.ColorDefault, c.Color)
	}

	r.term.MoveTo(col, row)
	return nil
}
