package render

import (
	"fmt"

	"github.com/lixenwraith/vi-sketch/terminal"
)

// Options tunes rendering
type Options struct {
	// LegacyPadding reproduces the old narrow-terminal status bar: padding
	// computed from twice the width and the bar drawn one row higher
	LegacyPadding bool
}

// Renderer repaints the status bar and canvas. Every pass queries the real
// cursor first and returns it there afterwards, so repainting never moves
// the visible cursor.
type Renderer struct {
	term terminal.Terminal
	opts Options
}

// NewRenderer creates a renderer drawing on term
func NewRenderer(term terminal.Terminal, opts Options) *Renderer {
	return &Renderer{term: term, opts: opts}
}

// cursor returns the real cursor position
func (r *Renderer) cursor() (int, int, error) {
	col, row, err := r.term.CursorPos()
	if err != nil {
		return 0, 0, fmt.Errorf("save cursor: %w", err)
	}
	return col, row, nil
}
