// Package termtest provides an in-memory Terminal for tests.
package termtest

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sketch/terminal"
	"github.com/mattn/go-runewidth"
)

// Cell is one written screen cell
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Recorder behaves like an ANSI terminal with auto-wrap off: moves clamp to
// the screen and printing sticks at the last column. Every primitive is
// logged in Ops so tests can assert exactly what was emitted.
type Recorder struct {
	Cols, Rows int
	Col, Row   int

	CursorVisible bool
	Flushes       int
	Ops           []string

	// Events are returned by PollEvent in order, then ErrClosed
	Events []terminal.Event

	// CursorErr makes CursorPos fail when set
	CursorErr error

	cells map[[2]int]Cell
}

// NewRecorder returns a cols x rows screen with the cursor at (1,1)
func NewRecorder(cols, rows int) *Recorder {
	return &Recorder{
		Cols:          cols,
		Rows:          rows,
		Col:           1,
		Row:           1,
		CursorVisible: true,
		cells:         make(map[[2]int]Cell),
	}
}

// Cell returns what was last written at (col, row)
func (r *Recorder) Cell(col, row int) (Cell, bool) {
	c, ok := r.cells[[2]int{col, row}]
	return c, ok
}

// Text returns the runes of a row, unwritten cells as spaces
func (r *Recorder) Text(row int) string {
	out := make([]rune, r.Cols)
	for col := 1; col <= r.Cols; col++ {
		out[col-1] = ' '
		if c, ok := r.cells[[2]int{col, row}]; ok {
			out[col-1] = c.Rune
		}
	}
	return string(out)
}

// Reset forgets recorded operations, keeping screen contents
func (r *Recorder) Reset() {
	r.Ops = nil
}

func (r *Recorder) log(format string, args ...any) {
	r.Ops = append(r.Ops, fmt.Sprintf(format, args...))
}

func (r *Recorder) Init() error { return nil }
func (r *Recorder) Fini()       {}

func (r *Recorder) Size() (int, int) { return r.Cols, r.Rows }

func (r *Recorder) CursorPos() (int, int, error) {
	if r.CursorErr != nil {
		return 0, 0, r.CursorErr
	}
	return r.Col, r.Row, nil
}

func (r *Recorder) PollEvent(ctx context.Context) (terminal.Event, error) {
	if err := ctx.Err(); err != nil {
		return terminal.Event{}, err
	}
	if len(r.Events) == 0 {
		return terminal.Event{}, terminal.ErrClosed
	}
	ev := r.Events[0]
	r.Events = r.Events[1:]
	return ev, nil
}

func (r *Recorder) MoveTo(col, row int) {
	r.log("move_to %d,%d", col, row)
	r.Col, r.Row = col, row
	r.clamp()
}

func (r *Recorder) MoveLeft(n int)  { r.log("left %d", n); r.Col -= n; r.clamp() }
func (r *Recorder) MoveRight(n int) { r.log("right %d", n); r.Col += n; r.clamp() }
func (r *Recorder) MoveUp(n int)    { r.log("up %d", n); r.Row -= n; r.clamp() }
func (r *Recorder) MoveDown(n int)  { r.log("down %d", n); r.Row += n; r.clamp() }

func (r *Recorder) clamp() {
	r.Col = min(max(r.Col, 1), r.Cols)
	r.Row = min(max(r.Row, 1), r.Rows)
}

func (r *Recorder) ClearScreen() {
	r.log("clear_screen")
	clear(r.cells)
}

func (r *Recorder) ClearLine() {
	r.log("clear_line")
	for col := 1; col <= r.Cols; col++ {
		delete(r.cells, [2]int{col, r.Row})
	}
}

func (r *Recorder) SetCursorVisible(visible bool) {
	r.log("cursor_visible %v", visible)
	r.CursorVisible = visible
}

func (r *Recorder) Print(text string, fg, bg tcell.Color) {
	r.log("print %q", text)
	for _, ch := range text {
		r.cells[[2]int{r.Col, r.Row}] = Cell{Rune: ch, Fg: fg, Bg: bg}
		r.Col += max(runewidth.RuneWidth(ch), 1)
		if r.Col > r.Cols {
			r.Col = r.Cols
		}
	}
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

var _ terminal.Terminal = (*Recorder)(nil)
