package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sketch/audio"
	"github.com/lixenwraith/vi-sketch/engine"
	"github.com/lixenwraith/vi-sketch/terminal"
)

// Outcome is the result of routing one event
type Outcome struct {
	Action Action
	Quit   bool
	// Suspend disables painting for this event only; the drawing flag is untouched
	Suspend bool
}

// InputHandler maps decoded events to canvas state changes and immediate
// cursor glyph movement on the terminal
type InputHandler struct {
	term     terminal.Terminal
	state    *engine.CanvasState
	sound    audio.Player
	bindings *BindingTable
}

// NewInputHandler creates a new input handler
func NewInputHandler(term terminal.Terminal, state *engine.CanvasState, sound audio.Player) *InputHandler {
	if sound == nil {
		sound = audio.Nop{}
	}
	return &InputHandler{
		term:     term,
		state:    state,
		sound:    sound,
		bindings: DefaultBindings(),
	}
}

// HandleEvent processes one event
func (h *InputHandler) HandleEvent(ev terminal.Event) (Outcome, error) {
	switch ev.Type {
	case terminal.EventKey:
		return h.handleKeyEvent(ev)
	case terminal.EventMouse:
		return h.handleMouseEvent(ev), nil
	}
	return Outcome{}, nil
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev terminal.Event) (Outcome, error) {
	action := h.bindings.Lookup(ev)
	out := Outcome{Action: action}

	switch action {
	case ActionQuit:
		out.Quit = true

	case ActionToggleDraw:
		h.state.ToggleDrawing()
		// Painting starts with the next movement
		out.Suspend = true

	case ActionReload:
		h.term.ClearScreen()
		h.term.SetCursorVisible(false)
		h.drawGlyph()
		h.term.MoveLeft(1)

	case ActionClear:
		h.state.Clear()
		h.term.ClearScreen()
		h.centerGlyph()
		h.sound.Chime()

	case ActionNextColor:
		h.state.Palette().Advance()
		h.drawGlyph()
		h.term.MoveLeft(1)
		h.sound.Tick()

	case ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown:
		if err := h.move(action); err != nil {
			return out, err
		}
	}

	return out, nil
}

// move shifts the glyph one cell, blanking the old cell. Moves that would
// leave the paintable area emit nothing; the bottom row is the status bar.
func (h *InputHandler) move(action Action) error {
	cols, rows := h.term.Size()
	col, row, err := h.term.CursorPos()
	if err != nil {
		return err
	}

	switch action {
	case ActionMoveLeft:
		if col <= 1 {
			return nil
		}
		h.blank()
		h.term.MoveLeft(2)
		h.drawGlyph()
		h.term.MoveLeft(1)

	case ActionMoveRight:
		if col >= cols-1 {
			return nil
		}
		h.blank()
		h.drawGlyph()
		h.term.MoveLeft(1)

	case ActionMoveDown:
		if row >= rows-1 {
			return nil
		}
		h.blank()
		h.term.MoveLeft(1)
		h.term.MoveDown(1)
		h.drawGlyph()
		h.term.MoveLeft(1)

	case ActionMoveUp:
		if row <= 1 {
			return nil
		}
		h.blank()
		h.term.MoveLeft(1)
		h.term.MoveUp(1)
		h.drawGlyph()
		h.term.MoveLeft(1)
	}
	return nil
}

// handleMouseEvent jumps the glyph to left-clicks and drags. Accepted jumps
// and releases suspend painting; a rejected press does not, so with drawing on
// the cell under the unmoved cursor is painted
func (h *InputHandler) handleMouseEvent(ev terminal.Event) Outcome {
	switch ev.MouseAction {
	case terminal.MouseActionDrag:
		return Outcome{Suspend: h.jump(ev.X, ev.Y)}
	case terminal.MouseActionPress:
		if ev.MouseBtn != terminal.MouseBtnLeft {
			return Outcome{}
		}
		return Outcome{Suspend: h.jump(ev.X, ev.Y)}
	case terminal.MouseActionRelease:
		return Outcome{Suspend: true}
	}
	return Outcome{}
}

// jump moves the glyph to (col, row) unless it is on the last column or the status bar row
func (h *InputHandler) jump(col, row int) bool {
	cols, rows := h.term.Size()
	if col == cols || row == rows {
		return false
	}
	h.blank()
	h.term.MoveTo(col, row)
	h.drawGlyph()
	h.term.MoveLeft(1)
	return true
}

// centerGlyph places the glyph in the middle of the terminal
func (h *InputHandler) centerGlyph() {
	cols, rows := h.term.Size()
	h.term.MoveTo(cols/2, rows/2)
	h.drawGlyph()
	h.term.MoveLeft(1)
}

func (h *InputHandler) drawGlyph() {
	g := h.state.Palette().Glyph()
	h.term.Print(g.String(), g.Color, tcell.ColorDefault)
}

func (h *InputHandler) blank() {
	h.term.Print(" ", tcell.ColorDefault, tcell.ColorDefault)
}
