package modes

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sketch/engine"
	"github.com/lixenwraith/vi-sketch/terminal"
	"github.com/lixenwraith/vi-sketch/terminal/termtest"
)

// soundRecorder counts played cues
type soundRecorder struct {
	ticks, chimes int
}

func (s *soundRecorder) Tick()  { s.ticks++ }
func (s *soundRecorder) Chime() { s.chimes++ }
func (s *soundRecorder) Close() {}

func keyRune(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func key(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func mouse(action terminal.MouseAction, btn terminal.MouseButton, x, y int) terminal.Event {
	return terminal.Event{Type: terminal.EventMouse, MouseAction: action, MouseBtn: btn, X: x, Y: y}
}

func newTestHandler(cols, rows int) (*InputHandler, *termtest.Recorder, *engine.CanvasState, *soundRecorder) {
	rec := termtest.NewRecorder(cols, rows)
	state := engine.NewCanvasState()
	sound := &soundRecorder{}
	return NewInputHandler(rec, state, sound), rec, state, sound
}

// placeGlyph puts the cursor glyph at (col, row) the way a jump does
func placeGlyph(h *InputHandler, rec *termtest.Recorder, col, row int) {
	rec.MoveTo(col, row)
	h.drawGlyph()
	rec.MoveLeft(1)
	rec.Reset()
}

func assertGlyphAt(t *testing.T, rec *termtest.Recorder, col, row int, color tcell.Color) {
	t.Helper()
	if rec.Col != col || rec.Row != row {
		t.Errorf("Expected cursor at (%d,%d), got (%d,%d)", col, row, rec.Col, rec.Row)
	}
	c, ok := rec.Cell(col, row)
	if !ok || c.Rune != engine.CursorIcon || c.Fg != color {
		t.Errorf("Expected glyph colored %v at (%d,%d), got %+v", color, col, row, c)
	}
}

func assertBlank(t *testing.T, rec *termtest.Recorder, col, row int) {
	t.Helper()
	if c, ok := rec.Cell(col, row); ok && c.Rune != ' ' {
		t.Errorf("Expected (%d,%d) blanked, got %+v", col, row, c)
	}
}

func TestArrowMoves(t *testing.T) {
	tests := []struct {
		name             string
		key              terminal.Key
		wantCol, wantRow int
	}{
		{"left", terminal.KeyLeft, 39, 12},
		{"right", terminal.KeyRight, 41, 12},
		{"up", terminal.KeyUp, 40, 11},
		{"down", terminal.KeyDown, 40, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, rec, _, _ := newTestHandler(80, 24)
			placeGlyph(h, rec, 40, 12)

			out, err := h.HandleEvent(key(tt.key))
			if err != nil {
				t.Fatalf("HandleEvent failed: %v", err)
			}
			if out.Quit || out.Suspend {
				t.Errorf("unexpected outcome %+v", out)
			}

			assertGlyphAt(t, rec, tt.wantCol, tt.wantRow, engine.Colors[0].Cursor)
			assertBlank(t, rec, 40, 12)
		})
	}
}

// TestEdgeGuards verifies moves off the paintable area emit nothing
func TestEdgeGuards(t *testing.T) {
	tests := []struct {
		name     string
		key      terminal.Key
		col, row int
	}{
		{"left at first column", terminal.KeyLeft, 1, 10},
		{"right at last paintable column", terminal.KeyRight, 79, 10},
		{"up at first row", terminal.KeyUp, 10, 1},
		{"down above status bar", terminal.KeyDown, 10, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, rec, _, _ := newTestHandler(80, 24)
			placeGlyph(h, rec, tt.col, tt.row)

			if _, err := h.HandleEvent(key(tt.key)); err != nil {
				t.Fatalf("HandleEvent failed: %v", err)
			}
			if len(rec.Ops) != 0 {
				t.Errorf("Expected no output, got %v", rec.Ops)
			}
			assertGlyphAt(t, rec, tt.col, tt.row, engine.Colors[0].Cursor)
		})
	}
}

func TestNextColor(t *testing.T) {
	h, rec, state, sound := newTestHandler(80, 24)
	placeGlyph(h, rec, 40, 12)

	for i := 0; i < 3; i++ {
		if _, err := h.HandleEvent(keyRune('n')); err != nil {
			t.Fatalf("HandleEvent failed: %v", err)
		}
	}

	if state.Palette().Index() != 3 {
		t.Errorf("Expected palette index 3, got %d", state.Palette().Index())
	}
	assertGlyphAt(t, rec, 40, 12, engine.Colors[3].Cursor)
	if sound.ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", sound.ticks)
	}
}

func TestClearRecenters(t *testing.T) {
	h, rec, state, sound := newTestHandler(80, 24)
	placeGlyph(h, rec, 5, 5)
	state.ToggleDrawing()
	state.Paint(5, 5, engine.Colors[0].Paint)
	state.Paint(6, 5, engine.Colors[0].Paint)

	out, err := h.HandleEvent(keyRune('c'))
	if err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if out.Action != ActionClear {
		t.Errorf("Expected clear action, got %v", out.Action)
	}

	if state.Len() != 0 || state.Drawing() {
		t.Errorf("Expected empty canvas with drawing off, got len=%d drawing=%v", state.Len(), state.Drawing())
	}
	assertGlyphAt(t, rec, 40, 12, engine.Colors[0].Cursor)
	if _, ok := rec.Cell(5, 5); ok {
		t.Error("Expected old glyph cleared from screen")
	}
	if sound.chimes != 1 {
		t.Errorf("Expected one chime, got %d", sound.chimes)
	}
}

func TestReloadRedrawsGlyph(t *testing.T) {
	h, rec, _, _ := newTestHandler(80, 24)
	placeGlyph(h, rec, 20, 8)
	rec.MoveTo(1, 1)
	rec.Print("junk", tcell.ColorDefault, tcell.ColorDefault)
	rec.MoveTo(20, 8)

	if _, err := h.HandleEvent(keyRune('r')); err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}

	if rec.CursorVisible {
		t.Error("Expected cursor hidden after reload")
	}
	if _, ok := rec.Cell(1, 1); ok {
		t.Error("Expected screen cleared")
	}
	assertGlyphAt(t, rec, 20, 8, engine.Colors[0].Cursor)
}

func TestToggleDrawSuspendsPainting(t *testing.T) {
	h, _, state, _ := newTestHandler(80, 24)

	out, err := h.HandleEvent(keyRune('d'))
	if err != nil {
		t.Fatalf("HandleEvent failed: %v", err)
	}
	if !state.Drawing() {
		t.Error("Expected drawing on")
	}
	if !out.Suspend {
		t.Error("Expected toggle event to suspend painting")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []terminal.Event{keyRune('q'), key(terminal.KeyCtrlC), key(terminal.KeyEscape)} {
		h, _, _, _ := newTestHandler(80, 24)
		out, err := h.HandleEvent(ev)
		if err != nil {
			t.Fatalf("HandleEvent failed: %v", err)
		}
		if !out.Quit {
			t.Errorf("Expected %v to quit", ev)
		}
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	h, rec, state, _ := newTestHandler(80, 24)
	placeGlyph(h, rec, 40, 12)

	events := []terminal.Event{
		keyRune('x'),
		keyRune('D'),
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModAlt},
		key(terminal.KeyTab),
		{Type: terminal.EventResize, Width: 100, Height: 30},
	}
	for _, ev := range events {
		out, err := h.HandleEvent(ev)
		if err != nil {
			t.Fatalf("HandleEvent failed: %v", err)
		}
		if out != (Outcome{}) {
			t.Errorf("%v: expected empty outcome, got %+v", ev, out)
		}
	}
	if len(rec.Ops) != 0 || state.Drawing() {
		t.Errorf("Expected no effect, got ops %v drawing=%v", rec.Ops, state.Drawing())
	}
}

func TestMouseJump(t *testing.T) {
	h, rec, _, _ := newTestHandler(80, 24)
	placeGlyph(h, rec, 40, 12)

	out, _ := h.HandleEvent(mouse(terminal.MouseActionPress, terminal.MouseBtnLeft, 10, 5))
	if !out.Suspend {
		t.Error("Expected jump to suspend painting")
	}
	assertGlyphAt(t, rec, 10, 5, engine.Colors[0].Cursor)
	assertBlank(t, rec, 40, 12)

	h.HandleEvent(mouse(terminal.MouseActionDrag, terminal.MouseBtnLeft, 11, 5))
	assertGlyphAt(t, rec, 11, 5, engine.Colors[0].Cursor)
}

// TestMouseJumpRejected verifies clicks on the last column or status row are ignored
func TestMouseJumpRejected(t *testing.T) {
	events := []terminal.Event{
		mouse(terminal.MouseActionPress, terminal.MouseBtnLeft, 80, 5),
		mouse(terminal.MouseActionPress, terminal.MouseBtnLeft, 10, 24),
		mouse(terminal.MouseActionPress, terminal.MouseBtnRight, 10, 5),
		mouse(terminal.MouseActionPress, terminal.MouseBtnWheelUp, 10, 5),
		mouse(terminal.MouseActionMove, terminal.MouseBtnNone, 10, 5),
	}

	for _, ev := range events {
		h, rec, _, _ := newTestHandler(80, 24)
		placeGlyph(h, rec, 40, 12)

		out, _ := h.HandleEvent(ev)
		if out.Suspend {
			t.Errorf("%v: unexpected suspend", ev)
		}
		if len(rec.Ops) != 0 {
			t.Errorf("%v: expected no output, got %v", ev, rec.Ops)
		}
	}
}

func TestMouseReleaseSuspends(t *testing.T) {
	h, rec, _, _ := newTestHandler(80, 24)
	placeGlyph(h, rec, 40, 12)

	out, _ := h.HandleEvent(mouse(terminal.MouseActionRelease, terminal.MouseBtnLeft, 40, 12))
	if !out.Suspend {
		t.Error("Expected release to suspend painting")
	}
	if len(rec.Ops) != 0 {
		t.Errorf("Expected no output, got %v", rec.Ops)
	}
}
