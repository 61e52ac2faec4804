package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenTerminal implements Terminal on a tcell.Screen.
// tcell owns the real cursor, so the position is tracked here and the
// immediate-mode primitives become SetContent calls on the cell grid.
type ScreenTerminal struct {
	screen tcell.Screen

	col, row      int
	cursorVisible bool
	lastButtons   tcell.ButtonMask

	initialized bool
	finalized   bool
}

// NewScreen wraps an uninitialized tcell screen
func NewScreen(screen tcell.Screen) *ScreenTerminal {
	return &ScreenTerminal{
		screen: screen,
		col:    1,
		row:    1,
	}
}

// Screen exposes the wrapped screen for inspection
func (s *ScreenTerminal) Screen() tcell.Screen {
	return s.screen
}

func (s *ScreenTerminal) Init() error {
	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.screen.HideCursor()
	s.initialized = true
	return nil
}

func (s *ScreenTerminal) Fini() {
	if !s.initialized || s.finalized {
		return
	}
	s.screen.DisableMouse()
	s.screen.Clear()
	s.screen.ShowCursor(0, 0)
	s.screen.Show()
	s.screen.Fini()
	s.finalized = true
}

func (s *ScreenTerminal) Size() (int, int) {
	return s.screen.Size()
}

// CursorPos returns the tracked position; it is always exact for this backend
func (s *ScreenTerminal) CursorPos() (int, int, error) {
	return s.col, s.row, nil
}

// PollEvent converts the next tcell event, skipping kinds without a counterpart
func (s *ScreenTerminal) PollEvent(ctx context.Context) (Event, error) {
	stop := context.AfterFunc(ctx, func() {
		s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}

		tev := s.screen.PollEvent()
		if tev == nil {
			return Event{}, ErrClosed
		}

		if ev, ok := s.convert(tev); ok {
			return ev, nil
		}
	}
}

func (s *ScreenTerminal) convert(tev tcell.Event) (Event, bool) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		return convertKey(ev), true
	case *tcell.EventMouse:
		return s.convertMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBacktab:   KeyBacktab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyInsert:    KeyInsert,
}

func convertKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}

	mod := ev.Modifiers()
	if mod&tcell.ModShift != 0 {
		out.Modifiers |= ModShift
	}
	if mod&tcell.ModAlt != 0 {
		out.Modifiers |= ModAlt
	}
	if mod&tcell.ModCtrl != 0 {
		out.Modifiers |= ModCtrl
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// tcell reports Tab, Enter and Backspace as their control codes
		switch k {
		case tcell.KeyTab:
			out.Key = KeyTab
		case tcell.KeyEnter:
			out.Key = KeyEnter
		case tcell.KeyBackspace:
			out.Key = KeyBackspace
		default:
			out.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
		}
	default:
		if mapped, ok := tcellKeys[k]; ok {
			out.Key = mapped
		} else if k == tcell.KeyBackspace2 {
			out.Key = KeyBackspace
		}
	}
	return out
}

// convertMouse derives press/drag/release from button state transitions
func (s *ScreenTerminal) convertMouse(ev *tcell.EventMouse) (Event, bool) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := s.lastButtons
	s.lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	out := Event{Type: EventMouse, X: x + 1, Y: y + 1}

	switch {
	case buttons&tcell.WheelUp != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelUp, MouseActionPress
		return out, true
	case buttons&tcell.WheelDown != 0:
		out.MouseBtn, out.MouseAction = MouseBtnWheelDown, MouseActionPress
		return out, true
	}

	held := s.lastButtons
	if held == tcell.ButtonNone {
		if prev == tcell.ButtonNone {
			out.MouseAction = MouseActionMove
		} else {
			out.MouseAction = MouseActionRelease
			out.MouseBtn = buttonOf(prev)
		}
		return out, true
	}

	out.MouseBtn = buttonOf(held)
	if held&^prev != 0 {
		out.MouseAction = MouseActionPress
		out.MouseBtn = buttonOf(held &^ prev)
	} else {
		out.MouseAction = MouseActionDrag
	}
	return out, true
}

func buttonOf(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

func (s *ScreenTerminal) MoveTo(col, row int) {
	s.col, s.row = col, row
	s.clamp()
}

func (s *ScreenTerminal) MoveLeft(n int)  { s.col -= n; s.clamp() }
func (s *ScreenTerminal) MoveRight(n int) { s.col += n; s.clamp() }
func (s *ScreenTerminal) MoveUp(n int)    { s.row -= n; s.clamp() }
func (s *ScreenTerminal) MoveDown(n int)  { s.row += n; s.clamp() }

// clamp keeps the cursor on screen the way a real terminal does
func (s *ScreenTerminal) clamp() {
	w, h := s.screen.Size()
	if s.col > w {
		s.col = w
	}
	if s.row > h {
		s.row = h
	}
	if s.col < 1 {
		s.col = 1
	}
	if s.row < 1 {
		s.row = 1
	}
}

func (s *ScreenTerminal) ClearScreen() {
	s.screen.Clear()
}

func (s *ScreenTerminal) ClearLine() {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, s.row-1, ' ', nil, tcell.StyleDefault)
	}
}

func (s *ScreenTerminal) SetCursorVisible(visible bool) {
	s.cursorVisible = visible
}

// Print places runes left to right; with auto-wrap off the cursor sticks at the last column
func (s *ScreenTerminal) Print(text string, fg, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	w, _ := s.screen.Size()
	for _, r := range text {
		s.screen.SetContent(s.col-1, s.row-1, r, nil, style)
		rw := runewidth.RuneWidth(r)
		if rw < 1 {
			rw = 1
		}
		s.col += rw
		if s.col > w {
			s.col = w
		}
	}
}

func (s *ScreenTerminal) Flush() error {
	if s.cursorVisible {
		s.screen.ShowCursor(s.col-1, s.row-1)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
	return nil
}
