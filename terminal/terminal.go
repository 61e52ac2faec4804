package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrNotTerminal is returned by Init when stdin is not a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed is returned once input reaches end of stream
	ErrClosed = errors.New("terminal input closed")

	// ErrCursorTimeout is returned when the terminal never answers a cursor position query
	ErrCursorTimeout = errors.New("no cursor position report from terminal")
)

const (
	// escapeTimeout is the duration to wait after ESC to distinguish
	// standalone ESC from escape sequence start
	escapeTimeout = 50 * time.Millisecond

	// pollInterval bounds each blocking read so context cancellation is observed
	pollInterval = 100 * time.Millisecond

	// cursorReplyTimeout bounds the wait for a DSR answer
	cursorReplyTimeout = 2 * time.Second
)

// Terminal is the drawing surface: 1-indexed cell addressing, immediate-mode
// cursor movement, color output and decoded input.
// Output is buffered until Flush.
type Terminal interface {
	// Init enters raw mode, enables mouse reporting, disables auto-wrap
	Init() error

	// Fini shows the cursor, clears the screen and restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (cols, rows int)

	// CursorPos returns the actual cursor position as reported by the terminal
	CursorPos() (col, row int, err error)

	// PollEvent blocks until the next input event or ctx is done
	PollEvent(ctx context.Context) (Event, error)

	MoveTo(col, row int)
	MoveLeft(n int)
	MoveRight(n int)
	MoveUp(n int)
	MoveDown(n int)

	// ClearScreen erases the whole display without moving the cursor
	ClearScreen()

	// ClearLine erases the cursor row without moving the cursor
	ClearLine()

	SetCursorVisible(visible bool)

	// Print writes text at the cursor, advancing it. Non-default colors are reset afterwards
	Print(text string, fg, bg tcell.Color)

	// Flush writes buffered output to the terminal
	Flush() error
}

// Options configures the ANSI terminal
type Options struct {
	ColorMode ColorMode
	Mouse     MouseMode
}

// DefaultOptions returns environment-detected colors with click and drag reporting
func DefaultOptions() Options {
	return Options{
		ColorMode: DetectColorMode(),
		Mouse:     MouseModeClick | MouseModeDrag,
	}
}

// ansiTerm implements Terminal with direct escape sequences over a Backend
type ansiTerm struct {
	backend Backend
	out     *output
	dec     *decoder
	opts    Options

	cursorTimeout time.Duration

	initialized bool
	finalized   bool
}

// New creates a Terminal on the process stdin/stdout
func New(opts Options) Terminal {
	return NewWithFiles(os.Stdin, os.Stdout, opts)
}

// NewWithFiles creates a Terminal on explicit tty files, e.g. a pty pair
func NewWithFiles(in, out *os.File, opts Options) Terminal {
	return newANSI(newBackend(in, out), opts)
}

func newANSI(b Backend, opts Options) *ansiTerm {
	return &ansiTerm{
		backend: b,
		out:     newOutput(writerFunc(b.Write), opts.ColorMode),
		dec:     newDecoder(),
		opts:    opts,

		cursorTimeout: cursorReplyTimeout,
	}
}

// writerFunc adapts Backend.Write to io.Writer
type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// Init enters raw mode and sets up terminal
func (t *ansiTerm) Init() error {
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	// DISABLE AUTO-WRAP
	// Prevents terminal scroll/wrap on bottom-right corner write
	t.out.raw(csiAutoWrapOff)

	for _, seq := range t.opts.Mouse.enableSequences() {
		t.out.raw(seq)
	}

	if err := t.out.flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal setup: %w", err)
	}

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *ansiTerm) Fini() {
	if !t.initialized || t.finalized {
		return
	}

	// Mouse off first, reverse order of enable
	if t.opts.Mouse != MouseModeNone {
		for _, seq := range mouseOffSequences() {
			t.out.raw(seq)
		}
	}

	t.out.raw(csiReset)
	t.out.raw(csiClear)
	t.out.moveTo(1, 1)
	t.out.raw(csiCursorShow)
	t.out.raw(csiAutoWrapOn)
	t.out.flush()

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *ansiTerm) Size() (int, int) {
	return t.backend.Size()
}

// CursorPos sends DSR and reads until the matching report arrives.
// Keys and mouse events decoded meanwhile stay queued for PollEvent.
func (t *ansiTerm) CursorPos() (int, int, error) {
	t.dec.expectCursorReport()
	t.out.raw(csiCursorReport)
	if err := t.out.flush(); err != nil {
		t.dec.abandonCursorReports()
		return 0, 0, fmt.Errorf("cursor query: %w", err)
	}

	deadline := time.Now().Add(t.cursorTimeout)
	for {
		if col, row, ok := t.dec.takeCursorReport(); ok {
			return col, row, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			t.dec.abandonCursorReports()
			return 0, 0, ErrCursorTimeout
		}
		if remaining > pollInterval {
			remaining = pollInterval
		}
		if err := t.fill(remaining); err != nil {
			t.dec.abandonCursorReports()
			return 0, 0, err
		}
	}
}

// PollEvent blocks until next input event
func (t *ansiTerm) PollEvent(ctx context.Context) (Event, error) {
	for {
		if ev, ok := t.dec.next(); ok {
			if ev.Type == EventCursor {
				// Unsolicited or late report
				continue
			}
			return ev, nil
		}

		if err := ctx.Err(); err != nil {
			return Event{}, err
		}

		if err := t.fill(pollInterval); err != nil {
			return Event{}, err
		}
	}
}

// fill performs one bounded read into the decoder
func (t *ansiTerm) fill(timeout time.Duration) error {
	if t.dec.waitingOnEscape() && timeout > escapeTimeout {
		timeout = escapeTimeout
	}

	data, err := t.backend.Read(timeout)
	if err != nil {
		if errors.Is(err, ErrClosed) {
			return err
		}
		return fmt.Errorf("read input: %w", err)
	}

	if len(data) == 0 {
		// Timeout: a buffered lone ESC is a real Escape key press
		t.dec.flushEscape()
		return nil
	}

	t.dec.feed(data)
	return nil
}

func (t *ansiTerm) MoveTo(col, row int) { t.out.moveTo(col, row) }
func (t *ansiTerm) MoveLeft(n int)      { t.out.move(n, 'D') }
func (t *ansiTerm) MoveRight(n int)     { t.out.move(n, 'C') }
func (t *ansiTerm) MoveUp(n int)        { t.out.move(n, 'A') }
func (t *ansiTerm) MoveDown(n int)      { t.out.move(n, 'B') }

func (t *ansiTerm) ClearScreen() { t.out.raw(csiClear) }
func (t *ansiTerm) ClearLine()   { t.out.raw(csiClearLine) }

// SetCursorVisible shows/hides cursor
func (t *ansiTerm) SetCursorVisible(visible bool) {
	if visible {
		t.out.raw(csiCursorShow)
	} else {
		t.out.raw(csiCursorHide)
	}
}

func (t *ansiTerm) Print(text string, fg, bg tcell.Color) {
	t.out.print(text, fg, bg)
}

// Flush writes buffered output
func (t *ansiTerm) Flush() error {
	if err := t.out.flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range mouseOffSequences() {
		w.Write(seq)
	}

	w.Write(csiCursorShow)
	w.Write(csiReset)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
