package modes

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/vi-sketch/audio"
	"github.com/lixenwraith/vi-sketch/engine"
	"github.com/lixenwraith/vi-sketch/render"
	"github.com/lixenwraith/vi-sketch/status"
	"github.com/lixenwraith/vi-sketch/terminal"
)

// Session runs the event loop: one event is routed, rendered and flushed
// before the next one is read
type Session struct {
	term     terminal.Terminal
	state    *engine.CanvasState
	input    *InputHandler
	renderer *render.Renderer
	stats    *status.Counters
}

// NewSession wires a canvas to a terminal
func NewSession(term terminal.Terminal, state *engine.CanvasState, opts render.Options, sound audio.Player) *Session {
	return &Session{
		term:     term,
		state:    state,
		input:    NewInputHandler(term, state, sound),
		renderer: render.NewRenderer(term, opts),
		stats:    status.NewCounters(),
	}
}

// Stats returns the per-session counters: events, paints and one entry per action
func (s *Session) Stats() *status.Counters {
	return s.stats
}

// Start draws the initial screen: status bar and glyph at the center
func (s *Session) Start() error {
	s.term.ClearScreen()
	s.term.SetCursorVisible(false)

	if err := s.renderer.StatusBar(s.state.Drawing()); err != nil {
		return err
	}
	s.input.centerGlyph()

	return s.term.Flush()
}

// Step handles one event and repaints. Returns true when the event asks to quit
func (s *Session) Step(ev terminal.Event) (bool, error) {
	out, err := s.input.HandleEvent(ev)
	if err != nil {
		return false, fmt.Errorf("handle %s: %w", ev, err)
	}
	s.stats.Inc("events")
	if out.Action != ActionNone {
		s.stats.Inc(out.Action.String())
	}
	if out.Quit {
		return true, nil
	}

	if err := s.renderer.StatusBar(s.state.Drawing()); err != nil {
		return false, err
	}

	if s.state.Drawing() && !out.Suspend {
		col, row, err := s.term.CursorPos()
		if err != nil {
			return false, fmt.Errorf("paint: %w", err)
		}
		s.state.Paint(col, row, s.state.Palette().Current().Paint)
		s.stats.Inc("paints")
	}

	if err := s.renderer.Canvas(s.state.Cells()); err != nil {
		return false, err
	}

	log.Printf("%s: action=%s suspend=%v drawing=%v cells=%d",
		ev, out.Action, out.Suspend, s.state.Drawing(), s.state.Len())

	return false, s.term.Flush()
}

// Run draws the initial screen and processes events until quit, end of
// input or ctx cancellation (all clean exits). Backend failures are returned.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	for {
		ev, err := s.term.PollEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, terminal.ErrClosed) {
				log.Printf("session ended: %v (%s)", err, s.stats)
				return nil
			}
			return err
		}

		quit, err := s.Step(ev)
		if err != nil {
			return err
		}
		if quit {
			log.Printf("session quit (%s)", s.stats)
			return nil
		}
	}
}
