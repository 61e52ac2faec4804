package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sketch/audio"
	"github.com/lixenwraith/vi-sketch/engine"
	"github.com/lixenwraith/vi-sketch/modes"
	"github.com/lixenwraith/vi-sketch/render"
	"github.com/lixenwraith/vi-sketch/terminal"
	"github.com/mattn/go-isatty"
)

var (
	backendFlag      = flag.String("backend", "ansi", "Terminal backend: ansi, tcell")
	colorModeFlag    = flag.String("color", "auto", "Color mode: auto, 16, 256, truecolor")
	soundFlag        = flag.Bool("sound", false, "Play a tone on color change and clear")
	legacyStatusFlag = flag.Bool("legacy-status", false, "Use the old status bar padding on narrow terminals")
	debugFlag        = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the canvas crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SKETCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	term, err := newTerminal(*backendFlag, terminal.ParseColorMode(*colorModeFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-sketch: %v\n", err)
		return 1
	}

	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	sound := audio.NewPlayer(*soundFlag)
	defer sound.Close()

	// Raw mode swallows Ctrl+C as a key; signals from elsewhere end the session the same way
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session := modes.NewSession(term, engine.NewCanvasState(), render.Options{LegacyPadding: *legacyStatusFlag}, sound)
	if err := session.Run(ctx); err != nil {
		log.Printf("fatal: %v", err)
		// Restore before printing so the message lands on a sane screen
		term.Fini()
		fmt.Fprintf(os.Stderr, "vi-sketch: %v\n", err)
		return 1
	}
	return 0
}

// newTerminal selects the drawing backend
func newTerminal(backend string, colorMode terminal.ColorMode) (terminal.Terminal, error) {
	switch backend {
	case "ansi":
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return nil, fmt.Errorf("stdout is not a terminal")
		}
		opts := terminal.DefaultOptions()
		opts.ColorMode = colorMode
		return terminal.New(opts), nil
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		return terminal.NewScreen(screen), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want ansi or tcell)", backend)
}
