package terminal

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func sgr(c tcell.Color, mode ColorMode, bg bool) string {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeColor(w, c, mode, bg)
	w.Flush()
	return buf.String()
}

// TestWriteColorClassic verifies the palette colors keep their classic short codes
func TestWriteColorClassic(t *testing.T) {
	tests := []struct {
		color tcell.Color
		bg    bool
		want  string
	}{
		{tcell.ColorPurple, true, "\x1b[45m"},
		{tcell.ColorFuchsia, false, "\x1b[95m"},
		{tcell.ColorNavy, true, "\x1b[44m"},
		{tcell.ColorBlue, false, "\x1b[94m"},
		{tcell.ColorWhite, false, "\x1b[97m"},
		{tcell.ColorSilver, true, "\x1b[47m"},
		{tcell.ColorRed, true, "\x1b[101m"},
		{tcell.ColorDefault, false, ""},
	}

	for _, mode := range []ColorMode{ColorMode16, ColorMode256} {
		for _, tt := range tests {
			if got := sgr(tt.color, mode, tt.bg); got != tt.want {
				t.Errorf("mode %s color %v bg=%v: got %q, want %q", mode, tt.color, tt.bg, got, tt.want)
			}
		}
	}
}

func TestWriteColorTrueColor(t *testing.T) {
	got := sgr(tcell.NewRGBColor(10, 20, 30), ColorModeTrueColor, false)
	if want := "\x1b[38;2;10;20;30m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Palette colors expand to their RGB values
	got = sgr(tcell.ColorPurple, ColorModeTrueColor, true)
	if want := "\x1b[48;2;128;0;128m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteColor256(t *testing.T) {
	got := sgr(tcell.PaletteColor(200), ColorMode256, true)
	if want := "\x1b[48;5;200m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Pure red RGB maps onto the cube corner 196
	got = sgr(tcell.NewRGBColor(255, 0, 0), ColorMode256, false)
	if want := "\x1b[38;5;196m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteColor16Fallback(t *testing.T) {
	got := sgr(tcell.NewRGBColor(250, 250, 10), ColorMode16, false)
	if want := "\x1b[33m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRGBTo256Gray(t *testing.T) {
	if got := rgbTo256(128, 128, 128); got < 232 {
		t.Errorf("Expected grayscale index for mid gray, got %d", got)
	}
	if got := rgbTo256(0, 0, 0); got != 16 {
		t.Errorf("Expected cube black 16, got %d", got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"16":        ColorMode16,
		"ansi":      ColorMode16,
		"256":       ColorMode256,
		"truecolor": ColorModeTrueColor,
		"24bit":     ColorModeTrueColor,
	}
	for in, want := range tests {
		if got := ParseColorMode(in); got != want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", in, got, want)
		}
	}
}
