package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestPaletteCycle verifies a full round of advances returns to the first pair
func TestPaletteCycle(t *testing.T) {
	var p Palette

	if p.Index() != 0 {
		t.Fatalf("Expected initial index 0, got %d", p.Index())
	}

	for i := 1; i <= len(Colors); i++ {
		pair := p.Advance()
		want := i % len(Colors)
		if p.Index() != want {
			t.Errorf("After %d advances: expected index %d, got %d", i, want, p.Index())
		}
		if pair != Colors[want] {
			t.Errorf("After %d advances: Advance returned %+v, want %+v", i, pair, Colors[want])
		}
	}

	if p.Current() != Colors[0] {
		t.Errorf("Expected wrap to first pair, got %+v", p.Current())
	}
}

func TestPaletteGlyph(t *testing.T) {
	var p Palette
	p.Advance()
	p.Advance()
	p.Advance()

	g := p.Glyph()
	if g.Icon != CursorIcon {
		t.Errorf("Expected icon %q, got %q", CursorIcon, g.Icon)
	}
	if g.Color != Colors[3].Cursor {
		t.Errorf("Expected glyph color %v, got %v", Colors[3].Cursor, g.Color)
	}
	if g.String() != "⬤" {
		t.Errorf("Expected printable icon, got %q", g.String())
	}
}

// TestColorsPairing verifies each paint color is the dark variant of its cursor color
func TestColorsPairing(t *testing.T) {
	want := []struct {
		paint, cursor tcell.Color
	}{
		{tcell.ColorPurple, tcell.ColorFuchsia},
		{tcell.ColorNavy, tcell.ColorBlue},
		{tcell.ColorGreen, tcell.ColorLime},
		{tcell.ColorMaroon, tcell.ColorRed},
		{tcell.ColorOlive, tcell.ColorYellow},
		{tcell.ColorSilver, tcell.ColorWhite},
	}
	for i, w := range want {
		if Colors[i].Paint != w.paint || Colors[i].Cursor != w.cursor {
			t.Errorf("Colors[%d] = %+v, want paint %v cursor %v", i, Colors[i], w.paint, w.cursor)
		}
	}
}
