package terminal

import (
	"fmt"
	"strings"
)

// keyToName maps Key constants to the names used in debug logs
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyCtrlSpace: "ctrl_space",
}

// String returns the canonical key name
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl_" + string(rune('a'+int(k-KeyCtrlA)))
	}
	if k == KeyRune {
		return "rune"
	}
	return "none"
}

// String renders modifiers as a "+"-joined prefix list
func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// String describes the event for debug logging
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		name := e.Key.String()
		if e.Key == KeyRune {
			name = fmt.Sprintf("%q", e.Rune)
		}
		if e.Modifiers != ModNone {
			name = e.Modifiers.String() + "+" + name
		}
		return "key " + name
	case EventMouse:
		return fmt.Sprintf("mouse %s %s at (%d,%d)", e.MouseAction, e.MouseBtn, e.X, e.Y)
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	case EventCursor:
		return fmt.Sprintf("cursor report (%d,%d)", e.X, e.Y)
	}
	return "unknown"
}
