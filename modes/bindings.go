package modes

import "github.com/lixenwraith/vi-sketch/terminal"

// Action identifies a canvas command
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleDraw
	ActionReload
	ActionClear
	ActionNextColor
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
)

var actionNames = map[Action]string{
	ActionQuit:       "quit",
	ActionToggleDraw: "toggle_draw",
	ActionReload:     "reload",
	ActionClear:      "clear",
	ActionNextColor:  "next_color",
	ActionMoveLeft:   "move_left",
	ActionMoveRight:  "move_right",
	ActionMoveUp:     "move_up",
	ActionMoveDown:   "move_down",
}

// String returns the action name
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// BindingTable maps key events to actions
type BindingTable struct {
	runes map[rune]Action
	keys  map[terminal.Key]Action
}

// DefaultBindings returns the default binding table
func DefaultBindings() *BindingTable {
	return &BindingTable{
		runes: map[rune]Action{
			'q': ActionQuit,
			'd': ActionToggleDraw,
			'r': ActionReload,
			'c': ActionClear,
			'n': ActionNextColor,
		},
		keys: map[terminal.Key]Action{
			terminal.KeyEscape: ActionQuit,
			terminal.KeyCtrlC:  ActionQuit,
			terminal.KeyLeft:   ActionMoveLeft,
			terminal.KeyRight:  ActionMoveRight,
			terminal.KeyUp:     ActionMoveUp,
			terminal.KeyDown:   ActionMoveDown,
		},
	}
}

// Lookup resolves a key event. Alt+letter is not a command
func (b *BindingTable) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	if ev.Key == terminal.KeyRune {
		if ev.Modifiers&terminal.ModAlt != 0 {
			return ActionNone
		}
		return b.runes[ev.Rune]
	}
	return b.keys[ev.Key]
}
