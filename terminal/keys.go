package terminal

// Key identifies a decoded non-text key, or KeyRune for text
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // see Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Ctrl+letter, contiguous so Ctrl+X = KeyCtrlA + ('x' - 'a')
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyCtrlSpace
)

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

type keyMod struct {
	key Key
	mod Modifier
}

// csiKeys is keyed by the bytes after ESC [ up to and including the final byte.
// Modified arrows use the xterm form 1;<mod><dir> with 2 = Shift, 5 = Ctrl.
var csiKeys = map[string]keyMod{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"Z": {KeyBacktab, ModShift},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},

	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},

	"1~": {KeyHome, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},
}

// ss3Keys covers ESC O <final>, sent in application cursor mode
var ss3Keys = map[string]keyMod{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
}

// lookupCSI resolves a CSI body; the string conversion in the index does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	km, ok := csiKeys[string(seq)]
	return km.key, km.mod, ok
}

func lookupSS3(seq []byte) (Key, Modifier, bool) {
	km, ok := ss3Keys[string(seq)]
	return km.key, km.mod, ok
}
