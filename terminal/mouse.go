package terminal

// MouseButton identifies the button of a mouse event
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

var mouseButtonNames = [...]string{"None", "Left", "Middle", "Right", "WheelUp", "WheelDown"}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "None"
}

// MouseAction distinguishes press, release and motion reports
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag // motion with a button held
)

var mouseActionNames = [...]string{"None", "Press", "Release", "Move", "Drag"}

func (a MouseAction) String() string {
	if int(a) < len(mouseActionNames) {
		return mouseActionNames[a]
	}
	return "None"
}

// MouseMode selects reported mouse events, combinable
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // press and release
	MouseModeDrag   MouseMode = 1 << 1 // motion while a button is held
	MouseModeMotion MouseMode = 1 << 2 // any motion
)

// enableSequences returns the DEC private modes to set, SGR encoding first
func (m MouseMode) enableSequences() [][]byte {
	if m == MouseModeNone {
		return nil
	}
	seqs := [][]byte{csiMouseSGROn}
	if m&MouseModeClick != 0 {
		seqs = append(seqs, csiMouseClickOn)
	}
	if m&MouseModeDrag != 0 {
		seqs = append(seqs, csiMouseDragOn)
	}
	if m&MouseModeMotion != 0 {
		seqs = append(seqs, csiMouseMotionOn)
	}
	return seqs
}

// mouseOffSequences resets every mouse mode regardless of which were set
func mouseOffSequences() [][]byte {
	return [][]byte{csiMouseMotionOff, csiMouseDragOff, csiMouseClickOff, csiMouseSGROff}
}
