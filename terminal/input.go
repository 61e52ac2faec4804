package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventMouse            // SGR mouse report
	EventResize           // Produced by the screen adapter only
	EventCursor           // DSR cursor position report, consumed by CursorPos
)

// Event represents a decoded terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// X, Y are 1-indexed column and row for EventMouse and EventCursor
	X int
	Y int

	MouseBtn    MouseButton
	MouseAction MouseAction

	Width  int // For EventResize
	Height int // For EventResize
}

// decoder turns the raw byte stream into events without a reader goroutine.
// Bytes are fed after each backend read; complete events queue up in arrival
// order and partial sequences stay buffered until more data arrives.
type decoder struct {
	// Persistent buffer for stream assembly, not fixed size to avoid corrupting partial UTF-8 at boundary
	buf     []byte
	pending []Event

	// reportsWanted counts cursor queries still waiting for their reply.
	// ESC [ row ; col R is only a report while one is outstanding.
	reportsWanted int
}

func newDecoder() *decoder {
	return &decoder{
		buf: make([]byte, 0, 256),
	}
}

// feed appends raw input and decodes as much as possible
func (d *decoder) feed(data []byte) {
	d.buf = append(d.buf, data...)

	consumed := d.parseInput(d.buf)

	// Compact buffer
	if consumed > 0 {
		if consumed >= len(d.buf) {
			d.buf = d.buf[:0]
		} else {
			copy(d.buf, d.buf[consumed:])
			d.buf = d.buf[:len(d.buf)-consumed]
		}
	}
}

// waitingOnEscape reports whether only ESC or ESC ESC is buffered
func (d *decoder) waitingOnEscape() bool {
	switch len(d.buf) {
	case 1:
		return d.buf[0] == 0x1b
	case 2:
		return d.buf[0] == 0x1b && d.buf[1] == 0x1b
	}
	return false
}

// flushEscape emits a pending Escape (Alt+Escape for ESC ESC) once the escape timeout passed
func (d *decoder) flushEscape() {
	if !d.waitingOnEscape() {
		return
	}
	ev := Event{Type: EventKey, Key: KeyEscape}
	if len(d.buf) == 2 {
		ev.Modifiers = ModAlt
	}
	d.push(ev)
	d.buf = d.buf[:0]
}

// next pops the oldest queued event
func (d *decoder) next() (Event, bool) {
	if len(d.pending) == 0 {
		return Event{}, false
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev, true
}

// expectCursorReport marks one cursor query as sent
func (d *decoder) expectCursorReport() {
	d.reportsWanted++
}

// abandonCursorReports forgets outstanding queries; late replies are then swallowed
func (d *decoder) abandonCursorReports() {
	d.reportsWanted = 0
}

// takeCursorReport removes the oldest cursor report, leaving other events queued in order
func (d *decoder) takeCursorReport() (col, row int, ok bool) {
	for i, ev := range d.pending {
		if ev.Type == EventCursor {
			d.pending = append(d.pending[:i], d.pending[i+1:]...)
			return ev.X, ev.Y, true
		}
	}
	return 0, 0, false
}

func (d *decoder) push(ev Event) {
	d.pending = append(d.pending, ev)
}

// parseInput parses raw bytes into events and returns bytes consumed (stop on incomplete sequence)
func (d *decoder) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			d.push(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}

			consumed, ev := d.parseEscape(data[i:])
			if consumed == 0 {
				// Incomplete sequence, wait for more data
				return i
			}

			// Only emit if not a swallowed unknown sequence
			if ev.Key != KeyNone || ev.Type != EventKey {
				d.push(ev)
			}
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			d.push(parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			d.push(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			// Invalid start byte, skip
			i++
			continue
		}
		if i+seqLen > n {
			// Incomplete UTF-8, wait for more data
			return i
		}

		rn, size := decodeRune(data[i:])
		d.push(Event{Type: EventKey, Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (d *decoder) parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	if data[1] == 0x1b {
		// Undecided until the next byte or the escape timeout
		if len(data) == 2 {
			return 0, Event{}
		}
		// ESC followed by a sequence introducer: the first ESC is a key press of its own
		if data[2] == '[' || data[2] == 'O' {
			return 1, Event{Type: EventKey, Key: KeyEscape}
		}
		// ESC ESC -> Alt+Escape
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	}

	if data[1] == '[' {
		return d.parseCSI(data)
	}
	if data[1] == 'O' {
		return d.parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by a non-ASCII byte: treat ESC as standalone
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI parses CSI sequence without allocation
func (d *decoder) parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// SGR mouse: ESC [ < Btn ; X ; Y M/m
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	terminated := false
	for end < maxScan {
		b := data[end]
		end++
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			terminated = true
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer and resync
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if !terminated {
		if len(data) >= 16 {
			// Overlong garbage, drop the introducer
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
		return 0, Event{} // Incomplete
	}

	params := data[2 : end-1]

	// Cursor position report: ESC [ row ; col R
	// Same bytes as modified F3 (ESC [ 1 ; mod R), so only taken while a query is outstanding
	if data[end-1] == 'R' && d.reportsWanted > 0 {
		if row, col, ok := parsePair(params); ok {
			d.reportsWanted--
			return end, Event{Type: EventCursor, X: col, Y: row}
		}
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Type: EventKey, Key: key, Modifiers: mod}
	}

	// Unknown but valid CSI syntax - consume and return KeyNone
	return end, Event{Type: EventKey, Key: KeyNone}
}

// parseSS3 parses SS3 sequence without allocation, returns length even for unknown sequences
func (d *decoder) parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	// Unknown SS3 - consume to prevent garbage
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08: // Ctrl+H or Backspace
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// parseSGRMouse parses mouse SGR sequences
func parseSGRMouse(data []byte) (int, Event) {
	// Format: ESC [ < Btn ; X ; Y M/m
	// Minimum: ESC [ < 0 ; 1 ; 1 M = 9 bytes
	if len(data) < 9 {
		return 0, Event{}
	}

	// Find terminator M or m
	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if end >= 32 {
			return 3, Event{Type: EventKey, Key: KeyNone}
		}
		return 0, Event{}
	}
	if data[end] != 'M' && data[end] != 'm' {
		return 3, Event{Type: EventKey, Key: KeyNone}
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{Type: EventKey, Key: KeyNone}
	}

	ev := Event{Type: EventMouse, X: x, Y: y}

	// Bits 0-1: button (0=left, 1=middle, 2=right, 3=release)
	// Bit 5 (32): motion
	// Bit 6 (64): scroll
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	if isScroll {
		if buttonID == 0 {
			ev.MouseBtn = MouseBtnWheelUp
		} else {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	} else {
		switch buttonID {
		case 0:
			ev.MouseBtn = MouseBtnLeft
		case 1:
			ev.MouseBtn = MouseBtnMiddle
		case 2:
			ev.MouseBtn = MouseBtnRight
		case 3:
			ev.MouseBtn = MouseBtnNone
		}

		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case isMotion && ev.MouseBtn != MouseBtnNone:
			ev.MouseAction = MouseActionDrag
		case isMotion:
			ev.MouseAction = MouseActionMove
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	var vals [3]int
	if !parseInts(data, vals[:]) {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}

// parsePair extracts "A;B"
func parsePair(data []byte) (a, b int, ok bool) {
	var vals [2]int
	if !parseInts(data, vals[:]) {
		return 0, 0, false
	}
	return vals[0], vals[1], true
}

// parseInts fills out with exactly len(out) semicolon-separated decimals
func parseInts(data []byte, out []int) bool {
	state := 0
	val := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return false
			}
			out[state] = val
			state++
			val = 0
			digits = 0
			if state >= len(out) {
				return false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return false
			}
		} else {
			return false
		}
	}

	if state != len(out)-1 || digits == 0 {
		return false
	}
	out[state] = val
	return true
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1 // Invalid, return replacement char
	}

	if len(data) < size {
		return 0xFFFD, 1
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min {
		return 0xFFFD, 1 // Overlong encoding
	}

	return r, size
}
