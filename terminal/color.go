package terminal

import (
	"bufio"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode16        ColorMode = iota // classic SGR 30-37/90-97, 40-47/100-107
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "16"
	}
}

// ParseColorMode resolves a flag value; "auto" and unknown values detect from environment
func ParseColorMode(s string) ColorMode {
	switch s {
	case "16", "ansi":
		return ColorMode16
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]int32{0, 95, 135, 175, 215, 255}

// paletteIndex returns the xterm palette index of a non-RGB tcell color
func paletteIndex(c tcell.Color) (int, bool) {
	if c < tcell.ColorValid || c > tcell.ColorValid+255 {
		return 0, false
	}
	return int(c - tcell.ColorValid), true
}

// rgbTo256 maps a 24-bit color to the nearest cube or grayscale index
func rgbTo256(r, g, b int32) int {
	ri, gi, bi := nearestCube(r), nearestCube(g), nearestCube(b)
	cr, cg, cb := cubeValues[ri], cubeValues[gi], cubeValues[bi]
	cubeDist := sq(r-cr) + sq(g-cg) + sq(b-cb)

	// Grayscale ramp 232-255: 8, 18, ..., 238
	avg := (r + g + b) / 3
	gray := (avg - 3) / 10
	if gray < 0 {
		gray = 0
	}
	if gray > 23 {
		gray = 23
	}
	gv := 8 + gray*10
	grayDist := sq(r-gv) + sq(g-gv) + sq(b-gv)

	if grayDist < cubeDist {
		return 232 + int(gray)
	}
	return 16 + 36*ri + 6*gi + bi
}

func nearestCube(v int32) int {
	best := 0
	bestDist := abs(v - cubeValues[0])
	for j := 1; j < 6; j++ {
		d := abs(v - cubeValues[j])
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func sq(v int32) int32 { return v * v }

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// writeFg emits a complete foreground SGR sequence, nothing for ColorDefault
func writeFg(w *bufio.Writer, c tcell.Color, mode ColorMode) {
	writeColor(w, c, mode, false)
}

// writeBg emits a complete background SGR sequence, nothing for ColorDefault
func writeBg(w *bufio.Writer, c tcell.Color, mode ColorMode) {
	writeColor(w, c, mode, true)
}

func writeColor(w *bufio.Writer, c tcell.Color, mode ColorMode, bg bool) {
	if c == tcell.ColorDefault {
		return
	}

	idx, indexed := paletteIndex(c)

	// Classic colors keep their short codes in 16 and 256 modes
	if indexed && idx < 16 && mode != ColorModeTrueColor {
		base := 30
		if idx >= 8 {
			base = 90
			idx -= 8
		}
		if bg {
			base += 10
		}
		w.Write(csi)
		writeInt(w, base+idx)
		w.WriteByte('m')
		return
	}

	if mode == ColorModeTrueColor {
		r, g, b := c.RGB()
		if r < 0 {
			return
		}
		if bg {
			w.Write(csiBgRGB)
		} else {
			w.Write(csiFgRGB)
		}
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		w.WriteByte('m')
		return
	}

	if !indexed {
		r, g, b := c.RGB()
		if r < 0 {
			return
		}
		idx = rgbTo256(r, g, b)
	}
	if mode == ColorMode16 && idx >= 16 {
		// Nearest of the eight base colors by channel threshold
		r, g, b := c.RGB()
		idx = 0
		if r >= 128 {
			idx |= 1
		}
		if g >= 128 {
			idx |= 2
		}
		if b >= 128 {
			idx |= 4
		}
		base := 30
		if bg {
			base = 40
		}
		w.Write(csi)
		writeInt(w, base+idx)
		w.WriteByte('m')
		return
	}

	if bg {
		w.Write(csiBg256)
	} else {
		w.Write(csiFg256)
	}
	writeInt(w, idx)
	w.WriteByte('m')
}
