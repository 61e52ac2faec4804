// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// output buffers escape sequences until the frame is flushed
type output struct {
	writer    *bufio.Writer
	colorMode ColorMode
}

// newOutput creates a new output buffer
func newOutput(w io.Writer, colorMode ColorMode) *output {
	return &output{
		writer:    bufio.NewWriterSize(w, 32768),
		colorMode: colorMode,
	}
}

func (o *output) raw(seq []byte) {
	o.writer.Write(seq)
}

func (o *output) moveTo(col, row int) {
	writeCursorPos(o.writer, col, row)
}

func (o *output) move(n int, dir byte) {
	writeCursorMove(o.writer, n, dir)
}

// print writes text wrapped in color sequences, resetting afterwards when colored
func (o *output) print(text string, fg, bg tcell.Color) {
	w := o.writer
	writeFg(w, fg, o.colorMode)
	writeBg(w, bg, o.colorMode)
	w.WriteString(text)
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		w.Write(csiReset)
	}
}

func (o *output) flush() error {
	return o.writer.Flush()
}
