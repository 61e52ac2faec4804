//go:build unix

package terminal

import (
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// trueColorEnv lists variables set only by emulators that support 24-bit color
var trueColorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
}

// DetectColorMode guesses color support from COLORTERM, emulator markers and TERM
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	for _, name := range trueColorEnv {
		if os.Getenv(name) != "" {
			return ColorModeTrueColor
		}
	}

	term := os.Getenv("TERM")
	for _, marker := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, marker) {
			return ColorModeTrueColor
		}
	}
	if strings.Contains(term, "256color") {
		return ColorMode256
	}
	return ColorMode16
}

// resetTerminalMode turns echo and line editing back on through /dev/tty,
// which works even when stdin is redirected. Errors are ignored.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	tios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	tios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	tios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, tios)
}
