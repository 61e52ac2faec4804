// @focus: #sys { term }
// Package terminal provides the drawing surface for vi-sketch.
//
// Features:
//   - Raw stdin input decoding: keys, SGR mouse, cursor position reports
//   - Synchronous cursor position queries (DSR 6)
//   - 1-indexed cursor movement, clear and color primitives
//   - 16-color, 256-color and 24-bit SGR emission from tcell colors
//   - A tcell.Screen adapter implementing the same contract
//   - Clean terminal restoration on exit/panic
//
// The ANSI implementation bypasses terminfo/termcap entirely, emitting direct
// ANSI sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
