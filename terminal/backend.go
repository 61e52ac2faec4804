package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// The ANSI terminal owns a Backend and never touches file descriptors itself.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Read blocks until input is available, the timeout elapses or an error occurs.
	// A timeout returns (nil, nil); end of input returns ErrClosed.
	Read(timeout time.Duration) ([]byte, error)
}
