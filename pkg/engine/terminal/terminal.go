// Package terminal answers questions about the console the game is attached to.
package terminal

import (
	"io"

	"golang.org/x/term"
)

const (
	DefaultWidth = 80
)

// fileDescriptor is satisfied by *os.File
type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal.
// Buffers, pipes and files are not.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// GetWidth returns the width of the terminal behind w.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth(w io.Writer) int {
	f, ok := w.(fileDescriptor)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
