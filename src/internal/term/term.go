// Package term detects whether a stream is attached to a terminal.
package term

import (
	"io"
	"os"
)

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return isTerminal(int(fd))
}

// IsTerminalWriter reports whether w is an *os.File attached to a terminal.
// Any other writer (buffers, pipes wrapped in custom types) is not a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return IsTerminal(f.Fd())
}
