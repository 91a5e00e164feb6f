// Package term wraps golang.org/x/term for the rest of the module.
// It is the only package that imports x/term directly.
package term

import (
	"os"

	"golang.org/x/term"
)

// DefaultColumns is the width assumed when the terminal cannot be queried.
const DefaultColumns = 80

// Stream is a terminal-aware output stream backed by a file descriptor.
// It satisfies progress.Writer.
type Stream struct {
	file *os.File

	// isTTY caches whether file is a terminal.
	// -1 = unchecked, 0 = false, 1 = true
	isTTY int
}

// NewStream wraps f. A nil file yields a stream that discards writes
// and never reports a terminal.
func NewStream(f *os.File) *Stream {
	return &Stream{file: f, isTTY: -1}
}

// Stdout returns a Stream for os.Stdout.
func Stdout() *Stream { return NewStream(os.Stdout) }

// Stderr returns a Stream for os.Stderr.
func Stderr() *Stream { return NewStream(os.Stderr) }

// Write writes p synchronously to the underlying file.
func (s *Stream) Write(p []byte) (int, error) {
	if s.file == nil {
		return len(p), nil
	}
	return s.file.Write(p)
}

// IsTerminal reports whether the stream is attached to a terminal.
// Any detection failure reports false.
func (s *Stream) IsTerminal() bool {
	if s.isTTY == -1 {
		s.isTTY = 0
		if s.file != nil && term.IsTerminal(int(s.file.Fd())) {
			s.isTTY = 1
		}
	}
	return s.isTTY == 1
}

// Fd returns the stream's file descriptor, or ^uintptr(0) when unset.
func (s *Stream) Fd() uintptr {
	if s.file == nil {
		return ^uintptr(0)
	}
	return s.file.Fd()
}

// Columns returns the live terminal width of the stream.
// Returns DefaultColumns when the stream is not a terminal or the
// query fails.
func (s *Stream) Columns() int {
	w, _ := s.Size()
	return w
}

// Size returns the live terminal width and height.
// Returns (DefaultColumns, 24) if detection fails.
func (s *Stream) Size() (width, height int) {
	if s.file == nil {
		return DefaultColumns, 24
	}
	w, h, err := term.GetSize(int(s.file.Fd()))
	if err != nil || w <= 0 {
		return DefaultColumns, 24
	}
	return w, h
}

// GetTerminalSize returns the terminal size for the given file descriptor.
// This is the canonical wrapper for x/term.GetSize; use this instead of
// importing golang.org/x/term directly.
func GetTerminalSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// IsTerminalFd checks if a file descriptor is a terminal.
func IsTerminalFd(fd int) bool {
	return term.IsTerminal(fd)
}
