package progress

import (
	"io"

	"github.com/schmitthub/gauge/internal/term"
)

// Writer is the output sink of a Progress session: a synchronous byte
// writer that can report whether it is attached to a terminal.
// A Writer may also implement Columns() int to report its width.
type Writer interface {
	io.Writer
	IsTerminal() bool
}

// PlainWriter adapts any io.Writer into a Writer that is never a terminal.
// Combine it with Options.DisplayAlways to capture rendered output.
func PlainWriter(w io.Writer) Writer {
	return plainWriter{w}
}

type plainWriter struct{ io.Writer }

func (plainWriter) IsTerminal() bool { return false }

func defaultWriter() Writer {
	return term.Stderr()
}
