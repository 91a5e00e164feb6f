package iostreams

import (
	"github.com/schmitthub/gauge/pkg/progress"
)

// progressWriter presents ErrOut to a progress session. Terminal state
// follows IsStderrTTY and width follows TerminalWidth, so test streams
// can simulate a terminal.
type progressWriter struct {
	ios *IOStreams
}

func (w progressWriter) Write(p []byte) (int, error) { return w.ios.ErrOut.Write(p) }

func (w progressWriter) IsTerminal() bool { return w.ios.IsStderrTTY() }

func (w progressWriter) Columns() int { return w.ios.TerminalWidth() }

// ProgressWriter returns stderr as a progress.Writer.
func (s *IOStreams) ProgressWriter() progress.Writer {
	return progressWriter{ios: s}
}

// NewProgress starts a progress session on stderr. Writer and Logger
// default to this IOStreams' stderr and logger.
func (s *IOStreams) NewProgress(opts progress.Options) *progress.Progress {
	if opts.Writer == nil {
		opts.Writer = s.ProgressWriter()
	}
	if opts.Logger == nil && s.Logger != nil {
		opts.Logger = s.Logger
	}
	return progress.New(opts)
}
