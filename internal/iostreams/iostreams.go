// Package iostreams owns the process's standard streams: terminal
// detection, color, terminal size, and progress sessions on stderr.
package iostreams

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/schmitthub/gauge/internal/term"
)

// IOStreams provides access to standard input/output/error streams.
// It follows the GitHub CLI pattern for testable I/O.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostic events from the command layer.
	Logger Logger

	// TTY caches: -1 = unchecked, 0 = false, 1 = true
	isInputTTY  int
	isStderrTTY int

	// colorEnabled: -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	// terminalTheme is "light", "dark", or "none"
	terminalTheme string

	sizeMu          sync.Mutex
	termWidthCache  int
	termHeightCache int
	termSizeCached  bool
}

// NewIOStreams creates an IOStreams connected to standard streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isInputTTY:   -1,
		isStderrTTY:  -1,
		colorEnabled: -1,
	}
}

// fdOf returns the file descriptor behind v, if it has one.
func fdOf(v any) (int, bool) {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

func detectTTY(cache *int, v any) bool {
	if *cache == -1 {
		*cache = 0
		if fd, ok := fdOf(v); ok && term.IsTerminalFd(fd) {
			*cache = 1
		}
	}
	return *cache == 1
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool { return detectTTY(&s.isInputTTY, s.In) }

// IsStderrTTY returns true if stderr is a terminal. Progress sessions
// render only when this is true.
func (s *IOStreams) IsStderrTTY() bool { return detectTTY(&s.isStderrTTY, s.ErrOut) }

// SetStdinTTY overrides stdin terminal detection.
func (s *IOStreams) SetStdinTTY(isTTY bool) { s.isInputTTY = boolToInt(isTTY) }

// SetStderrTTY overrides stderr terminal detection.
func (s *IOStreams) SetStderrTTY(isTTY bool) { s.isStderrTTY = boolToInt(isTTY) }

// ColorEnabled returns whether color output is enabled.
// In auto mode color follows stderr being a terminal, unless NO_COLOR
// or CLICOLOR=0 is set in the environment.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.IsStderrTTY() && !termenv.EnvNoColor()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// DetectTerminalTheme sets the terminal theme from environment hints.
func (s *IOStreams) DetectTerminalTheme() {
	if !s.IsStderrTTY() {
		s.terminalTheme = "none"
		return
	}

	// COLORFGBG format: "fg;bg" or "fg;ignored;bg"
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		switch parts[len(parts)-1] {
		case "0", "1", "2", "3", "4", "5", "6", "8":
			s.terminalTheme = "dark"
			return
		case "7", "15":
			s.terminalTheme = "light"
			return
		}
	}

	if os.Getenv("TERM_PROGRAM") == "Apple_Terminal" {
		s.terminalTheme = "light"
		return
	}
	s.terminalTheme = "dark"
}

// TerminalTheme returns the detected or set terminal theme.
func (s *IOStreams) TerminalTheme() string {
	if s.terminalTheme == "" {
		s.DetectTerminalTheme()
	}
	return s.terminalTheme
}

// ColorScheme returns a ColorScheme configured for this IOStreams.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled(), s.TerminalTheme())
}

// TerminalWidth returns the width of the terminal in columns.
func (s *IOStreams) TerminalWidth() int {
	w, _ := s.TerminalSize()
	return w
}

// TerminalSize returns the width and height of the terminal, probing
// stderr then stdout. Returns (80, 24) if detection fails.
func (s *IOStreams) TerminalSize() (width, height int) {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()

	if s.termSizeCached {
		return s.termWidthCache, s.termHeightCache
	}

	width, height = term.DefaultColumns, 24
	for _, v := range []any{s.ErrOut, s.Out} {
		fd, ok := fdOf(v)
		if !ok {
			continue
		}
		if w, h, err := term.GetTerminalSize(fd); err == nil && w > 0 && h > 0 {
			width, height = w, h
			break
		}
	}

	s.termWidthCache, s.termHeightCache = width, height
	s.termSizeCached = true
	return width, height
}

// SetTerminalSizeCache pins the terminal size, bypassing detection.
func (s *IOStreams) SetTerminalSizeCache(width, height int) {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()
	s.termWidthCache, s.termHeightCache = width, height
	s.termSizeCached = true
}

// InvalidateTerminalSizeCache clears the cached terminal size.
// Call this after a window resize event.
func (s *IOStreams) InvalidateTerminalSizeCache() {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()
	s.termSizeCached = false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
