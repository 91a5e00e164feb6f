// Package text provides pure text/string utility functions.
// All functions are ANSI-aware where relevant: widths are measured in
// terminal cells, escape sequences occupy no cells, and East Asian wide
// characters occupy two. This is a leaf package with zero internal imports.
package text

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// eolPattern matches any end-of-line style (CRLF, LF, lone CR).
var eolPattern = regexp.MustCompile(`\r\n|\n|\r`)

// DisplayWidth returns the number of terminal columns s occupies.
// Escape sequences are ignored, wide runes count as two columns and
// zero-width or combining runes count as zero. Malformed escapes are
// measured best-effort; this never panics.
func DisplayWidth(s string) int {
	if s == "" {
		return 0
	}
	return ansi.StringWidth(s)
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Truncate shortens s to at most width display columns.
// Escape sequences are preserved so styling stays balanced; no tail is added.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// PadRight pads a string on the right to the specified display width.
func PadRight(s string, width int) string {
	visible := DisplayWidth(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// SplitLines splits s into lines on any EOL style.
// A single trailing EOL does not produce a phantom empty last line.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return eolPattern.Split(s, -1)
}

// Repeat returns s repeated n times. Returns empty string if n <= 0.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
