package progress

import "strconv"

// ANSI CSI sequences emitted by the compositor.
const (
	seqClearEOL   = "\x1b[0K"
	seqClearEOS   = "\x1b[0J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqLineStart  = "\r"
	seqNextLine   = "\r\n"
)

// seqCursorUp moves the cursor up n lines. n must be positive.
func seqCursorUp(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "A"
}
