package progress

import (
	"io"
	"strings"

	"github.com/schmitthub/gauge/internal/text"
)

// cursorPosition tracks where the terminal cursor sits relative to the
// rendered block.
type cursorPosition int

const (
	// cursorBlockStart is column 0 of the first block line. With an empty
	// block this is the line directly below the title.
	cursorBlockStart cursorPosition = iota
	// cursorBlockEnd is anywhere on the last block line.
	cursorBlockEnd
	// cursorAfterBlock is column 0 of the line after the block.
	cursorAfterBlock
)

func (c cursorPosition) String() string {
	switch c {
	case cursorBlockStart:
		return "block-start"
	case cursorBlockEnd:
		return "block-end"
	case cursorAfterBlock:
		return "after-block"
	}
	return "unknown"
}

// compositor turns block transitions into cursor-movement sequences.
// It knows nothing about rendering; it only tracks what is on screen.
// Output of each operation is buffered and written with a single Write.
type compositor struct {
	w          io.Writer
	hideCursor bool
	hidden     bool
	// columns bounds every title and block line on screen; 0 disables it.
	columns int

	title  []string
	block  []string
	cursor cursorPosition
	// rest is where finish parked the cursor. Logs after completion
	// return there.
	rest CursorRest

	buf strings.Builder
	err error
}

func newCompositor(w io.Writer, title []string, columns int, hideCursor bool) *compositor {
	return &compositor{w: w, title: title, columns: columns, hideCursor: hideCursor}
}

// flush writes the buffered sequence. After the first write failure all
// further output is dropped and the error is kept.
func (c *compositor) flush() {
	defer c.buf.Reset()
	if c.err != nil || c.buf.Len() == 0 {
		return
	}
	if _, err := io.WriteString(c.w, c.buf.String()); err != nil {
		c.err = err
	}
}

func (c *compositor) raw(s string) { c.buf.WriteString(s) }

func (c *compositor) lineStart() { c.raw(seqLineStart) }

func (c *compositor) nextLine(n int) {
	for range n {
		c.raw(seqNextLine)
	}
}

func (c *compositor) up(n int) {
	if n > 0 {
		c.raw(seqCursorUp(n))
	}
}

// writeLine rewrites the current line with s and clears what remains.
func (c *compositor) writeLine(s string) {
	c.lineStart()
	c.raw(s)
	c.raw(seqClearEOL)
}

// fit cuts s to one cell short of the terminal width so a line already on
// screen never wraps after the width shrinks. The stored block keeps the
// full text.
func (c *compositor) fit(s string) string {
	if c.columns <= 0 {
		return s
	}
	return text.Truncate(s, c.columns-1)
}

func (c *compositor) maybeHideCursor() {
	if c.hideCursor && !c.hidden {
		c.raw(seqHideCursor)
		c.hidden = true
	}
}

func (c *compositor) showCursor() {
	c.raw(seqShowCursor)
	c.hidden = false
}

// toBlockStart moves the cursor to column 0 of the block's first line.
func (c *compositor) toBlockStart() {
	h := len(c.block)
	switch c.cursor {
	case cursorBlockStart:
		return
	case cursorBlockEnd:
		c.lineStart()
		c.up(h - 1)
	case cursorAfterBlock:
		c.up(h)
		c.lineStart()
	}
	c.cursor = cursorBlockStart
}

// toAfterBlock moves the cursor to column 0 of the line after the block.
func (c *compositor) toAfterBlock() {
	switch c.cursor {
	case cursorAfterBlock:
		return
	case cursorBlockEnd:
		c.nextLine(1)
	case cursorBlockStart:
		if h := len(c.block); h > 0 {
			c.nextLine(h)
		} else {
			c.lineStart()
		}
	}
	c.cursor = cursorAfterBlock
}

// writeTitle writes the title lines, each followed by a line break.
func (c *compositor) writeTitle() {
	c.maybeHideCursor()
	for _, t := range c.title {
		c.writeLine(c.fit(t))
		c.nextLine(1)
	}
	c.flush()
}

// draw moves to the block start and writes lines without a trailing line
// break, leaving the cursor on the last written line.
func (c *compositor) draw(lines []string) {
	for i, s := range lines {
		if i > 0 {
			c.nextLine(1)
		}
		c.writeLine(c.fit(s))
	}
}

// redraw replaces the block on screen with next. Lines of a taller
// previous block are blanked and the cursor returns to the new block.
func (c *compositor) redraw(next []string) {
	c.maybeHideCursor()
	c.toBlockStart()

	prior := len(c.block)
	rows := max(prior, len(next))
	for i := range rows {
		if i > 0 {
			c.nextLine(1)
		}
		if i < len(next) {
			c.writeLine(c.fit(next[i]))
		} else {
			c.writeLine("")
		}
	}

	c.block = append([]string(nil), next...)
	if len(next) == 0 {
		c.up(rows - 1)
		c.cursor = cursorBlockStart
	} else {
		c.up(rows - len(next))
		c.cursor = cursorBlockEnd
	}
	c.flush()
}

// log writes message lines above the title and block, then replays both
// unchanged below the message.
func (c *compositor) log(lines []string, completed bool) {
	c.maybeHideCursor()
	c.toBlockStart()
	c.up(len(c.title))

	// scroll first so the rewrite below cannot push the block off screen mid-frame
	if h := len(c.block) + len(c.title); h > 0 {
		c.nextLine(h)
		c.up(h)
	}

	for _, msg := range lines {
		c.writeLine(msg)
		c.nextLine(1)
	}
	for _, t := range c.title {
		c.writeLine(c.fit(t))
		c.nextLine(1)
	}
	c.draw(c.block)
	if len(c.block) > 0 {
		c.cursor = cursorBlockEnd
	} else {
		c.cursor = cursorBlockStart
	}

	if completed {
		c.park(c.rest)
		c.showCursor()
	}
	c.flush()
}

// clear erases the whole block bottom-to-top and leaves the cursor at
// the start of the now empty block.
func (c *compositor) clear() {
	h := len(c.block)
	if h > 0 {
		if c.cursor != cursorBlockEnd {
			c.toBlockStart()
			c.nextLine(h - 1)
		}
		for i := range h {
			c.writeLine("")
			if i < h-1 {
				c.up(1)
			}
		}
	}
	c.lineStart()
	c.raw(seqClearEOS)
	c.block = nil
	c.cursor = cursorBlockStart
	c.flush()
}

// finish parks the cursor at rest and makes it visible.
func (c *compositor) finish(rest CursorRest) {
	c.rest = rest
	c.park(rest)
	c.showCursor()
	c.flush()
}

func (c *compositor) park(rest CursorRest) {
	switch rest {
	case RestBlockEnd:
		if len(c.block) > 0 && c.cursor != cursorBlockEnd {
			c.toBlockStart()
			c.nextLine(len(c.block) - 1)
			c.cursor = cursorBlockEnd
		}
	case RestBlockStart:
		c.toBlockStart()
	default:
		c.toAfterBlock()
	}
}

// restoreCursor makes the cursor visible without moving it.
func (c *compositor) restoreCursor() {
	c.showCursor()
	c.flush()
}
