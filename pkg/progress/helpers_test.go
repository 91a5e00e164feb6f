package progress

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// ttyBuffer captures output and claims to be a terminal.
type ttyBuffer struct {
	bytes.Buffer
}

func (*ttyBuffer) IsTerminal() bool { return true }

// failingWriter fails every write.
type failingWriter struct {
	calls int
}

var errBrokenPipe = errors.New("broken pipe")

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errBrokenPipe
}

func (*failingWriter) IsTerminal() bool { return true }

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestProgress builds a displayed, unthrottled session on a fake
// terminal of 50 columns unless opts says otherwise.
func newTestProgress(t *testing.T, opts Options) (*Progress, *ttyBuffer, *fakeClock) {
	t.Helper()
	buf := &ttyBuffer{}
	clock := newFakeClock()
	if opts.Writer == nil {
		opts.Writer = buf
	}
	if opts.Columns == 0 {
		opts.Columns = 50
	}
	if opts.MinUpdateInterval == 0 {
		opts.MinUpdateInterval = -1
	}
	opts.Clock = clock.Now
	return New(opts), buf, clock
}

// plainGlyphs uses single-column ASCII glyphs.
func plainGlyphs() LineOption {
	return WithGlyphs(Glyphs{Complete: "=", Incomplete: "-"})
}
