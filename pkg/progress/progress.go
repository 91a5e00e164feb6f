package progress

import (
	"strings"
	"sync"
	"time"

	"github.com/schmitthub/gauge/internal/text"
)

// CursorRest is where Complete leaves the terminal cursor.
type CursorRest int

const (
	// RestAfterBlock parks the cursor at the start of the line below the block.
	RestAfterBlock CursorRest = iota
	// RestBlockEnd leaves the cursor on the last block line.
	RestBlockEnd
	// RestBlockStart parks the cursor at the start of the first block line.
	RestBlockStart
)

// Progress renders one or more live progress lines below an optional
// static title. It is safe for concurrent use; every call is applied
// atomically.
type Progress struct {
	mu sync.Mutex

	opts     Options
	defaults LineOptions
	columns  int
	display  bool

	lines *lineSet
	comp  *compositor

	start      time.Time
	lastRender time.Time
	completed  bool
}

// New creates a Progress session and writes the title, if any.
// Rendering is disabled when the writer is not a terminal, unless
// Options.DisplayAlways is set.
func New(opts Options) *Progress {
	opts = opts.withDefaults()

	var title []string
	if len(opts.Title) > 0 {
		title = text.SplitLines(strings.Join(opts.Title, "\n"))
	}

	p := &Progress{
		opts:     opts,
		defaults: resolve(DefaultLineOptions(), opts.Defaults...),
		columns:  opts.Columns,
		display:  opts.DisplayAlways || opts.Writer.IsTerminal(),
		lines:    newLineSet(nil),
		comp:     newCompositor(opts.Writer, title, opts.Columns, opts.HideCursor),
		start:    opts.Clock(),
	}

	if p.display {
		p.comp.writeTitle()
	}
	opts.Logger.Debug().
		Bool("display", p.display).
		Int("columns", p.columns).
		Int("title_lines", len(title)).
		Msg("progress session started")
	return p
}

// Update sets the value of the first line, layering opts over the line's
// previous configuration. Other lines are left unchanged.
func (p *Progress) Update(value float64, opts ...LineOption) {
	p.apply([]*LineUpdate{Set(value, opts...)}, false)
}

// UpdateMany applies one update per line, in display order. A nil entry
// leaves its line unchanged; lines beyond the slice keep their state.
func (p *Progress) UpdateMany(updates ...*LineUpdate) {
	p.apply(updates, false)
}

// ForceUpdate is Update bypassing the minimum render interval.
func (p *Progress) ForceUpdate(value float64, opts ...LineOption) {
	p.apply([]*LineUpdate{Set(value, opts...)}, true)
}

// ForceUpdateMany is UpdateMany bypassing the minimum render interval.
func (p *Progress) ForceUpdateMany(updates ...*LineUpdate) {
	p.apply(updates, true)
}

// Flush renders state merged by throttled updates, bypassing the minimum
// render interval.
func (p *Progress) Flush() {
	p.apply(nil, true)
}

func (p *Progress) apply(updates []*LineUpdate, force bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed || !p.display {
		return
	}

	p.lines = p.lines.merge(p.defaults, updates)
	if p.columns <= 0 {
		// drawing suspended; merged lines stay dirty until a width is known
		return
	}

	now := p.opts.Clock()
	if interval := p.opts.MinUpdateInterval; !force && interval > 0 && now.Sub(p.lastRender) < interval {
		p.opts.Logger.Debug().
			Dur("since_last", now.Sub(p.lastRender)).
			Msg("progress frame throttled")
		return
	}
	p.lastRender = now

	p.lines = p.lines.render(p.columns, now.Sub(p.start))
	p.comp.redraw(p.lines.frame(p.opts.DynamicUpdateHeight))

	if !p.opts.ManualComplete && p.lines.allCompleted() {
		p.complete(RestAfterBlock)
	}
}

// Complete ends the session with the cursor after the block.
// Subsequent calls are no-ops.
func (p *Progress) Complete() {
	p.CompleteAt(RestAfterBlock)
}

// CompleteAt ends the session with the cursor parked at rest. The cursor
// is always made visible. Subsequent calls are no-ops.
func (p *Progress) CompleteAt(rest CursorRest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.complete(rest)
}

func (p *Progress) complete(rest CursorRest) {
	if p.completed {
		return
	}
	p.completed = true

	if !p.display {
		return
	}

	switch {
	case p.opts.ClearAllOnComplete:
		p.comp.clear()
	case p.opts.DynamicCompleteHeight:
		kept := make([]string, 0, len(p.comp.block))
		for _, s := range p.comp.block {
			if s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) != len(p.comp.block) {
			p.comp.redraw(kept)
		}
	}
	p.comp.finish(rest)

	p.opts.Logger.Debug().
		Int("lines", p.lines.Len()).
		Str("cursor", p.comp.cursor.String()).
		Msg("progress session completed")
}

// Log writes message above the title and progress block, then redraws
// both unchanged. Multi-line messages are split on any line ending.
// Log remains usable after the session completes.
func (p *Progress) Log(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := text.SplitLines(message)
	if !p.display {
		// plain output keeps messages visible in pipes and log files, minus escapes
		for _, l := range lines {
			p.comp.raw(text.StripANSI(l))
			p.comp.raw("\n")
		}
		p.comp.flush()
		return
	}
	p.comp.log(lines, p.completed)
}

// RestoreCursor makes the terminal cursor visible. It is intended for
// exit and signal hooks and does not change the session state.
func (p *Progress) RestoreCursor() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.display {
		p.comp.restoreCursor()
	}
}

// SetColumns changes the terminal width used by subsequent renders.
// Lines already rendered are cut to the new width when next written.
// A width of 0 or less suspends drawing.
func (p *Progress) SetColumns(columns int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.columns = columns
	p.comp.columns = columns
}

// Columns returns the terminal width used for rendering.
func (p *Progress) Columns() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.columns
}

// Completed reports whether the session has completed.
func (p *Progress) Completed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// Displayed reports whether the session renders to its writer.
func (p *Progress) Displayed() bool {
	return p.display
}

// Lines returns a snapshot of every tracked line.
func (p *Progress) Lines() []LineSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lines.snapshot()
}

// Err returns the first error returned by the writer, if any. Once a
// write fails no further output is attempted.
func (p *Progress) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.comp.err
}
