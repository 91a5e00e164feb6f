package progress

import (
	"strconv"
	"time"
)

// LineUpdate is one entry of an UpdateMany call.
type LineUpdate struct {
	Value   float64
	Options []LineOption
}

// Set builds a LineUpdate. A nil *LineUpdate in UpdateMany leaves the
// corresponding line unchanged.
func Set(value float64, opts ...LineOption) *LineUpdate {
	return &LineUpdate{Value: value, Options: opts}
}

// line is the tracked state of one progress line.
type line struct {
	value     float64
	opts      LineOptions
	text      string
	visible   bool
	completed bool

	// dirty marks state merged since the line was last rendered.
	dirty bool
}

// LineSnapshot is a read-only view of a tracked line.
type LineSnapshot struct {
	ID        string
	Value     float64
	Goal      float64
	Label     string
	Text      string
	Visible   bool
	Completed bool
}

// lineSet is an ordered collection of lines keyed by position and by
// explicit ID. A lineSet is never mutated once published; merge returns
// a new one.
type lineSet struct {
	items []line
	ids   map[string]int
}

func newLineSet(items []line) *lineSet {
	s := &lineSet{items: items, ids: make(map[string]int, len(items))}
	for i, l := range items {
		if l.opts.ID != "" {
			s.ids[l.opts.ID] = i
		}
	}
	return s
}

func (s *lineSet) Len() int { return len(s.items) }

// target returns the index an update at position pos with resolved
// explicit id applies to, or -1 for a new line.
func (s *lineSet) target(pos int, id string) int {
	if id != "" {
		if i, ok := s.ids[id]; ok {
			return i
		}
		if pos < len(s.items) && s.items[pos].opts.ID == "" {
			return pos
		}
		return -1
	}
	if pos < len(s.items) {
		return pos
	}
	return -1
}

// merge layers updates over the current lines and returns the next set.
// Lines without an update keep their state. Completed lines are frozen.
func (s *lineSet) merge(defaults LineOptions, updates []*LineUpdate) *lineSet {
	next := append([]line(nil), s.items...)
	ids := make(map[string]int, len(s.ids))
	for k, v := range s.ids {
		ids[k] = v
	}
	lookup := &lineSet{items: next, ids: ids}

	for pos, u := range updates {
		if u == nil {
			continue
		}
		own := resolve(LineOptions{}, u.Options...)
		idx := lookup.target(pos, own.ID)

		base := defaults
		if idx >= 0 {
			if next[idx].completed {
				continue
			}
			base = next[idx].opts
		}
		l := line{
			value: u.Value,
			opts:  resolve(base, u.Options...),
			dirty: true,
		}
		if idx >= 0 {
			l.text, l.visible = next[idx].text, next[idx].visible
			next[idx] = l
		} else {
			next = append(next, l)
			idx = len(next) - 1
			lookup.items = next
		}
		if l.opts.ID != "" {
			ids[l.opts.ID] = idx
		}
	}
	return newLineSet(next)
}

// render recomputes every dirty line and returns the next set.
func (s *lineSet) render(columns int, elapsed time.Duration) *lineSet {
	next := append([]line(nil), s.items...)
	for i := range next {
		if !next[i].dirty {
			continue
		}
		r := renderLine(next[i].value, next[i].opts, columns, elapsed)
		next[i].value = r.value
		next[i].text = r.text
		next[i].visible = r.visible
		next[i].completed = r.completed
		next[i].dirty = false
	}
	return newLineSet(next)
}

// allCompleted reports whether the set is non-empty and every line is completed.
func (s *lineSet) allCompleted() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, l := range s.items {
		if !l.completed {
			return false
		}
	}
	return true
}

// frame returns the block text. Suppressed lines are blank, or dropped
// when dynamic is set.
func (s *lineSet) frame(dynamic bool) []string {
	out := make([]string, 0, len(s.items))
	for _, l := range s.items {
		switch {
		case l.visible:
			out = append(out, l.text)
		case !dynamic:
			out = append(out, "")
		}
	}
	return out
}

func (s *lineSet) snapshot() []LineSnapshot {
	out := make([]LineSnapshot, len(s.items))
	for i, l := range s.items {
		id := l.opts.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		out[i] = LineSnapshot{
			ID:        id,
			Value:     clampValue(l.value, normalizeGoal(l.opts.Goal)),
			Goal:      l.opts.Goal,
			Label:     l.opts.Label,
			Text:      l.text,
			Visible:   l.visible,
			Completed: l.completed,
		}
	}
	return out
}
