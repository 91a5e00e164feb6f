package progress

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/schmitthub/gauge/internal/text"
)

const barToken = "{bar}"

// labelPattern captures one optional whitespace character on each side
// of {label} so an empty label does not leave a double space behind.
var labelPattern = regexp.MustCompile(`\s?\{label\}\s?`)

// rendered is the outcome of rendering one line.
type rendered struct {
	text      string
	visible   bool
	completed bool
	value     float64
}

// clampValue coerces v into [0, goal]. NaN and negative values become 0;
// +Inf is above any goal and becomes goal.
func clampValue(v, goal float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > goal {
		return goal
	}
	return v
}

// normalizeGoal coerces NaN and negative goals to 0 (unknown total).
func normalizeGoal(goal float64) float64 {
	if math.IsNaN(goal) || goal < 0 {
		return 0
	}
	return goal
}

// formatFixed formats f with prec decimals. Non-finite values render as
// Infinity, -Infinity or NaN.
func formatFixed(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', prec, 64)
}

// formatNumber formats f with the shortest exact representation.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFixed(f, 0)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// glyphWidth is the widest display width among the bar's glyphs, at least 1.
func glyphWidth(g Glyphs) int {
	w := max(1, text.DisplayWidth(g.Complete), text.DisplayWidth(g.Incomplete), text.DisplayWidth(g.Leader))
	for _, s := range g.Intermediate {
		w = max(w, text.DisplayWidth(s))
	}
	return w
}

// renderLine computes the display text of one line.
func renderLine(value float64, opts LineOptions, columns int, elapsed time.Duration) rendered {
	goal := normalizeGoal(opts.Goal)
	v := clampValue(value, goal)

	completed := opts.Complete || (opts.AutoComplete && v >= goal)

	template := opts.ProgressTemplate
	if completed {
		if opts.ClearOnComplete {
			return rendered{completed: true, value: v}
		}
		if opts.CompleteTemplate != nil {
			template = *opts.CompleteTemplate
		}
	}

	seconds := elapsed.Seconds()
	tokens := []string{
		"{elapsed}", formatFixed(seconds, 1),
		"{eta}", formatFixed((goal-v)/(v/seconds), 1),
		"{goal}", formatNumber(goal),
		"{percent}", formatFixed(math.Round(v/goal*100), 0),
		"{rate}", formatFixed(v/seconds, 2),
		"{value}", formatNumber(v),
	}

	out := template
	for _, t := range opts.TokenOverrides {
		out = strings.Replace(out, "{"+t.Name+"}", t.Value, 1)
	}
	out = strings.NewReplacer(tokens...).Replace(out)
	if opts.Label == "" {
		out = labelPattern.ReplaceAllLiteralString(out, "")
	} else {
		out = strings.ReplaceAll(out, "{label}", opts.Label)
	}

	if strings.Contains(out, barToken) {
		available := max(0, columns-text.DisplayWidth(strings.Replace(out, barToken, "", 1))-1)
		out = strings.Replace(out, barToken, renderBar(v, goal, completed, opts, available), 1)
	}

	return rendered{
		text:      text.Truncate(out, columns-1),
		visible:   true,
		completed: completed,
		value:     v,
	}
}

// renderBar builds the gauge for v out of goal within available columns.
func renderBar(v, goal float64, completed bool, opts LineOptions, available int) string {
	g := opts.Glyphs
	gw := glyphWidth(g)

	// min rounds up, max rounds down, to a whole number of glyphs
	widthMin := max(opts.WidthMin, 0)
	if r := widthMin % gw; r != 0 {
		widthMin += gw - r
	}
	widthMax := max(opts.WidthMax, 0)
	widthMax -= widthMax % gw

	width := max(min(widthMax, available), widthMin)
	width -= width % gw

	ratio := 1.0 // unknown total renders full
	if goal > 0 {
		ratio = v / goal
	}
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	ratio = min(ratio, 1)
	completeWidth := float64(width) * ratio
	full := int(math.Floor(completeWidth))
	aligned := full - full%gw

	intermediate := ""
	if partial := (completeWidth - float64(aligned)) / float64(gw); len(g.Intermediate) > 0 && !completed && partial > 0 {
		n := min(int(math.Floor(float64(len(g.Intermediate))*partial)), len(g.Intermediate)-1)
		intermediate = g.Intermediate[n]
	}

	filled := aligned + text.DisplayWidth(intermediate)
	leader := ""
	if !completed && filled < width {
		leader = g.Leader
	}
	incomplete := width - filled - text.DisplayWidth(leader)

	var b strings.Builder
	b.WriteString(text.Repeat(g.Complete, aligned/gw))
	b.WriteString(intermediate)
	b.WriteString(leader)
	b.WriteString(text.Repeat(g.Incomplete, incomplete/gw))
	return b.String()
}
