package progress

import (
	"time"

	"github.com/rs/zerolog"
)

// Default values used when Options and LineOptions leave a field unset.
const (
	DefaultGoal              = 100
	DefaultProgressTemplate  = "{label} {percent}% {bar} ({elapsed}s) {value}/{goal}"
	DefaultWidthMin          = 10
	DefaultWidthMax          = 50
	DefaultMinUpdateInterval = 20 * time.Millisecond
	DefaultColumns           = 80

	// DefaultGlyphComplete is a space on a green background.
	DefaultGlyphComplete = "\x1b[42m \x1b[49m"
	// DefaultGlyphIncomplete is a space on a white background.
	DefaultGlyphIncomplete = "\x1b[47m \x1b[49m"
)

// Glyphs are the symbols a bar gauge is drawn with.
type Glyphs struct {
	Complete   string
	Incomplete string
	// Intermediate is an ordered ramp of partial-fill glyphs, from
	// least to most filled. Empty disables sub-glyph precision.
	Intermediate []string
	// Leader marks the advancing edge while the bar is incomplete.
	Leader string
}

// Token is a custom {Name} template token and its literal replacement.
type Token struct {
	Name  string
	Value string
}

// LineOptions is the fully resolved configuration of one progress line.
// Callers do not build it directly; they layer LineOption values over
// DefaultLineOptions.
type LineOptions struct {
	// ID identifies the line across UpdateMany calls. Empty means the
	// line is identified by its position.
	ID    string
	Goal  float64
	Label string

	ProgressTemplate string
	// CompleteTemplate replaces ProgressTemplate once the line is
	// completed. nil keeps ProgressTemplate.
	CompleteTemplate *string

	Glyphs   Glyphs
	WidthMin int
	WidthMax int

	// AutoComplete marks the line completed once its value reaches Goal.
	AutoComplete bool
	// ClearOnComplete suppresses the line's text once completed.
	ClearOnComplete bool
	// Complete marks the line completed regardless of its value.
	Complete bool

	TokenOverrides []Token
}

// DefaultLineOptions returns the built-in line configuration.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		Goal:             DefaultGoal,
		ProgressTemplate: DefaultProgressTemplate,
		Glyphs: Glyphs{
			Complete:   DefaultGlyphComplete,
			Incomplete: DefaultGlyphIncomplete,
		},
		WidthMin:     DefaultWidthMin,
		WidthMax:     DefaultWidthMax,
		AutoComplete: true,
	}
}

// LineOption overrides one field of a line's configuration.
type LineOption func(*LineOptions)

// resolve layers opts over base and returns the result. base is not modified.
func resolve(base LineOptions, opts ...LineOption) LineOptions {
	out := base
	out.Glyphs.Intermediate = append([]string(nil), base.Glyphs.Intermediate...)
	out.TokenOverrides = append([]Token(nil), base.TokenOverrides...)
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}

// WithID sets the line's stable identity.
func WithID(id string) LineOption {
	return func(o *LineOptions) { o.ID = id }
}

// WithGoal sets the value at which the line is 100% complete.
func WithGoal(goal float64) LineOption {
	return func(o *LineOptions) { o.Goal = goal }
}

// WithLabel sets the {label} token.
func WithLabel(label string) LineOption {
	return func(o *LineOptions) { o.Label = label }
}

// WithTemplate sets the progress template.
func WithTemplate(template string) LineOption {
	return func(o *LineOptions) { o.ProgressTemplate = template }
}

// WithCompleteTemplate sets the template used once the line completes.
func WithCompleteTemplate(template string) LineOption {
	return func(o *LineOptions) { o.CompleteTemplate = &template }
}

// WithNoCompleteText makes a completed line emit nothing.
func WithNoCompleteText() LineOption {
	return func(o *LineOptions) { o.ClearOnComplete = true }
}

// WithGlyphs replaces the whole glyph set.
func WithGlyphs(g Glyphs) LineOption {
	return func(o *LineOptions) {
		o.Glyphs = g
		o.Glyphs.Intermediate = append([]string(nil), g.Intermediate...)
	}
}

// WithCompleteGlyph sets the glyph for the filled part of the bar.
func WithCompleteGlyph(s string) LineOption {
	return func(o *LineOptions) { o.Glyphs.Complete = s }
}

// WithIncompleteGlyph sets the glyph for the unfilled part of the bar.
func WithIncompleteGlyph(s string) LineOption {
	return func(o *LineOptions) { o.Glyphs.Incomplete = s }
}

// WithIntermediateGlyphs sets the partial-fill ramp.
func WithIntermediateGlyphs(ramp ...string) LineOption {
	return func(o *LineOptions) { o.Glyphs.Intermediate = append([]string(nil), ramp...) }
}

// WithLeaderGlyph sets the advancing-edge glyph.
func WithLeaderGlyph(s string) LineOption {
	return func(o *LineOptions) { o.Glyphs.Leader = s }
}

// WithWidth bounds the bar gauge width in columns.
func WithWidth(minWidth, maxWidth int) LineOption {
	return func(o *LineOptions) {
		o.WidthMin = minWidth
		o.WidthMax = maxWidth
	}
}

// WithAutoComplete toggles completion on reaching the goal.
func WithAutoComplete(enabled bool) LineOption {
	return func(o *LineOptions) { o.AutoComplete = enabled }
}

// WithClearOnComplete toggles suppression of the line once completed.
func WithClearOnComplete(enabled bool) LineOption {
	return func(o *LineOptions) { o.ClearOnComplete = enabled }
}

// WithComplete marks the line completed on this update.
func WithComplete() LineOption {
	return func(o *LineOptions) { o.Complete = true }
}

// WithToken adds a custom {name} token. Tokens are applied in the order
// they were added, before the built-in tokens.
func WithToken(name, value string) LineOption {
	return func(o *LineOptions) {
		for i := range o.TokenOverrides {
			if o.TokenOverrides[i].Name == name {
				o.TokenOverrides[i].Value = value
				return
			}
		}
		o.TokenOverrides = append(o.TokenOverrides, Token{Name: name, Value: value})
	}
}

// Logger receives diagnostic events. *zerolog.Logger satisfies it.
type Logger interface {
	Debug() *zerolog.Event
}

// Options configures a Progress session. The zero value is usable.
type Options struct {
	// Writer receives terminal output. Default: a stderr stream.
	Writer Writer

	// Columns is the terminal width. 0 queries the writer (when it
	// reports Columns) and falls back to DefaultColumns.
	Columns int

	// Title lines are written once above the block and preserved across
	// redraws and log messages. Entries may contain line breaks.
	Title []string

	// MinUpdateInterval is the minimum time between renders.
	// 0 uses DefaultMinUpdateInterval; negative disables throttling.
	MinUpdateInterval time.Duration

	// DisplayAlways renders even when Writer is not a terminal.
	DisplayAlways bool
	// HideCursor hides the cursor until the session completes.
	HideCursor bool
	// ClearAllOnComplete erases the whole block on completion.
	ClearAllOnComplete bool
	// DynamicUpdateHeight removes suppressed lines from the block
	// instead of leaving them blank.
	DynamicUpdateHeight bool
	// DynamicCompleteHeight removes empty lines from the block on completion.
	DynamicCompleteHeight bool
	// ManualComplete keeps the session active after every line completes;
	// only an explicit Complete ends it.
	ManualComplete bool

	// Defaults are layered over DefaultLineOptions for every line.
	Defaults []LineOption

	// Logger receives debug events. Default: a nop logger.
	Logger Logger

	// Clock is the time source. Default: time.Now.
	Clock func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Writer == nil {
		o.Writer = defaultWriter()
	}
	if o.MinUpdateInterval == 0 {
		o.MinUpdateInterval = DefaultMinUpdateInterval
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
		if c, ok := o.Writer.(interface{ Columns() int }); ok {
			if n := c.Columns(); n > 0 {
				o.Columns = n
			}
		}
	}
	return o
}
