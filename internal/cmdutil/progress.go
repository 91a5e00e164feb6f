package cmdutil

import (
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams"
	"github.com/schmitthub/gauge/pkg/progress"
)

// NewProgress starts a session on ios configured from cfg. tweak, when
// non-nil, adjusts the options before the session starts.
func NewProgress(ios *iostreams.IOStreams, cfg *config.Config, tweak func(*progress.Options)) (*progress.Progress, error) {
	glyphs, err := ios.ColorScheme().BarGlyphs(cfg.Bar.Glyphs)
	if err != nil {
		return nil, FlagErrorWrap(err)
	}

	opts := cfg.ProgressOptions(glyphs)
	if tweak != nil {
		tweak(&opts)
	}
	return ios.NewProgress(opts), nil
}
