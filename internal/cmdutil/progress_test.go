package cmdutil

import (
	"errors"
	"testing"

	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams/iostreamstest"
	"github.com/schmitthub/gauge/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgress_AppliesConfig(t *testing.T) {
	ios := iostreamstest.New()
	ios.SetStderrTTY(true)
	ios.SetTerminalSize(30, 10)

	cfg := config.DefaultConfig()
	cfg.Bar.Template = "{percent}% {bar}"
	cfg.Bar.Glyphs = "ascii"
	cfg.Bar.WidthMin = 4
	cfg.Bar.WidthMax = 4
	cfg.Render.MinUpdateInterval = 0

	p, err := NewProgress(ios.IOStreams, cfg, nil)
	require.NoError(t, err)
	p.Update(50)

	assert.Equal(t, "\r50% ==>-\x1b[0K", ios.ErrBuf.String())
}

func TestNewProgress_Tweak(t *testing.T) {
	ios := iostreamstest.New()
	cfg := config.DefaultConfig()

	p, err := NewProgress(ios.IOStreams, cfg, func(o *progress.Options) {
		o.Columns = 12
	})
	require.NoError(t, err)
	assert.Equal(t, 12, p.Columns())
}

func TestNewProgress_UnknownGlyphs(t *testing.T) {
	ios := iostreamstest.New()
	cfg := config.DefaultConfig()
	cfg.Bar.Glyphs = "sparkles"

	_, err := NewProgress(ios.IOStreams, cfg, nil)
	require.Error(t, err)

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
	assert.Contains(t, err.Error(), `unknown glyph preset "sparkles"`)
}
