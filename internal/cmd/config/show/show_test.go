package show

import (
	"context"
	"errors"
	"testing"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdShow_Flags(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var gotOpts *ShowOptions
	cmd := NewCmdShow(f, func(_ context.Context, opts *ShowOptions) error {
		gotOpts = opts
		return nil
	})

	cmd.SetArgs([]string{"--defaults"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.True(t, gotOpts.Defaults)
}

func TestShowRun_Effective(t *testing.T) {
	tio := iostreamstest.New()
	cfg := config.DefaultConfig()
	cfg.Bar.Glyphs = "block"

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return cfg, nil },
	})
	require.NoError(t, err)

	assert.Contains(t, tio.OutBuf.String(), "glyphs: block")
	assert.Contains(t, tio.OutBuf.String(), "min_update_interval: 20ms")
	assert.Empty(t, tio.ErrBuf.String())
}

func TestShowRun_Defaults(t *testing.T) {
	tio := iostreamstest.New()

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return nil, errors.New("not consulted") },
		Defaults:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, tio.OutBuf.String(), "glyphs: classic")
}

func TestShowRun_LoadError(t *testing.T) {
	tio := iostreamstest.New()
	want := errors.New("boom")

	err := showRun(context.Background(), &ShowOptions{
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return nil, want },
	})
	assert.ErrorIs(t, err, want)
	assert.Empty(t, tio.OutBuf.String())
}
