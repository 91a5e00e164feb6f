package initcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/gauge/internal/cmdutil"
	"github.com/schmitthub/gauge/internal/config"
	"github.com/schmitthub/gauge/internal/iostreams/iostreamstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdInit_Flags(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var gotOpts *InitOptions
	cmd := NewCmdInit(f, func(_ context.Context, opts *InitOptions) error {
		gotOpts = opts
		return nil
	})

	cmd.SetArgs([]string{"-f"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.True(t, gotOpts.Force)
}

func newOpts(t *testing.T) (*InitOptions, *iostreamstest.TestIOStreams, string) {
	t.Helper()
	tio := iostreamstest.New()
	path := filepath.Join(t.TempDir(), "conf", config.FileName)
	return &InitOptions{
		IOStreams:  tio.IOStreams,
		ConfigPath: func() (string, error) { return path, nil },
	}, tio, path
}

func TestInitRun_WritesDefaults(t *testing.T) {
	opts, tio, path := newOpts(t)

	require.NoError(t, initRun(context.Background(), opts))

	assert.Equal(t, "[ok] Wrote "+path+"\n", tio.ErrBuf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "glyphs: classic")
}

func TestInitRun_ExistingFile(t *testing.T) {
	opts, tio, path := newOpts(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("bar: {}\n"), 0o644))

	err := initRun(context.Background(), opts)
	assert.ErrorIs(t, err, cmdutil.SilentError)
	assert.Contains(t, tio.ErrBuf.String(), "already exists")
	assert.Contains(t, tio.ErrBuf.String(), "--force")

	opts.Force = true
	tio.ErrBuf.Reset()
	require.NoError(t, initRun(context.Background(), opts))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "width_max: 50")
}
