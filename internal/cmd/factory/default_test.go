package factory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/gauge/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f := New("1.0.0", "abc123")

	assert.Equal(t, "1.0.0", f.Version)
	assert.Equal(t, "abc123", f.Commit)
	require.NotNil(t, f.IOStreams)
	assert.NotNil(t, f.IOStreams.Logger)
	assert.NotNil(t, f.Config)
}

func TestFactory_ConfigIsLoadedOnce(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.DirEnv, dir)
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("bar:\n  width_max: 20\n"), 0o644))

	f := New("dev", "none")
	first, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, 20, first.Bar.WidthMax)

	require.NoError(t, os.WriteFile(path, []byte("bar:\n  width_max: 30\n"), 0o644))
	second, err := f.Config()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestFactory_ConfigUsesFlags(t *testing.T) {
	t.Setenv(config.DirEnv, t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--glyphs=block"}))

	f := New("dev", "none")
	f.Flags = fs

	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, "block", cfg.Bar.Glyphs)
}

func TestFactory_ConfigFileMissing(t *testing.T) {
	f := New("dev", "none")
	f.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := f.Config()
	require.Error(t, err)
	assert.True(t, config.IsNotFound(err))
}

func TestFactory_ConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.DirEnv, dir)

	f := New("dev", "none")
	path, err := f.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), path)

	f.ConfigFile = "/etc/gauge.yaml"
	path, err = f.ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/gauge.yaml", path)
}
