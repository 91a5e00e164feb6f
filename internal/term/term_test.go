package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	s := NewStream(f)

	assert.False(t, s.IsTerminal())
	assert.Equal(t, DefaultColumns, s.Columns())

	w, h := s.Size()
	assert.Equal(t, DefaultColumns, w)
	assert.Equal(t, 24, h)
}

func TestStream_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)

	s := NewStream(f)
	n, err := s.Write([]byte("hello\x1b[0K"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\x1b[0K", string(data))
}

func TestStream_NilFile(t *testing.T) {
	s := NewStream(nil)

	n, err := s.Write([]byte("discarded"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.False(t, s.IsTerminal())
	assert.Equal(t, DefaultColumns, s.Columns())
}

func TestIsTerminalFd_InvalidFd(t *testing.T) {
	assert.False(t, IsTerminalFd(-1))

	_, _, err := GetTerminalSize(-1)
	assert.Error(t, err)
}
