package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Existing Directory", func(t *testing.T) {
		ws, err := New(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultScratchFile, ws.Config.ScratchFile)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "nope"), nil)
		require.Error(t, err)
	})

	t.Run("Path Is A File", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.txt")
		require.NoError(t, writeFileAtomic(file, []byte("x"), 0644))

		_, err := New(file, nil)
		require.Error(t, err)
	})
}

func TestScratchRoundTrip(t *testing.T) {
	ws, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	content := "Hello, World!\nThis is a test file.\n"
	require.NoError(t, ws.WriteScratch("example.txt", []byte(content)))
	assert.True(t, ws.ScratchExists("example.txt"))

	got, err := ws.ReadScratch("example.txt")
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	lines, err := ws.ReadScratchLines("example.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, World!", "This is a test file."}, lines)

	require.NoError(t, ws.RemoveScratch("example.txt"))
	assert.False(t, ws.ScratchExists("example.txt"))
}

func TestRemoveScratchIdempotent(t *testing.T) {
	ws, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	assert.NoError(t, ws.RemoveScratch("never-written.txt"))
}

func TestScratchNameValidation(t *testing.T) {
	ws, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	bad := []string{"", ".", "..", "../escape.txt", "sub/dir.txt", "/abs.txt"}
	for _, name := range bad {
		t.Run(name, func(t *testing.T) {
			err := ws.WriteScratch(name, []byte("x"))
			assert.ErrorIs(t, err, ErrInvalidScratchName)

			_, err = ws.ReadScratch(name)
			assert.ErrorIs(t, err, ErrInvalidScratchName)

			assert.False(t, ws.ScratchExists(name))
		})
	}
}
