package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fsys filesystem.FS, root string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "sub", "dir"), 0755))

	file := filepath.Join(root, "a.txt")
	w, err := fsys.Create(file, 0644)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = fsys.Create(file, 0644)
	assert.Error(t, err, "Create must not truncate an existing file")

	r, err := fsys.Open(file)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "hello", string(content))

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	moved := filepath.Join(root, "sub", "b.txt")
	require.NoError(t, fsys.Rename(file, moved))
	assert.False(t, filesystem.Exists(fsys, file))
	assert.True(t, filesystem.Exists(fsys, moved))

	require.NoError(t, fsys.RemoveAll(filepath.Join(root, "sub")))
	_, err = fsys.Stat(moved)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exercise(t, filesystem.NewOS(), t.TempDir())
}

func TestMemoryFS(t *testing.T) {
	exercise(t, filesystem.NewMemoryFS(), "/work")
}
