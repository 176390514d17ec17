package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with the given content, creating parent
// directories as needed
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "create parents of %s", path)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "create %s", path)
	return path
}

// CreateDir creates a directory in parent
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	require.NoError(t, os.MkdirAll(path, 0755), "create directory %s", path)
	return path
}

// CreateSymlink creates link pointing to target
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link), "symlink %s -> %s", link, target)
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "read %s", path)
	return string(content)
}

// AssertFileContent checks that path is a file holding expected
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if assert.NoError(t, err, "read %s", path) {
		assert.Equal(t, expected, string(content), "content of %s", path)
	}
}

// AssertNoFile checks that nothing exists at path, not even a dangling link
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to not exist", path)
}

// Tree creates entries under root. Keys ending in a slash are directories,
// other keys are files with the mapped content. Returns root.
func Tree(t *testing.T, root string, entries map[string]string) string {
	t.Helper()

	for name, content := range entries {
		if strings.HasSuffix(name, "/") {
			CreateDir(t, root, name)
			continue
		}
		CreateFile(t, root, name, content)
	}
	return root
}

// MemoryTree creates the same layout as Tree in a fresh in-memory file system
func MemoryTree(t *testing.T, root string, entries map[string]string) filesystem.FS {
	t.Helper()

	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	for name, content := range entries {
		path := filepath.Join(root, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		w, err := fsys.Create(path, 0644)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}
	return fsys
}
