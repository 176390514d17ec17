package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	root := testutil.Tree(t, t.TempDir(), map[string]string{
		"a.txt":       "a",
		"sub/":        "",
		"deep/b/c.md": "c",
	})

	testutil.AssertFileContent(t, filepath.Join(root, "a.txt"), "a")
	testutil.AssertFileContent(t, filepath.Join(root, "deep", "b", "c.md"), "c")
	assert.DirExists(t, filepath.Join(root, "sub"))
	testutil.AssertNoFile(t, filepath.Join(root, "missing"))
}

func TestMemoryTree(t *testing.T) {
	fsys := testutil.MemoryTree(t, "/tmp/x", map[string]string{
		"a.txt": "a",
		"sub/":  "",
	})

	assert.True(t, filesystem.Exists(fsys, "/tmp/x/a.txt"))
	info, err := fsys.Stat("/tmp/x/sub")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnvironment(t *testing.T) {
	env := testutil.NewEnvironment(t)

	assert.Equal(t, env.DataDir, os.Getenv(paths.EnvDataDir))
	assert.Equal(t, env.TrashDir(), paths.New().TrashDir())
	assert.Equal(t, filepath.Join(env.ConfigDir, paths.ConfigFileName), env.ConfigFile(t, "[ui]\n"))
}
