package entries_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/entries"
	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/arthur-debert/minifiles/pkg/registry"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memTree(t *testing.T, files []string, dirs []string) filesystem.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, mem.MkdirAll(d, 0755))
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

func names(list []types.Entry) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestRead_DefaultSortAndRegistration(t *testing.T) {
	fsys := memTree(t,
		[]string{"/x/b.txt", "/x/A.txt", "/x/.hidden"},
		[]string{"/x/zdir", "/x/Bdir"},
	)
	reg := registry.New()
	reader := entries.NewReader(entries.Options{FS: fsys, Registry: reg})

	got := reader.Read("/x")

	assert.Equal(t, []string{"Bdir", "zdir", ".hidden", "A.txt", "b.txt"}, names(got))
	for _, e := range got {
		id, ok := reg.Lookup(e.Path)
		require.True(t, ok, "entry %s registered", e.Path)
		assert.Equal(t, id, e.PathID)
		assert.Equal(t, filepath.Join("/x", e.Name), e.Path)
	}
	assert.Equal(t, types.FSDirectory, got[0].Type)
	assert.Equal(t, types.FSFile, got[3].Type)
}

func TestRead_ReusesIDs(t *testing.T) {
	fsys := memTree(t, []string{"/x/a.txt"}, nil)
	reader := entries.NewReader(entries.Options{FS: fsys})

	first := reader.Read("/x")
	second := reader.Read("/x")
	require.Len(t, first, 1)
	assert.Equal(t, first[0].PathID, second[0].PathID)
}

func TestRead_FilterAndCustomSorter(t *testing.T) {
	fsys := memTree(t, []string{"/x/.env", "/x/main.go", "/x/notes.md", "/x/readme.md"}, nil)

	reverse := entries.SorterFunc(func(list []types.Entry) []types.Entry {
		out := make([]types.Entry, 0, len(list))
		for i := len(list) - 1; i >= 0; i-- {
			out = append(out, list[i])
		}
		return out
	})

	reader := entries.NewReader(entries.Options{
		FS:     fsys,
		Filter: entries.NewFilter(false, "md"),
		Sorter: entries.SorterFunc(func(list []types.Entry) []types.Entry {
			return reverse.Sort(entries.NameSorter{}.Sort(list))
		}),
	})

	assert.Equal(t, []string{"readme.md", "notes.md"}, names(reader.Read("/x")))
}

func TestRead_UnreadableIsEmpty(t *testing.T) {
	reader := entries.NewReader(entries.Options{FS: filesystem.NewMemoryFS()})
	assert.Empty(t, reader.Read("/does/not/exist"))
	assert.Nil(t, reader.ReadRaw("/does/not/exist"))
}

func TestRead_SymlinkToDirectoryIsDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken")))

	reader := entries.NewReader(entries.Options{FS: filesystem.NewOS()})
	got := reader.Read(root)

	kinds := map[string]types.FSType{}
	for _, e := range got {
		kinds[e.Name] = e.Type
	}
	assert.Equal(t, types.FSDirectory, kinds["link"])
	assert.Equal(t, types.FSDirectory, kinds["real"])
	assert.Equal(t, types.FSFile, kinds["broken"])
}

func TestFilters(t *testing.T) {
	file := types.Entry{Name: "cartwheel.go"}
	dir := types.Entry{Name: "zzz", Type: types.FSDirectory}
	hidden := types.Entry{Name: ".git", Type: types.FSDirectory}

	assert.True(t, entries.FuzzyFilter{Query: "CWL"}.Keep(file))
	assert.False(t, entries.FuzzyFilter{Query: "xyz"}.Keep(file))
	assert.True(t, entries.FuzzyFilter{Query: "xyz"}.Keep(dir))
	assert.False(t, entries.HiddenFilter{}.Keep(hidden))
	assert.True(t, entries.NewFilter(true, "").Keep(hidden))
	assert.False(t, entries.NewFilter(false, "").Keep(hidden))
}

func TestSorterByName(t *testing.T) {
	for _, mode := range []string{"", "default", "name", "none"} {
		_, ok := entries.SorterByName(mode)
		assert.True(t, ok, mode)
	}
	_, ok := entries.SorterByName("size")
	assert.False(t, ok)
}
