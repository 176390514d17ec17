// Test Type: Unit Test
// Description: Classification and ordering of raw differences, no filesystem access

package actions_test

import (
	"testing"

	"github.com/arthur-debert/minifiles/pkg/actions"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trash = "/data/mini.files/trash"

func classify(diffs ...types.RawDiff) []types.Action {
	return actions.NewClassifier(actions.Options{TrashDir: trash}).Classify(diffs)
}

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		diffs []types.RawDiff
		want  []types.Action
	}{
		{
			name:  "create_file",
			diffs: []types.RawDiff{{To: "/tmp/x/new.txt", Dir: "/tmp/x"}},
			want:  []types.Action{types.Create("/tmp/x/new.txt")},
		},
		{
			name:  "create_dir_keeps_separator",
			diffs: []types.RawDiff{{To: "/tmp/x/newdir/", Dir: "/tmp/x"}},
			want:  []types.Action{types.Create("/tmp/x/newdir/")},
		},
		{
			name:  "delete_to_trash",
			diffs: []types.RawDiff{{From: "/tmp/x/c.txt", Dir: "/tmp/x"}},
			want:  []types.Action{types.Delete("/tmp/x/c.txt", trash+"/c.txt")},
		},
		{
			name: "rename_same_parent",
			diffs: []types.RawDiff{
				{From: "/tmp/x/a.txt", To: "/tmp/x/b.txt", Dir: "/tmp/x"},
				{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
			},
			want: []types.Action{types.Rename("/tmp/x/a.txt", "/tmp/x/b.txt")},
		},
		{
			name: "move_other_parent",
			diffs: []types.RawDiff{
				{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
				{From: "/tmp/x/a.txt", To: "/tmp/y/a.txt", Dir: "/tmp/y"},
			},
			want: []types.Action{types.Move("/tmp/x/a.txt", "/tmp/y/a.txt")},
		},
		{
			name:  "copy_without_delete",
			diffs: []types.RawDiff{{From: "/tmp/x/a.txt", To: "/tmp/y/a.txt", Dir: "/tmp/y"}},
			want:  []types.Action{types.Copy("/tmp/x/a.txt", "/tmp/y/a.txt")},
		},
		{
			name: "directory_rename_drops_separator",
			diffs: []types.RawDiff{
				{From: "/tmp/x/sub", To: "/tmp/x/renamed/", Dir: "/tmp/x"},
				{From: "/tmp/x/sub", Dir: "/tmp/x"},
			},
			want: []types.Action{types.Rename("/tmp/x/sub", "/tmp/x/renamed")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.diffs...))
		})
	}
}

func TestClassify_PermanentDelete(t *testing.T) {
	c := actions.NewClassifier(actions.Options{PermanentDelete: true, TrashDir: trash})

	got := c.Classify([]types.RawDiff{{From: "/tmp/x/c.txt", Dir: "/tmp/x"}})

	require.Len(t, got, 1)
	assert.True(t, got[0].IsPermanent())
	assert.Empty(t, c.TrashDir())
}

func TestClassify_DeletePromotedAcrossDirectories(t *testing.T) {
	// The entry vanished from x and showed up in y: one move, no delete
	got := classify(
		types.RawDiff{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
		types.RawDiff{From: "/tmp/x/a.txt", To: "/tmp/y/b.txt", Dir: "/tmp/y"},
	)

	require.Len(t, got, 1)
	assert.Equal(t, types.ActionMove, got[0].Kind)
	for _, a := range got {
		assert.NotEqual(t, types.ActionDelete, a.Kind)
	}
}

func TestClassify_DuplicateDeleteCollapses(t *testing.T) {
	got := classify(
		types.RawDiff{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
		types.RawDiff{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
	)
	assert.Equal(t, []types.Action{types.Delete("/tmp/x/a.txt", trash+"/a.txt")}, got)
}

// Several relocation candidates for one source: the first one seen takes the
// pending delete and the others become copies. This mirrors long-standing
// behavior and is a known ambiguity rather than a chosen tie-break.
func TestClassify_FirstCandidateWins(t *testing.T) {
	got := classify(
		types.RawDiff{From: "/tmp/x/a.txt", To: "/tmp/y/a.txt", Dir: "/tmp/y"},
		types.RawDiff{From: "/tmp/x/a.txt", To: "/tmp/z/a.txt", Dir: "/tmp/z"},
		types.RawDiff{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
	)

	assert.Equal(t, []types.Action{
		types.Move("/tmp/x/a.txt", "/tmp/y/a.txt"),
		types.Copy("/tmp/x/a.txt", "/tmp/z/a.txt"),
	}, got)
}

func TestClassify_OrderingAroundDeletes(t *testing.T) {
	got := classify(
		types.RawDiff{To: "/tmp/y/new.txt", Dir: "/tmp/y"},
		types.RawDiff{From: "/tmp/x/old", Dir: "/tmp/x"},
		// Rescue a file out of the directory being deleted
		types.RawDiff{From: "/tmp/x/old/keep.txt", To: "/tmp/y/keep.txt", Dir: "/tmp/y"},
		types.RawDiff{From: "/tmp/x/old/keep.txt", Dir: "/tmp/x/old"},
		// Reuse the freed name
		types.RawDiff{From: "/tmp/x/other", To: "/tmp/x/old", Dir: "/tmp/x"},
		types.RawDiff{From: "/tmp/x/other", Dir: "/tmp/x"},
	)

	assert.Equal(t, []types.Action{
		types.Move("/tmp/x/old/keep.txt", "/tmp/y/keep.txt"),
		types.Delete("/tmp/x/old", trash+"/old"),
		types.Rename("/tmp/x/other", "/tmp/x/old"),
		types.Create("/tmp/y/new.txt"),
	}, got)
}

func TestClassify_OrderingInvariant(t *testing.T) {
	got := classify(
		types.RawDiff{From: "/r/a", Dir: "/r"},
		types.RawDiff{From: "/r/b", Dir: "/r"},
		types.RawDiff{From: "/r/a/old.txt", Dir: "/r/a"},
		types.RawDiff{To: "/r/a/inner.txt", Dir: "/r/a"},
		types.RawDiff{From: "/r/c.txt", To: "/r/b/c.txt", Dir: "/r/b"},
		types.RawDiff{From: "/r/b/d.txt", To: "/r/d.txt", Dir: "/r"},
		types.RawDiff{To: "/r/e.txt", Dir: "/r"},
	)

	deleteIndex := map[string]int{}
	for i, a := range got {
		if a.Kind == types.ActionDelete {
			deleteIndex[a.From] = i
		}
	}
	require.Len(t, deleteIndex, 3)

	for i, a := range got {
		for dir, di := range deleteIndex {
			if i == di {
				continue
			}
			for _, p := range []string{a.From, a.To} {
				if p != "" && len(p) > len(dir) && p[:len(dir)+1] == dir+"/" {
					assert.Less(t, i, di, "%s must run before deleting %s", a.Description(), dir)
				}
			}
		}
	}
}

func TestClassify_NestedDeletesRunDeepestFirst(t *testing.T) {
	got := classify(
		types.RawDiff{From: "/r/d", Dir: "/r"},
		types.RawDiff{From: "/r/d/e", Dir: "/r/d"},
		types.RawDiff{From: "/r/d/e/f.txt", Dir: "/r/d/e"},
		types.RawDiff{From: "/r/g.txt", Dir: "/r"},
	)

	assert.Equal(t, []types.Action{
		types.Delete("/r/d/e/f.txt", trash+"/f.txt"),
		types.Delete("/r/d/e", trash+"/e"),
		types.Delete("/r/d", trash+"/d"),
		types.Delete("/r/g.txt", trash+"/g.txt"),
	}, got)
}

func TestOrder_KindsWithinGroups(t *testing.T) {
	got := actions.Order([]types.Action{
		types.Create("/p/new"),
		types.Copy("/p/a", "/q/a"),
		types.Rename("/p/b", "/p/c"),
	}, nil)

	assert.Equal(t, []types.ActionKind{types.ActionRename, types.ActionCopy, types.ActionCreate},
		[]types.ActionKind{got[0].Kind, got[1].Kind, got[2].Kind})
}

func TestGroupBySourceDir(t *testing.T) {
	groups := actions.GroupBySourceDir([]types.Action{
		types.Rename("/tmp/x/a", "/tmp/x/b"),
		types.Create("/tmp/y/new/"),
		types.Delete("/tmp/x/c", ""),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "/tmp/x", groups[0].Dir)
	assert.Len(t, groups[0].Actions, 2)
	assert.Equal(t, "/tmp/y", groups[1].Dir)
}
