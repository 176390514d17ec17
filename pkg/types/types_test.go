package types_test

import (
	"testing"

	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestActionDescription(t *testing.T) {
	tests := []struct {
		name   string
		action types.Action
		want   string
	}{
		{"create", types.Create("/x/a.txt"), "Create /x/a.txt"},
		{"delete_trash", types.Delete("/x/a.txt", "/trash/a.txt"), "Delete /x/a.txt to trash"},
		{"delete_permanent", types.Delete("/x/a.txt", ""), "Delete /x/a.txt permanently"},
		{"rename", types.Rename("/x/a", "/x/b"), "Rename /x/a to /x/b"},
		{"move", types.Move("/x/a", "/y/a"), "Move /x/a to /y/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.Description())
		})
	}
}

func TestActionHelpers(t *testing.T) {
	assert.True(t, types.Create("/x/dir/").CreatesDir())
	assert.False(t, types.Create("/x/file").CreatesDir())
	assert.Equal(t, "/x", types.Create("/x/dir/").SourceDir())
	assert.Equal(t, "/x", types.Move("/x/a", "/y/a").SourceDir())
	assert.Equal(t, "RENAME", types.ActionRename.Verb())
	assert.True(t, types.ActionMove.Relocates())
	assert.False(t, types.ActionCopy.Relocates())
}

func TestRawDiffKinds(t *testing.T) {
	assert.True(t, types.RawDiff{To: "/x/a"}.IsCreate())
	assert.True(t, types.RawDiff{From: "/x/a"}.IsDelete())
	d := types.RawDiff{From: "/x/a", To: "/x/b", Dir: "/x"}
	assert.False(t, d.IsCreate())
	assert.False(t, d.IsDelete())
	assert.Equal(t, "/x/a -> /x/b (in /x)", d.String())
}

func TestEventPaths(t *testing.T) {
	ev := types.ActionEvent{Phase: types.EventPost, Action: types.Delete("/x/a", "/t/a")}
	assert.Equal(t, "/x/a", ev.From())
	assert.Equal(t, "/t/a", ev.To())
}
