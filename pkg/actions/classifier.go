package actions

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Classifier
type Options struct {
	// PermanentDelete removes deleted entries instead of moving them to TrashDir
	PermanentDelete bool

	// TrashDir receives deleted entries. Empty means the default data dir trash.
	TrashDir string

	Logger *zerolog.Logger
}

// Classifier turns raw differences into ordered actions
type Classifier struct {
	permanent bool
	trashDir  string
	logger    zerolog.Logger
}

// NewClassifier creates a classifier
func NewClassifier(opts Options) *Classifier {
	trashDir := opts.TrashDir
	if trashDir == "" && !opts.PermanentDelete {
		trashDir = paths.New().TrashDir()
	}
	return &Classifier{
		permanent: opts.PermanentDelete,
		trashDir:  trashDir,
		logger:    logging.OrDefault(opts.Logger, "actions"),
	}
}

// Classify converts the flattened differences of every tracked directory into
// an ordered action list.
//
// A difference with both ends whose source also appears as a deletion becomes
// a Rename (same parent) or a Move; the deletion is consumed. When several
// candidates share a source the first one wins and the rest become copies.
// Other candidates are copies.
func (c *Classifier) Classify(diffs []types.RawDiff) []types.Action {
	var (
		creates    []types.Action
		candidates []types.RawDiff
		pending    = make(map[string]bool)
		deleteKeys []string
	)

	for _, d := range diffs {
		switch {
		case d.IsCreate():
			creates = append(creates, types.Create(d.To))
		case d.IsDelete():
			from := paths.TrimTrailingSep(d.From)
			if !pending[from] {
				pending[from] = true
				deleteKeys = append(deleteKeys, from)
			}
		case d.From != "" && d.To != "":
			candidates = append(candidates, d)
		}
	}

	var relocations []types.Action
	for _, d := range candidates {
		from := paths.TrimTrailingSep(d.From)
		to := paths.TrimTrailingSep(d.To)

		if !pending[from] {
			relocations = append(relocations, types.Copy(from, to))
			continue
		}
		delete(pending, from)

		if paths.Parent(from) == paths.Parent(to) {
			relocations = append(relocations, types.Rename(from, to))
		} else {
			relocations = append(relocations, types.Move(from, to))
		}
	}

	var deletes []types.Action
	for _, from := range deleteKeys {
		if !pending[from] {
			continue
		}
		deletes = append(deletes, types.Delete(from, c.trashTarget(from)))
	}

	ordered := Order(append(relocations, creates...), deletes)
	c.logger.Debug().
		Int("diffs", len(diffs)).
		Int("actions", len(ordered)).
		Int("deletes", len(deletes)).
		Msg("Classified differences")
	return ordered
}

// TrashDir returns the trash directory, empty for permanent deletes
func (c *Classifier) TrashDir() string {
	if c.permanent {
		return ""
	}
	return c.trashDir
}

func (c *Classifier) trashTarget(from string) string {
	if c.permanent {
		return ""
	}
	return filepath.Join(c.trashDir, paths.Base(from))
}

// Order arranges non-delete actions around deletes. Actions whose source or
// target lies strictly inside a deleted path run before all deletes, every
// other action runs after them. Within each group moves and renames come
// first, then copies, then creates; ties keep their input order. Deletes run
// deepest path first so a nested delete never finds its source already gone.
func Order(others, deletes []types.Action) []types.Action {
	var before, after []types.Action
	for _, a := range others {
		if touchesDeleted(a, deletes) {
			before = append(before, a)
		} else {
			after = append(after, a)
		}
	}
	sortByKind(before)
	sortByKind(after)

	out := make([]types.Action, 0, len(others)+len(deletes))
	out = append(out, before...)
	out = append(out, deepestFirst(deletes)...)
	return append(out, after...)
}

func touchesDeleted(a types.Action, deletes []types.Action) bool {
	for _, d := range deletes {
		if a.From != "" && paths.IsDescendant(a.From, d.From) {
			return true
		}
		if a.To != "" && paths.IsDescendant(a.To, d.From) {
			return true
		}
	}
	return false
}

func deepestFirst(deletes []types.Action) []types.Action {
	sorted := append([]types.Action(nil), deletes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return depth(sorted[i].From) > depth(sorted[j].From)
	})
	return sorted
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}

func kindRank(k types.ActionKind) int {
	switch k {
	case types.ActionMove, types.ActionRename:
		return 0
	case types.ActionCopy:
		return 1
	case types.ActionCreate:
		return 2
	default:
		return 3
	}
}

func sortByKind(list []types.Action) {
	sort.SliceStable(list, func(i, j int) bool {
		return kindRank(list[i].Kind) < kindRank(list[j].Kind)
	})
}
