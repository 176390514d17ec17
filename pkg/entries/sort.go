package entries

import (
	"sort"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/types"
)

// Sorter orders the filtered entries of a directory. It receives its own copy
// of the slice and may drop or add entries.
type Sorter interface {
	Sort(entries []types.Entry) []types.Entry
}

// SorterFunc adapts a function to Sorter
type SorterFunc func(entries []types.Entry) []types.Entry

// Sort calls f
func (f SorterFunc) Sort(entries []types.Entry) []types.Entry { return f(entries) }

// DefaultSorter lists directories before files, each group ordered by
// case-insensitive name. Ties keep scan order.
type DefaultSorter struct{}

// Sort orders entries in place and returns them
func (DefaultSorter) Sort(entries []types.Entry) []types.Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return entries
}

// NameSorter orders by case-insensitive name only
type NameSorter struct{}

// Sort orders entries in place and returns them
func (NameSorter) Sort(entries []types.Entry) []types.Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

// NoSorter keeps scan order
type NoSorter struct{}

// Sort returns entries unchanged
func (NoSorter) Sort(entries []types.Entry) []types.Entry { return entries }

// Sort mode names accepted by SorterByName
const (
	SortDefault = "default"
	SortName    = "name"
	SortNone    = "none"
)

// SorterByName returns the built-in sorter for mode
func SorterByName(mode string) (Sorter, bool) {
	switch mode {
	case SortDefault, "":
		return DefaultSorter{}, true
	case SortName:
		return NameSorter{}, true
	case SortNone:
		return NoSorter{}, true
	default:
		return nil, false
	}
}
