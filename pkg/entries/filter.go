package entries

import (
	"strings"

	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter decides which scanned entries are shown
type Filter interface {
	Keep(entry types.Entry) bool
}

// FilterFunc adapts a function to Filter
type FilterFunc func(entry types.Entry) bool

// Keep calls f
func (f FilterFunc) Keep(entry types.Entry) bool { return f(entry) }

// AllFilter keeps every entry
type AllFilter struct{}

// Keep always returns true
func (AllFilter) Keep(types.Entry) bool { return true }

// HiddenFilter drops dot-files
type HiddenFilter struct{}

// Keep returns false for names starting with a dot
func (HiddenFilter) Keep(entry types.Entry) bool {
	return !strings.HasPrefix(entry.Name, ".")
}

// FuzzyFilter keeps entries whose name fuzzily matches Query, ignoring case.
// Directories are always kept so navigation stays possible.
type FuzzyFilter struct {
	Query string
}

// Keep reports whether the entry matches the query
func (f FuzzyFilter) Keep(entry types.Entry) bool {
	if f.Query == "" || entry.IsDir() {
		return true
	}
	return fuzzy.MatchFold(f.Query, entry.Name)
}

// Chain keeps an entry only when every filter keeps it
type Chain []Filter

// Keep applies each filter in order
func (c Chain) Keep(entry types.Entry) bool {
	for _, f := range c {
		if !f.Keep(entry) {
			return false
		}
	}
	return true
}

// NewFilter builds the filter for the content options
func NewFilter(showHidden bool, query string) Filter {
	var chain Chain
	if !showHidden {
		chain = append(chain, HiddenFilter{})
	}
	if query != "" {
		chain = append(chain, FuzzyFilter{Query: query})
	}
	if len(chain) == 0 {
		return AllFilter{}
	}
	return chain
}
