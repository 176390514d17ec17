// Package diff compares edited listings against the entries they were
// rendered from and reports raw from/to differences per directory.
package diff

import (
	"github.com/arthur-debert/minifiles/pkg/listing"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver maps a path id back to its current path
type Resolver interface {
	Resolve(id int) (string, bool)
}

// LineParser parses a single listing line
type LineParser interface {
	Parse(line string) listing.Line
}

// Listing is the current text of one directory together with the ids that
// were shown for it at the last refresh
type Listing struct {
	Dir       string
	Lines     []string
	Reference []int
}

// Computer produces raw differences for listings
type Computer struct {
	resolver Resolver
	parser   LineParser
	logger   zerolog.Logger
}

// NewComputer creates a Computer. A nil parser parses lines without prefix.
func NewComputer(resolver Resolver, parser LineParser, logger *zerolog.Logger) *Computer {
	if parser == nil {
		parser = listing.NewCodec(nil, nil)
	}
	return &Computer{
		resolver: resolver,
		parser:   parser,
		logger:   logging.OrDefault(logger, "diff"),
	}
}

// Compute returns the differences of one directory listing. An empty result
// means the directory has no pending changes.
func (c *Computer) Compute(l Listing) []types.RawDiff {
	var diffs []types.RawDiff
	accounted := make(map[int]bool, len(l.Reference))

	for _, line := range l.Lines {
		if listing.IsBlank(line) {
			continue
		}
		parsed := c.parser.Parse(line)

		if !parsed.HasID {
			diffs = append(diffs, types.RawDiff{To: paths.Child(l.Dir, parsed.Name), Dir: l.Dir})
			continue
		}

		from, ok := c.resolver.Resolve(parsed.PathID)
		if !ok {
			c.logger.Warn().
				Int("path_id", parsed.PathID).
				Str("dir", l.Dir).
				Msg("Unknown path id, treating line as a new entry")
			if parsed.Name != "" {
				diffs = append(diffs, types.RawDiff{To: paths.Child(l.Dir, parsed.Name), Dir: l.Dir})
			}
			continue
		}

		// An emptied name keeps the entry as is
		if parsed.Name == "" {
			accounted[parsed.PathID] = true
			continue
		}

		to := paths.Child(l.Dir, parsed.Name)
		if paths.TrimTrailingSep(to) == paths.TrimTrailingSep(from) {
			accounted[parsed.PathID] = true
			continue
		}
		diffs = append(diffs, types.RawDiff{From: from, To: to, Dir: l.Dir})
	}

	for _, id := range l.Reference {
		if accounted[id] {
			continue
		}
		from, ok := c.resolver.Resolve(id)
		if !ok {
			continue
		}
		accounted[id] = true
		diffs = append(diffs, types.RawDiff{From: from, Dir: l.Dir})
	}

	c.logger.Debug().Str("dir", l.Dir).Int("diffs", len(diffs)).Msg("Computed listing differences")
	return diffs
}

// ComputeAll concatenates the differences of every listing in order
func (c *Computer) ComputeAll(listings []Listing) []types.RawDiff {
	var all []types.RawDiff
	for _, l := range listings {
		all = append(all, c.Compute(l)...)
	}
	return all
}
