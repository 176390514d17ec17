package listing

import (
	"strings"

	"github.com/arthur-debert/minifiles/pkg/types"
)

// Prefixer decorates entry names in rendered lines. Strip must undo Prefix
// on the text following the id segment.
type Prefixer interface {
	Prefix(entry types.Entry) string
	Strip(rest string) string
}

// NoPrefix renders bare names
type NoPrefix struct{}

// Prefix returns the empty string
func (NoPrefix) Prefix(types.Entry) string { return "" }

// Strip returns rest unchanged
func (NoPrefix) Strip(rest string) string { return rest }

// TypePrefix marks entries with "d " or "f "
type TypePrefix struct{}

// Prefix returns the type marker for entry
func (TypePrefix) Prefix(entry types.Entry) string {
	if entry.IsDir() {
		return "d "
	}
	return "f "
}

// Strip removes a leading type marker when present
func (TypePrefix) Strip(rest string) string {
	for _, marker := range []string{"d ", "f "} {
		if strings.HasPrefix(rest, marker) {
			return rest[len(marker):]
		}
	}
	return rest
}

// Prefix mode names accepted by PrefixerByName
const (
	PrefixNone = "none"
	PrefixType = "type"
)

// PrefixerByName returns the built-in prefixer for mode
func PrefixerByName(mode string) (Prefixer, bool) {
	switch mode {
	case PrefixNone, "":
		return NoPrefix{}, true
	case PrefixType:
		return TypePrefix{}, true
	default:
		return nil, false
	}
}
