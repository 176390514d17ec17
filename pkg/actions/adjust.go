package actions

import (
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/types"
)

// AdjustAfterMove rewrites pending actions in place after the entity at from
// was moved to to. Sources follow the entity, including the moved path
// itself. Targets are namespace: only targets strictly inside from follow the
// move, so a new entry created at the freed path stays there.
//
// It returns the number of actions that changed.
func AdjustAfterMove(pending []types.Action, from, to string) int {
	changed := 0
	for i := range pending {
		a := &pending[i]
		touched := false

		if newFrom, ok := paths.Rebase(a.From, from, to); ok {
			a.From = newFrom
			touched = true
		}
		if a.To != "" && paths.IsDescendant(a.To, from) {
			a.To, _ = paths.Rebase(a.To, from, to)
			touched = true
		}
		if touched {
			changed++
		}
	}
	return changed
}
