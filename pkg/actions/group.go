package actions

import "github.com/arthur-debert/minifiles/pkg/types"

// Group is the set of actions sharing a source directory
type Group struct {
	Dir     string         `json:"dir" yaml:"dir"`
	Actions []types.Action `json:"actions" yaml:"actions"`
}

// GroupBySourceDir groups actions by SourceDir, keeping the order in which
// directories first appear and the relative order of actions inside a group
func GroupBySourceDir(list []types.Action) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, a := range list {
		dir := a.SourceDir()
		i, ok := index[dir]
		if !ok {
			i = len(groups)
			index[dir] = i
			groups = append(groups, Group{Dir: dir})
		}
		groups[i].Actions = append(groups[i].Actions, a)
	}
	return groups
}
