package explorer

import (
	"sort"

	"github.com/arthur-debert/minifiles/pkg/diff"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/types"
)

// Confirmer approves an action plan before it is executed
type Confirmer interface {
	Confirm(plan []types.Action) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(plan []types.Action) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(plan []types.Action) (bool, error) { return f(plan) }

// AutoConfirm approves every plan
type AutoConfirm struct{}

// Confirm always returns true
func (AutoConfirm) Confirm([]types.Action) (bool, error) { return true, nil }

// SyncResult reports what a synchronization did
type SyncResult struct {
	Actions   []types.Action       `json:"actions" yaml:"actions"`
	Results   []types.ActionResult `json:"-" yaml:"-"`
	Cancelled bool                 `json:"cancelled" yaml:"cancelled"`
}

// Failed returns the results that did not succeed
func (r SyncResult) Failed() []types.ActionResult {
	return types.Failed(r.Results)
}

// Plan computes the ordered actions that would bring the file system in line
// with lines, keyed by directory. Every directory must have been rendered by
// this session.
func (s *Session) Plan(lines map[string][]string) ([]types.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan(lines)
}

// Synchronize plans, confirms and executes the changes described by lines.
// A nil confirmer approves every plan. Views are refreshed afterwards, also
// when the plan is empty or rejected.
func (s *Session) Synchronize(lines map[string][]string, confirmer Confirmer) (SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.plan(lines)
	if err != nil {
		return SyncResult{}, err
	}
	result := SyncResult{Actions: plan}
	if len(plan) == 0 {
		s.refresh()
		return result, nil
	}

	if confirmer != nil {
		ok, err := confirmer.Confirm(plan)
		if err != nil {
			return result, errors.Wrap(err, errors.ErrCancelled, "confirmation failed")
		}
		if !ok {
			s.logger.Info().Int("actions", len(plan)).Msg("Synchronization cancelled")
			result.Cancelled = true
			s.refresh()
			return result, nil
		}
	}

	result.Results = s.executor.Execute(plan)
	s.refresh()

	s.logger.Info().
		Int("actions", len(plan)).
		Int("failed", len(result.Failed())).
		Msg("Synchronized")
	return result, nil
}

// plan must be called with the lock held
func (s *Session) plan(lines map[string][]string) ([]types.Action, error) {
	listings := make([]diff.Listing, 0, len(lines))
	for _, dir := range s.orderDirs(lines) {
		key := paths.TrimTrailingSep(dir)
		v, ok := s.views[key]
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "directory %s was never listed", dir).
				WithDetail("dir", dir)
		}
		listings = append(listings, diff.Listing{Dir: key, Lines: lines[dir], Reference: v.Children})
	}

	return s.classifier.Classify(s.computer.ComputeAll(listings)), nil
}

// orderDirs puts branch directories first, in branch order, then the rest
// sorted so plans are deterministic
func (s *Session) orderDirs(lines map[string][]string) []string {
	seen := make(map[string]bool, len(lines))
	var ordered []string
	for _, dir := range s.branch {
		if _, ok := lines[dir]; ok {
			ordered = append(ordered, dir)
			seen[dir] = true
		}
	}

	var rest []string
	for dir := range lines {
		if !seen[dir] {
			rest = append(rest, dir)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// refresh re-reads every tracked directory and forgets the ones that are
// gone. Must be called with the lock held.
func (s *Session) refresh() {
	s.pruneBranch()

	for dir := range s.views {
		if info, err := s.fs.Stat(dir); err != nil || !info.IsDir() {
			s.logger.Debug().Str("dir", dir).Msg("Directory is gone, dropping its view")
			delete(s.views, dir)
			continue
		}
		s.render(dir)
	}
}
