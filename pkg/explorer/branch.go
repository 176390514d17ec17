package explorer

import (
	"path/filepath"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/paths"
)

// SetBranch replaces the branch. Every element must be an existing directory
// and the direct parent of the next one. Focus moves to the last element.
func (s *Session) SetBranch(branch []string) error {
	if len(branch) == 0 {
		return errors.New(errors.ErrInvalidBranch, "branch is empty")
	}

	dirs := make([]string, 0, len(branch))
	for i, p := range branch {
		dir, err := s.directory(p)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidBranch, "branch element %d is invalid", i).
				WithDetail("path", p)
		}
		if i > 0 && paths.Parent(dir) != dirs[i-1] {
			return errors.Newf(errors.ErrInvalidBranch, "%s is not a child of %s", dir, dirs[i-1]).
				WithDetail("path", p)
		}
		dirs = append(dirs, dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.branch = dirs
	s.focus = len(dirs) - 1
	return nil
}

// GoIn focuses the child directory name of the focused directory. A branch
// already continuing through that child is kept.
func (s *Session) GoIn(name string) error {
	s.mu.Lock()
	if len(s.branch) == 0 {
		s.mu.Unlock()
		return errors.New(errors.ErrInvalidBranch, "no directory is open")
	}
	target := filepath.Join(s.branch[s.focus], name)
	s.mu.Unlock()

	dir, err := s.directory(target)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.focus + 1
	if next < len(s.branch) && s.branch[next] == dir {
		s.focus = next
		return nil
	}
	s.branch = append(s.branch[:next:next], dir)
	s.focus = next
	return nil
}

// GoOut focuses the parent of the focused directory, extending the branch to
// the left when the focus is already at its start. It is a no-op at the root.
func (s *Session) GoOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.branch) == 0 {
		return errors.New(errors.ErrInvalidBranch, "no directory is open")
	}
	if s.focus > 0 {
		s.focus--
		return nil
	}

	parent := paths.Parent(s.branch[0])
	if parent == s.branch[0] {
		return nil
	}
	s.branch = append([]string{parent}, s.branch...)
	return nil
}

// TrimLeft drops the directories before the focus
func (s *Session) TrimLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.branch) == 0 {
		return
	}
	s.branch = append([]string(nil), s.branch[s.focus:]...)
	s.focus = 0
}

// TrimRight drops the directories after the focus
func (s *Session) TrimRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.branch) == 0 {
		return
	}
	s.branch = s.branch[:s.focus+1]
}

// pruneBranch cuts the branch at the first directory that no longer exists.
// When the first one is gone the branch restarts at its nearest existing
// ancestor. Must be called with the lock held.
func (s *Session) pruneBranch() {
	for i, dir := range s.branch {
		if info, err := s.fs.Stat(dir); err == nil && info.IsDir() {
			continue
		}
		if i > 0 {
			s.branch = s.branch[:i]
			break
		}

		anchor := paths.Parent(dir)
		for {
			if info, err := s.fs.Stat(anchor); err == nil && info.IsDir() {
				break
			}
			up := paths.Parent(anchor)
			if up == anchor {
				break
			}
			anchor = up
		}
		s.branch = []string{anchor}
		break
	}
	if s.focus >= len(s.branch) {
		s.focus = len(s.branch) - 1
	}
	if s.focus < 0 {
		s.focus = 0
	}
}
