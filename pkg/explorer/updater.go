package explorer

import (
	"github.com/arthur-debert/minifiles/pkg/executor"
	"github.com/arthur-debert/minifiles/pkg/paths"
)

// sessionUpdater keeps branch, views and bookmarks on moved entities before
// forwarding to the caller's updater. The executor only calls it from
// Synchronize, which holds the session lock.
type sessionUpdater struct {
	s    *Session
	next executor.PathUpdater
}

func (u *sessionUpdater) PathMoved(from, to string) {
	s := u.s
	for i, dir := range s.branch {
		if rebased, ok := paths.Rebase(dir, from, to); ok {
			s.branch[i] = rebased
		}
	}
	for id, dir := range s.bookmarks {
		if rebased, ok := paths.Rebase(dir, from, to); ok {
			s.bookmarks[id] = rebased
		}
	}

	moved := make(map[string]*View)
	for dir, v := range s.views {
		if rebased, ok := paths.Rebase(dir, from, to); ok {
			moved[rebased] = v
			delete(s.views, dir)
		}
	}
	for dir, v := range moved {
		s.views[dir] = v
	}

	if u.next != nil {
		u.next.PathMoved(from, to)
	}
}

func (u *sessionUpdater) PathDeleted(path string) {
	for dir := range u.s.views {
		if paths.IsWithin(dir, path) {
			delete(u.s.views, dir)
		}
	}
	if u.next != nil {
		u.next.PathDeleted(path)
	}
}
