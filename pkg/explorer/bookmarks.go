package explorer

import (
	"sort"

	"github.com/arthur-debert/minifiles/pkg/errors"
)

// Bookmark is a named directory
type Bookmark struct {
	ID   rune   `json:"id" yaml:"id"`
	Path string `json:"path" yaml:"path"`
}

// SetBookmark binds id to the directory path
func (s *Session) SetBookmark(id rune, path string) error {
	if id == 0 {
		return errors.New(errors.ErrInvalidBookmark, "bookmark id must be a character")
	}
	dir, err := s.directory(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidBookmark, "bookmark %q has an invalid path", id).
			WithDetail("path", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks[id] = dir
	return nil
}

// GoToBookmark opens the directory bound to id
func (s *Session) GoToBookmark(id rune) error {
	s.mu.Lock()
	dir, ok := s.bookmarks[id]
	s.mu.Unlock()

	if !ok {
		return errors.Newf(errors.ErrInvalidBookmark, "no bookmark %q", id)
	}
	if err := s.Open(dir); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidBookmark, "bookmark %q points to an unusable path", id)
	}
	return nil
}

// Bookmarks lists bookmarks ordered by id
func (s *Session) Bookmarks() []Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Bookmark, 0, len(s.bookmarks))
	for id, path := range s.bookmarks {
		out = append(out, Bookmark{ID: id, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
