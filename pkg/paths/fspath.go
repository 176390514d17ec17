package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/errors"
)

// Normalize returns the absolute, cleaned form of path with ~ expanded.
// Trailing separators are dropped.
func Normalize(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// Child joins dir and name. A trailing separator on name is preserved since
// listings use it to mark directories.
func Child(dir, name string) string {
	joined := filepath.Join(dir, name)
	if HasTrailingSep(name) && joined != string(filepath.Separator) {
		joined += string(filepath.Separator)
	}
	return joined
}

// HasTrailingSep reports whether path ends in a separator
func HasTrailingSep(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator))
}

// TrimTrailingSep removes trailing separators, keeping the root intact
func TrimTrailingSep(path string) string {
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	if trimmed == "" && path != "" {
		return string(filepath.Separator)
	}
	return trimmed
}

// Parent returns the directory containing path, ignoring a trailing separator
func Parent(path string) string {
	return filepath.Dir(TrimTrailingSep(path))
}

// Base returns the last element of path, ignoring a trailing separator
func Base(path string) string {
	return filepath.Base(TrimTrailingSep(path))
}

// IsDescendant reports whether path lies strictly inside ancestor
func IsDescendant(path, ancestor string) bool {
	path, ancestor = TrimTrailingSep(path), TrimTrailingSep(ancestor)
	if path == ancestor {
		return false
	}
	if ancestor == string(filepath.Separator) {
		return strings.HasPrefix(path, ancestor)
	}
	return strings.HasPrefix(path, ancestor+string(filepath.Separator))
}

// IsWithin reports whether path equals ancestor or lies inside it
func IsWithin(path, ancestor string) bool {
	return TrimTrailingSep(path) == TrimTrailingSep(ancestor) || IsDescendant(path, ancestor)
}

// Rebase rewrites path from the subtree rooted at from to the subtree rooted
// at to. Paths outside from are returned unchanged. A trailing separator on
// path survives the rewrite.
func Rebase(path, from, to string) (string, bool) {
	if path == "" || !IsWithin(path, from) {
		return path, false
	}
	trailing := HasTrailingSep(path)
	rel := strings.TrimPrefix(TrimTrailingSep(path), TrimTrailingSep(from))
	out := TrimTrailingSep(to) + rel
	if trailing {
		out += string(filepath.Separator)
	}
	return out, true
}
