// Package registry assigns stable integer ids to absolute paths.
//
// An id is the only durable link between a line of listing text and the
// entity it was rendered from. Ids follow the entity: after a successful move
// or rename the id is rebound to the new path, so later edits that still carry
// the old id resolve to the entity's current location.
package registry

import (
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/arthur-debert/minifiles/pkg/paths"
)

// Registry is a bidirectional id <-> path map owned by one explorer session.
// Entries are never removed; the map grows with the number of distinct paths
// seen during the session.
type Registry struct {
	mu     sync.RWMutex
	byID   map[int]string
	byPath map[string]int
	nextID int
}

// New returns an empty registry. The first allocated id is 1.
func New() *Registry {
	return &Registry{
		byID:   make(map[int]string),
		byPath: make(map[string]int),
		nextID: 1,
	}
}

// Register returns the id bound to path, allocating the next id when the
// path is unknown. Trailing separators are ignored.
func (r *Registry) Register(path string) int {
	path = key(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byPath[path]; ok {
		return id
	}
	id := r.nextID
	r.nextID++
	r.byID[id] = path
	r.byPath[path] = id
	return id
}

// Resolve returns the path currently bound to id
func (r *Registry) Resolve(id int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, ok := r.byID[id]
	return path, ok
}

// Lookup returns the id bound to path without registering it
func (r *Registry) Lookup(path string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPath[key(path)]
	return id, ok
}

// Replace rebinds the id of from to to. A different id previously bound to
// to is dropped (last write wins). Registered descendants of from are rebased
// under to the same way. Replace is a no-op when from is unknown.
func (r *Registry) Replace(from, to string) {
	from, to = key(from), key(to)
	if from == to {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPath[from]; !ok {
		return
	}

	// Collect first so rebinding does not disturb the iteration
	var moved []string
	for p := range r.byPath {
		if paths.IsWithin(p, from) {
			moved = append(moved, p)
		}
	}
	sort.Strings(moved)

	for _, oldPath := range moved {
		newPath, _ := paths.Rebase(oldPath, from, to)
		r.rebind(oldPath, newPath)
	}
}

// rebind must be called with the write lock held
func (r *Registry) rebind(oldPath, newPath string) {
	id := r.byPath[oldPath]
	delete(r.byPath, oldPath)

	if staleID, ok := r.byPath[newPath]; ok && staleID != id {
		delete(r.byID, staleID)
	}
	r.byID[id] = newPath
	r.byPath[newPath] = id
}

// Len returns the number of bound ids
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// MaxIDWidth returns the number of digits of the largest allocated id
func (r *Registry) MaxIDWidth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.nextID <= 1 {
		return 1
	}
	return len(strconv.Itoa(r.nextID - 1))
}

func key(path string) string {
	return filepath.Clean(paths.TrimTrailingSep(path))
}
