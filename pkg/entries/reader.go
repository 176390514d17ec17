package entries

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/registry"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Reader
type Options struct {
	FS       filesystem.FS
	Registry *registry.Registry
	Filter   Filter
	Sorter   Sorter
	Logger   *zerolog.Logger
}

// Reader lists directories and registers the entries it returns
type Reader struct {
	fs       filesystem.FS
	registry *registry.Registry
	filter   Filter
	sorter   Sorter
	logger   zerolog.Logger
}

// NewReader creates a Reader. Missing Filter and Sorter fall back to
// AllFilter and DefaultSorter.
func NewReader(opts Options) *Reader {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	filter := opts.Filter
	if filter == nil {
		filter = AllFilter{}
	}
	sorter := opts.Sorter
	if sorter == nil {
		sorter = DefaultSorter{}
	}

	return &Reader{
		fs:       fsys,
		registry: reg,
		filter:   filter,
		sorter:   sorter,
		logger:   logging.OrDefault(opts.Logger, "entries"),
	}
}

// Read lists the immediate children of dir, filtered and sorted. Every
// surviving entry is registered.
func (r *Reader) Read(dir string) []types.Entry {
	raw := r.ReadRaw(dir)

	filtered := make([]types.Entry, 0, len(raw))
	for _, e := range raw {
		if r.filter.Keep(e) {
			filtered = append(filtered, e)
		}
	}

	sorted := r.sorter.Sort(filtered)
	for i := range sorted {
		sorted[i].PathID = r.registry.Register(sorted[i].Path)
	}

	r.logger.Debug().
		Str("dir", dir).
		Int("scanned", len(raw)).
		Int("shown", len(sorted)).
		Msg("Read directory")

	return sorted
}

// ReadRaw lists the immediate children of dir in scan order without filtering,
// sorting or registering them. It returns nil when dir cannot be scanned.
func (r *Reader) ReadRaw(dir string) []types.Entry {
	dirEntries, err := r.fs.ReadDir(dir)
	if err != nil {
		r.logger.Debug().Err(err).Str("dir", dir).Msg("Directory not readable, showing nothing")
		return nil
	}

	out := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		path := filepath.Join(dir, de.Name())
		out = append(out, types.Entry{
			Path: path,
			Name: de.Name(),
			Type: r.entryType(path, de),
		})
	}
	return out
}

// entryType follows symlinks so a link to a directory lists as a directory
func (r *Reader) entryType(path string, de fs.DirEntry) types.FSType {
	if de.Type()&fs.ModeSymlink != 0 {
		info, err := r.fs.Stat(path)
		if err == nil && info.IsDir() {
			return types.FSDirectory
		}
		return types.FSFile
	}
	if de.IsDir() {
		return types.FSDirectory
	}
	return types.FSFile
}

// Registry returns the registry entries are tagged from
func (r *Reader) Registry() *registry.Registry {
	return r.registry
}
