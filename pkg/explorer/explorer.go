package explorer

import (
	"sync"

	"github.com/arthur-debert/minifiles/pkg/actions"
	"github.com/arthur-debert/minifiles/pkg/diff"
	"github.com/arthur-debert/minifiles/pkg/entries"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/executor"
	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/arthur-debert/minifiles/pkg/listing"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/registry"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Session
type Options struct {
	FS       filesystem.FS
	Filter   entries.Filter
	Sorter   entries.Sorter
	Prefixer listing.Prefixer

	PermanentDelete bool
	TrashDir        string

	Events  executor.EventSink
	Updater executor.PathUpdater
	DryRun  bool

	Logger *zerolog.Logger
}

// View is the state kept for a directory between refreshes
type View struct {
	// Children are the path ids shown at the last refresh, in display order
	Children []int
	Cursor   int
}

// Listing is the rendered text of one directory
type Listing struct {
	Dir   string   `json:"dir" yaml:"dir"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Session is one explorer instance
type Session struct {
	mu sync.Mutex

	fs         filesystem.FS
	registry   *registry.Registry
	reader     *entries.Reader
	codec      *listing.Codec
	computer   *diff.Computer
	classifier *actions.Classifier
	executor   *executor.Executor
	logger     zerolog.Logger

	branch    []string
	focus     int
	views     map[string]*View
	bookmarks map[rune]string
}

// New creates a session with an empty branch
func New(opts Options) *Session {
	logger := logging.OrDefault(opts.Logger, "explorer")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	reg := registry.New()

	s := &Session{
		fs:        fsys,
		registry:  reg,
		logger:    logger,
		views:     make(map[string]*View),
		bookmarks: make(map[rune]string),
	}

	s.reader = entries.NewReader(entries.Options{
		FS:       fsys,
		Registry: reg,
		Filter:   opts.Filter,
		Sorter:   opts.Sorter,
		Logger:   &logger,
	})
	s.codec = listing.NewCodec(reg, opts.Prefixer)
	s.computer = diff.NewComputer(reg, s.codec, &logger)
	s.classifier = actions.NewClassifier(actions.Options{
		PermanentDelete: opts.PermanentDelete,
		TrashDir:        opts.TrashDir,
		Logger:          &logger,
	})
	s.executor = executor.New(executor.Options{
		FS:       fsys,
		Registry: reg,
		Reader:   s.reader,
		Events:   opts.Events,
		Updater:  &sessionUpdater{s: s, next: opts.Updater},
		DryRun:   opts.DryRun,
		Logger:   &logger,
	})
	return s
}

// Registry exposes the session's path registry
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Open resets the branch to the single directory path
func (s *Session) Open(path string) error {
	dir, err := s.directory(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.branch = []string{dir}
	s.focus = 0
	s.logger.Debug().Str("dir", dir).Msg("Opened directory")
	return nil
}

// Branch returns a copy of the current branch, parent first
func (s *Session) Branch() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.branch...)
}

// Focused returns the directory in focus, empty when nothing is open
func (s *Session) Focused() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.branch) == 0 {
		return ""
	}
	return s.branch[s.focus]
}

// Listings renders every directory of the branch and records the shown ids
// as the reference for the next synchronization
func (s *Session) Listings() []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Listing, 0, len(s.branch))
	for _, dir := range s.branch {
		out = append(out, s.render(dir))
	}
	return out
}

// Listing renders a single directory, tracking it even when it is not part
// of the branch
func (s *Session) Listing(dir string) (Listing, error) {
	dir, err := s.directory(dir)
	if err != nil {
		return Listing{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(dir), nil
}

// View returns a copy of the tracked state of dir
func (s *Session) View(dir string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.views[paths.TrimTrailingSep(dir)]
	if !ok {
		return View{}, false
	}
	return View{Children: append([]int(nil), v.Children...), Cursor: v.Cursor}, true
}

// SetCursor stores the cursor line for dir, clamped to its children
func (s *Session) SetCursor(dir string, line int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(paths.TrimTrailingSep(dir))
	v.Cursor = clamp(line, len(v.Children))
}

// Cursor returns the cursor line stored for dir
func (s *Session) Cursor(dir string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.views[paths.TrimTrailingSep(dir)]; ok {
		return v.Cursor
	}
	return 0
}

// render must be called with the lock held
func (s *Session) render(dir string) Listing {
	list := s.reader.Read(dir)
	ids := make([]int, len(list))
	for i, e := range list {
		ids[i] = e.PathID
	}

	v := s.view(dir)
	v.Children = ids
	v.Cursor = clamp(v.Cursor, len(ids))

	return Listing{Dir: dir, Lines: s.codec.Render(list)}
}

func (s *Session) view(dir string) *View {
	v, ok := s.views[dir]
	if !ok {
		v = &View{}
		s.views[dir] = v
	}
	return v
}

// directory normalizes path and checks it is an existing directory
func (s *Session) directory(path string) (string, error) {
	dir, err := paths.Normalize(path)
	if err != nil {
		return "", err
	}
	info, err := s.fs.Stat(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "directory %s not found", dir)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir)
	}
	return dir, nil
}

func clamp(line, count int) int {
	if count == 0 || line < 0 {
		return 0
	}
	if line >= count {
		return count - 1
	}
	return line
}

// Entry resolves a path id to the entity currently bound to it
func (s *Session) Entry(id int) (types.Entry, bool) {
	path, ok := s.registry.Resolve(id)
	if !ok {
		return types.Entry{}, false
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		return types.Entry{}, false
	}
	fsType := types.FSFile
	if info.IsDir() {
		fsType = types.FSDirectory
	}
	return types.Entry{Path: path, Name: paths.Base(path), Type: fsType, PathID: id}, true
}
