package executor

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arthur-debert/minifiles/pkg/actions"
	"github.com/arthur-debert/minifiles/pkg/entries"
	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/filesystem"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/arthur-debert/minifiles/pkg/registry"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/rs/zerolog"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Options contains configuration for the executor
type Options struct {
	// FS is the file system actions run against. Defaults to the OS.
	FS filesystem.FS

	// Registry is rebound after moves. Optional.
	Registry *registry.Registry

	// Reader provides raw listings for recursive copies. Defaults to a reader
	// over FS.
	Reader *entries.Reader

	Events  EventSink
	Updater PathUpdater
	DryRun  bool
	Logger  *zerolog.Logger
}

// Executor runs ordered action lists
type Executor struct {
	fs       filesystem.FS
	registry *registry.Registry
	reader   *entries.Reader
	events   EventSink
	updater  PathUpdater
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.OrDefault(opts.Logger, "executor")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	reader := opts.Reader
	if reader == nil {
		reader = entries.NewReader(entries.Options{FS: fsys, Registry: opts.Registry, Logger: &logger})
	}

	return &Executor{
		fs:       fsys,
		registry: opts.Registry,
		reader:   reader,
		events:   opts.Events,
		updater:  opts.Updater,
		dryRun:   opts.DryRun,
		logger:   logger,
	}
}

// Execute runs actions in order and returns one result per action. The input
// slice is not modified; results carry the paths as adjusted at run time.
func (e *Executor) Execute(list []types.Action) []types.ActionResult {
	defer logging.LogOperationStart(e.logger, "execute")()

	pending := make([]types.Action, len(list))
	copy(pending, list)

	results := make([]types.ActionResult, 0, len(pending))
	for i := range pending {
		result := e.executeAction(pending[i])
		results = append(results, result)

		if !result.Success || result.Skipped {
			continue
		}
		e.afterSuccess(pending[i], pending[i+1:])
	}
	return results
}

// executeAction executes a single action and returns its result
func (e *Executor) executeAction(action types.Action) types.ActionResult {
	start := time.Now()

	e.logger.Debug().
		Str("action", string(action.Kind)).
		Str("description", action.Description()).
		Bool("dry_run", e.dryRun).
		Msg("Executing action")

	if e.dryRun {
		return types.ActionResult{
			Action:   action,
			Success:  true,
			Skipped:  true,
			Message:  "Dry run - no changes made",
			Duration: time.Since(start),
		}
	}

	e.emit(types.EventPre, action)

	var err error
	switch action.Kind {
	case types.ActionCreate:
		err = e.create(action)
	case types.ActionCopy:
		err = e.copy(action)
	case types.ActionMove, types.ActionRename:
		err = e.move(action)
	case types.ActionDelete:
		err = e.delete(action)
	default:
		err = errors.Newf(errors.ErrActionInvalid, "unknown action kind %q", action.Kind)
	}

	if err != nil {
		if errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			e.logger.Warn().
				Err(err).
				Str("action", string(action.Kind)).
				Msg("Target already exists, action skipped")
			return types.ActionResult{
				Action:   action,
				Skipped:  true,
				Error:    err,
				Message:  "Target already exists",
				Duration: time.Since(start),
			}
		}

		e.logger.Error().
			Err(err).
			Str("action", string(action.Kind)).
			Msg("Action execution failed")
		return types.ActionResult{
			Action:   action,
			Error:    err,
			Duration: time.Since(start),
		}
	}

	e.emit(types.EventPost, action)

	e.logger.Info().
		Str("action", string(action.Kind)).
		Str("description", action.Description()).
		Dur("duration", time.Since(start)).
		Msg("Action executed successfully")

	return types.ActionResult{
		Action:   action,
		Success:  true,
		Message:  action.Description(),
		Duration: time.Since(start),
	}
}

// afterSuccess propagates a completed action to the registry, the updater
// and the actions still pending in the batch
func (e *Executor) afterSuccess(done types.Action, rest []types.Action) {
	switch {
	case done.Kind.Relocates():
		if e.registry != nil {
			e.registry.Replace(done.From, done.To)
		}
		if e.updater != nil {
			e.updater.PathMoved(done.From, done.To)
		}
		if n := actions.AdjustAfterMove(rest, done.From, done.To); n > 0 {
			e.logger.Debug().
				Str("from", done.From).
				Str("to", done.To).
				Int("adjusted", n).
				Msg("Rewrote pending actions after move")
		}
	case done.Kind == types.ActionDelete:
		if e.updater != nil {
			e.updater.PathDeleted(done.From)
		}
	}
}

func (e *Executor) emit(phase types.EventPhase, action types.Action) {
	if e.events == nil {
		return
	}
	e.events.Emit(types.ActionEvent{Phase: phase, Action: action})
}

func (e *Executor) create(action types.Action) error {
	target := paths.TrimTrailingSep(action.To)
	if err := e.ensureFree(target); err != nil {
		return err
	}

	if err := e.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create parent of %s", target)
	}

	if action.CreatesDir() {
		if err := e.fs.Mkdir(target, dirPerm); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to create directory %s", target)
		}
		return nil
	}

	f, err := e.fs.Create(target, filePerm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create file %s", target)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to close %s", target)
	}
	return nil
}

func (e *Executor) copy(action types.Action) error {
	if err := e.ensureSource(action.From); err != nil {
		return err
	}
	if err := e.ensureFree(action.To); err != nil {
		return err
	}
	if err := e.fs.MkdirAll(filepath.Dir(action.To), dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create parent of %s", action.To)
	}
	return e.copyTree(action.From, action.To)
}

func (e *Executor) move(action types.Action) error {
	if err := e.ensureSource(action.From); err != nil {
		return err
	}
	if err := e.ensureFree(action.To); err != nil {
		return err
	}
	if err := e.fs.MkdirAll(filepath.Dir(action.To), dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create parent of %s", action.To)
	}
	return e.relocate(action.From, action.To)
}

func (e *Executor) delete(action types.Action) error {
	if err := e.ensureSource(action.From); err != nil {
		return err
	}

	if action.IsPermanent() {
		if err := e.fs.RemoveAll(action.From); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to delete %s", action.From)
		}
		return nil
	}

	// Last delete wins in the trash
	if err := e.fs.RemoveAll(action.TrashTo); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to clear trash entry %s", action.TrashTo)
	}
	if err := e.fs.MkdirAll(filepath.Dir(action.TrashTo), dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create trash directory %s", filepath.Dir(action.TrashTo))
	}
	return e.relocate(action.From, action.TrashTo)
}

// relocate renames from to to, falling back to copy and delete when the two
// live on different devices. A failed fallback removes the partial copy.
func (e *Executor) relocate(from, to string) error {
	err := e.fs.Rename(from, to)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to move %s to %s", from, to)
	}

	e.logger.Debug().Str("from", from).Str("to", to).Msg("Cross-device move, copying instead")

	if err := e.copyTree(from, to); err != nil {
		e.rollback(to)
		return errors.Wrapf(err, errors.ErrCrossDevice, "failed to copy %s to %s across devices", from, to)
	}
	if err := e.fs.RemoveAll(from); err != nil {
		e.rollback(to)
		return errors.Wrapf(err, errors.ErrCrossDevice, "failed to remove %s after cross-device copy", from)
	}
	return nil
}

func (e *Executor) rollback(path string) {
	if err := e.fs.RemoveAll(path); err != nil {
		e.logger.Error().Err(err).Str("path", path).Msg("Failed to clean up partial copy")
	}
}

func (e *Executor) ensureSource(path string) error {
	if _, err := e.fs.Lstat(path); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "source %s is gone", path).
			WithDetail("path", path)
	}
	return nil
}

func (e *Executor) ensureFree(path string) error {
	if filesystem.Exists(e.fs, path) {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}
	return nil
}
