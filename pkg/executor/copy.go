package executor

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/minifiles/pkg/errors"
)

// copyTree copies from to to. A target inside the source tree is left out of
// the copy, so copying a directory into one of its descendants copies the
// original contents once.
func (e *Executor) copyTree(from, to string) error {
	return e.copyEntry(from, to, filepath.Clean(to))
}

func (e *Executor) copyEntry(from, to, root string) error {
	info, err := e.fs.Lstat(from)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", from)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, err := e.fs.Readlink(from)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read link %s", from)
		}
		if err := e.fs.Symlink(target, to); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to create link %s", to)
		}
		return nil

	case info.IsDir():
		children := e.reader.ReadRaw(from)
		if err := e.fs.Mkdir(to, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to create directory %s", to)
		}
		for _, child := range children {
			if filepath.Clean(child.Path) == root {
				continue
			}
			if err := e.copyEntry(child.Path, filepath.Join(to, child.Name), root); err != nil {
				return err
			}
		}
		return nil

	default:
		return e.copyFile(from, to, info.Mode().Perm())
	}
}

func (e *Executor) copyFile(from, to string, perm fs.FileMode) error {
	src, err := e.fs.Open(from)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", from)
	}
	defer func() { _ = src.Close() }()

	dst, err := e.fs.Create(to, perm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to create %s", to)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to copy %s to %s", from, to)
	}
	if err := dst.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "failed to close %s", to)
	}
	return nil
}
