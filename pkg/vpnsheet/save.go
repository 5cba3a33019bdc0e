package vpnsheet

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// fileSystem is the subset of os used by atomic saves.
type fileSystem interface {
	CreateTemp(dir, pattern string) (string, io.WriteCloser, error)
	Chmod(path string, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(path string) error
}

type osFS struct{}

func (osFS) CreateTemp(dir, pattern string) (string, io.WriteCloser, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, err
	}
	return f.Name(), f, nil
}

func (osFS) Chmod(path string, perm os.FileMode) error { return os.Chmod(path, perm) }
func (osFS) Rename(oldpath, newpath string) error     { return os.Rename(oldpath, newpath) }
func (osFS) Remove(path string) error                 { return os.Remove(path) }

const tempPattern = ".vpnsheet-tmp-*"

// Save renders f and writes it to path atomically.
func Save(f *excelize.File, path string, opts Options) error {
	return save(osFS{}, f, path, opts)
}

func save(fsys fileSystem, f *excelize.File, path string, opts Options) error {
	target, perm, err := resolveTarget(path, 0o644)
	if err != nil {
		return err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return &WriteError{Op: "render", Path: path, Err: err}
	}
	if err := writeFileAtomic(fsys, target, buf.Bytes(), perm); err != nil {
		return err
	}
	opts.logger().Info("Workbook saved",
		zap.String("path", path),
		zap.String("target", target),
		zap.Int("bytes", buf.Len()))
	return nil
}

// resolveTarget returns the file that a save to path replaces and the mode
// the new file gets. Symlinks are followed so the link survives and its
// target receives the workbook. An existing regular file keeps its mode and
// must be writable by the caller.
func resolveTarget(path string, perm os.FileMode) (string, os.FileMode, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, perm, nil
	}
	if err != nil {
		return "", 0, &WriteError{Op: "create", Path: path, Err: err}
	}

	target := path
	if info.Mode()&os.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(path)
		if errors.Is(err, fs.ErrNotExist) {
			// Dangling link: create the file it points to.
			dest, err := os.Readlink(path)
			if err != nil {
				return "", 0, &WriteError{Op: "create", Path: path, Err: err}
			}
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(path), dest)
			}
			return dest, perm, nil
		}
		if err != nil {
			return "", 0, &WriteError{Op: "create", Path: path, Err: err}
		}
		target = resolved
		if info, err = os.Stat(target); err != nil {
			return "", 0, &WriteError{Op: "create", Path: path, Err: err}
		}
	}

	if !info.Mode().IsRegular() {
		return target, perm, nil
	}
	w, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return "", 0, &WriteError{Op: "create", Path: path, Err: err}
	}
	w.Close()
	return target, info.Mode().Perm(), nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over
// path. On failure the temp file is removed and any existing file at path is
// left unchanged. The parent directory must exist.
func writeFileAtomic(fsys fileSystem, path string, data []byte, perm os.FileMode) error {
	tmpPath, w, err := fsys.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return &WriteError{Op: "create", Path: path, Err: err}
	}

	success := false
	defer func() {
		if !success {
			fsys.Remove(tmpPath)
		}
	}()

	if _, err := w.Write(data); err != nil {
		w.Close()
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := w.Close(); err != nil {
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := fsys.Chmod(tmpPath, perm); err != nil {
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		return &WriteError{Op: "rename", Path: path, Err: err}
	}

	success = true
	return nil
}
