// Package output publishes result files only once a run has finished.
package output

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// File buffers writes into a temporary file next to the destination and
// renames it into place on Commit. Until then an existing destination is
// left untouched.
//
// Symlinks are followed, so the rename lands on the file the link points to.
// Destinations that cannot be replaced by a rename (devices, pipes, dangling
// links, or a directory without write permission) are truncated and written
// in place instead. The path "-" writes to the supplied stdout.
type File struct {
	path   string // as given
	target string // rename destination, symlinks resolved
	tmp    *os.File
	direct *os.File
	mode   fs.FileMode
	w      *bufio.Writer
	done   bool
}

// Create starts a new output for path.
func Create(path string, stdout io.Writer) (*File, error) {
	if path == "-" {
		return &File{path: path, w: bufio.NewWriter(stdout)}, nil
	}

	target, replaceable := resolve(path)
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(target); err == nil {
		mode = fi.Mode().Perm()
	}
	if replaceable {
		dir, base := filepath.Split(target)
		if dir == "" {
			dir = "."
		}
		tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
		if err == nil {
			return &File{path: path, target: target, tmp: tmp, mode: mode, w: bufio.NewWriter(tmp)}, nil
		}
		if !errors.Is(err, fs.ErrPermission) {
			return nil, err
		}
	}

	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{path: path, direct: fh, w: bufio.NewWriter(fh)}, nil
}

// resolve follows symlinks at path. replaceable is false when the
// destination exists but is not a regular file, or is a dangling link.
func resolve(path string) (target string, replaceable bool) {
	fi, err := os.Lstat(path)
	if err != nil {
		return path, true // does not exist yet
	}
	target = path
	if fi.Mode()&os.ModeSymlink != 0 {
		if target, err = filepath.EvalSymlinks(path); err != nil {
			return path, false
		}
		if fi, err = os.Stat(target); err != nil {
			return path, false
		}
	}
	return target, fi.Mode().IsRegular()
}

func (f *File) Write(p []byte) (int, error) { return f.w.Write(p) }

// Path is the destination path.
func (f *File) Path() string { return f.path }

// Commit flushes and moves the output into place.
func (f *File) Commit() error {
	if f.done {
		return errors.New("output: already closed")
	}
	f.done = true
	if err := f.w.Flush(); err != nil {
		f.discard()
		if f.tmp == nil && f.direct == nil && isBrokenPipe(err) {
			return nil // downstream reader (e.g. head) went away
		}
		return err
	}
	switch {
	case f.direct != nil:
		return f.direct.Close()
	case f.tmp == nil:
		return nil
	}
	if err := f.tmp.Chmod(f.mode); err != nil {
		f.discard()
		return err
	}
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return err
	}
	if err := os.Rename(f.tmp.Name(), f.target); err != nil {
		_ = os.Remove(f.tmp.Name())
		return err
	}
	return nil
}

// Abort drops the output. It is a no-op after Commit, so it can be deferred.
// An output written in place has already been truncated and stays so.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.discard()
}

func (f *File) discard() {
	if f.direct != nil {
		_ = f.direct.Close()
	}
	if f.tmp == nil {
		return
	}
	_ = f.tmp.Close()
	_ = os.Remove(f.tmp.Name())
}

// isBrokenPipe reports whether err is a broken or closed pipe.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
