package main

import (
	"errors"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
)

// fileWriter creates files that do not exist yet and leaves existing ones
// alone. Paths are relative to the filesystem root and use forward slashes.
type fileWriter struct {
	fs  billy.Filesystem
	log *logger
}

func newFileWriter(fs billy.Filesystem, log *logger) *fileWriter {
	if log == nil {
		log = nopLogger()
	}
	return &fileWriter{fs: fs, log: log}
}

// writeIfAbsent writes content to name unless a file is already there.
// created reports whether a write happened. The parent directory must exist.
func (w *fileWriter) writeIfAbsent(name, content string) (created bool, err error) {
	if _, err := w.fs.Stat(name); err == nil {
		w.log.fileEvent(name, false)
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, &FSError{Op: "stat", Path: name, Err: err}
	}

	// billy creates missing parents on OpenFile; the caller owns directory layout.
	if dir := path.Dir(name); dir != "." && dir != "/" {
		fi, err := w.fs.Stat(dir)
		if err != nil {
			return false, &FSError{Op: "create", Path: name, Err: err}
		}
		if !fi.IsDir() {
			return false, &FSError{Op: "create", Path: name, Err: errors.New("parent is not a directory")}
		}
	}

	f, err := w.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			w.log.fileEvent(name, false)
			return false, nil
		}
		return false, &FSError{Op: "create", Path: name, Err: err}
	}
	if _, err := f.Write([]byte(content)); err != nil {
		_ = f.Close()
		return false, &FSError{Op: "write", Path: name, Err: err}
	}
	if err := f.Close(); err != nil {
		return false, &FSError{Op: "close", Path: name, Err: err}
	}
	w.log.fileEvent(name, true)
	return true, nil
}
