package request

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// File is a body leaf value that triggers multipart encoding: a readable
// stream that also knows its filesystem path. The path's base name becomes
// the multipart file name.
type File interface {
	io.Reader
	Path() string
}

type fileHandle struct {
	io.Reader
	path string
}

func (f *fileHandle) Path() string {
	return f.path
}

func (f *fileHandle) Close() error {
	if closer, ok := f.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// NewFile wraps an arbitrary reader as a File with the given path. Useful for
// in-memory uploads and tests.
func NewFile(path string, contents io.Reader) File {
	return &fileHandle{Reader: contents, path: path}
}

// Open opens the named file for use as a body value.
func Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening file '%s'", path)
	}
	return &fileHandle{Reader: f, path: path}, nil
}
