package storage

import (
	"io"
	"os"
	"path/filepath"
)

type FileStorage struct {
	path string
}

func NewFileStorage(path string) Storage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Reader(key string) (io.ReadCloser, error) {
	return os.Open(f.filename(key))
}

// Writer creates the storage directory on demand. Creating an existing
// directory is not an error, so repeated and concurrent writes are fine.
func (f *FileStorage) Writer(key string) (io.WriteCloser, error) {
	if err := os.MkdirAll(f.path, 0o755); err != nil {
		return nil, err
	}
	return os.Create(f.filename(key))
}

func (f *FileStorage) filename(key string) string {
	return filepath.Join(f.path, key)
}
