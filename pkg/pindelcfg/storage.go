package pindelcfg

import (
	"io"
	"os"
	"path/filepath"
)

// Storage is an interface for probing and reading the per-sample files
// of one patient folder
type Storage interface {
	// Exists checks if a file exists
	Exists(name string) (bool, error)

	// Open opens a file for reading
	Open(name string) (io.ReadCloser, error)

	// Path returns the full path of a file, as written to the config
	Path(name string) string
}

// LocalStorage implements Storage for the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage backend rooted at basePath
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

func (s *LocalStorage) Exists(name string) (bool, error) {
	info, err := os.Stat(s.Path(name))
	if err == nil {
		return !info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	return os.Open(s.Path(name))
}

func (s *LocalStorage) Path(name string) string {
	return filepath.Join(s.basePath, name)
}
