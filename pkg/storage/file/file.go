// Package file implements a storage sink backed by one file per key under
// a data directory. Writes go through a temporary file and rename so a
// crashed write never leaves a half-written value behind.
package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
	"github.com/cinetech/cinetech/pkg/storage"
)

// Sink stores each key as a JSON file in a directory.
type Sink struct {
	dir string
}

var _ storage.Sink = (*Sink)(nil)

// New creates a file sink rooted at dir, creating the directory if needed.
func New(dir string) (*Sink, error) {
	if dir == "" {
		return nil, errors.New("storage directory required")
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &Sink{dir: dir}, nil
}

// Save writes value to <dir>/<key>.json atomically.
func (s *Sink) Save(key string, value []byte) error {
	path := s.path(key)

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Load reads the value stored under key; absent files report ok=false.
func (s *Sink) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", s.path(key), err)
	}
	return data, true, nil
}

// path maps a key to its file path. Path separators inside keys are
// flattened so a key can never escape the sink directory.
func (s *Sink) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
