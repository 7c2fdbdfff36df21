package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps each slot as one JSON file under a data directory.
// It is the durable stand-in for browser local storage: single user, single
// process, whole-document writes.
type FileStorage struct {
	mu  sync.Mutex
	dir string
}

// NewFileStorage creates the data directory if needed and returns a
// FileStorage rooted there.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileStorage) Read(slot string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStorage) Write(slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write through a temp file and rename so a crash mid-write cannot leave
	// a truncated document behind.
	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(slot))
}
