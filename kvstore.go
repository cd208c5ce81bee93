package micropro

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// KVStore is the persistent key-value store backing the entity store. Values
// are opaque serialized snapshots. A missing key is reported with an error
// wrapping fs.ErrNotExist so callers can fall back to defaults.
type KVStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// DirStore persists each key as a JSON file in a folder, human-readable and
// git-friendly.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir. The folder is created lazily
// on the first write.
func NewDirStore(dir string) *DirStore { return &DirStore{dir: dir} }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

func (s *DirStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory KVStore for tests and ephemeral runs.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("cannot read key %q: %w", key, fs.ErrNotExist)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

var (
	_ KVStore = (*DirStore)(nil)
	_ KVStore = (*MemStore)(nil)
)
