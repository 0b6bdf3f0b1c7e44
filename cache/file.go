package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a JSON-file-backed persistent store for environments without
// Redis. All reads are served from memory; every mutation rewrites the file.
// Durability is best effort across process restarts, not transactional.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// fileFormat is the on-disk JSON shape.
type fileFormat struct {
	Version string            `json:"version"`
	Entries map[string]string `json:"entries"`
}

// NewFileStore opens (or creates) a file-backed store at path. An existing
// file is loaded eagerly; a missing file starts the store empty.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path) // #nosec G304 - path is intentionally user-provided
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache file: %w", err)
	}

	var format fileFormat
	if err := json.Unmarshal(raw, &format); err != nil {
		return nil, fmt.Errorf("decoding cache file: %w", err)
	}
	if format.Entries != nil {
		s.data = format.Entries
	}
	return s, nil
}

// Get returns the stored value, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return val, nil
}

// Put stores a value and rewrites the file.
func (s *FileStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.flush()
}

// Remove deletes a key and rewrites the file; absent keys are a no-op.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Clear empties the store and rewrites the file.
func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]string)
	return s.flush()
}

// Len returns the number of stored keys.
func (s *FileStore) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data), nil
}

// Entries returns a copy of all stored entries.
func (s *FileStore) Entries(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]string, len(s.data))
	for k, v := range s.data {
		result[k] = v
	}
	return result, nil
}

// flush rewrites the file via a temp-file rename so a crash mid-write cannot
// truncate the previous contents. Caller holds the lock.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(fileFormat{Version: "1.0", Entries: s.data}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".lingua-cache-*")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Verify FileStore implements Store.
var (
	_ Store      = (*FileStore)(nil)
	_ Enumerable = (*FileStore)(nil)
)
