// Package kv provides the durable string key-value store backing guest
// tasks and planner preferences, the server-side analogue of browser
// localStorage.
package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a persistent string-to-string map.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps all entries in a single JSON file, rewritten on every
// mutation. Access is serialized; reads go through the in-memory copy
// loaded at construction time.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]string
}

// OpenFile loads or creates a file-backed store at path.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty store path")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	s := &FileStore{path: path, entries: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.entries); err != nil {
		// Corrupted file: start over rather than fail the whole app.
		s.entries = make(map[string]string)
	}
	return s, nil
}

// Get returns the stored value and whether the key exists.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set stores a value and persists the full map.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return s.flush()
}

// Delete removes a key and persists the full map. Deleting a missing key is
// a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// Namespaced returns a view of inner with every key prefixed, so multiple
// sessions can share one file without colliding.
func Namespaced(inner Store, prefix string) Store {
	return &namespaced{inner: inner, prefix: prefix}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(key string) (string, bool, error) { return n.inner.Get(n.prefix + key) }
func (n *namespaced) Set(key, value string) error          { return n.inner.Set(n.prefix+key, value) }
func (n *namespaced) Delete(key string) error              { return n.inner.Delete(n.prefix + key) }
