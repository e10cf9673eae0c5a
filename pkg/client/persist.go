package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Persister keeps the last known state of a store across restarts.
// Load reports false when nothing was saved under key.
type Persister interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
}

// Notifier receives the transient success and error messages a UI would
// show as toasts.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFilePersister saves each key as <dir>/<key>.json.
func NewFilePersister(dir string) (Persister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileStore) Load(key string, v any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes to a temp file and renames it so a crash never leaves a
// truncated snapshot.
func (f *fileStore) Save(key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

// store holds one piece of mirrored state together with its persistence.
type store[T any] struct {
	mu       sync.RWMutex
	state    T
	key      string
	persist  Persister
	notifier Notifier
}

func (s *store[T]) setup(key string, persist Persister, notifier Notifier) {
	s.key = key
	s.persist = persist
	s.notifier = notifier
}

// Snapshot returns the cached state. Slices in it are replaced, never
// modified in place, so the caller may keep reading them.
func (s *store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *store[T]) restore() error {
	if s.persist == nil {
		return nil
	}
	var saved T
	ok, err := s.persist.Load(s.key, &saved)
	if err != nil || !ok {
		return err
	}
	s.mu.Lock()
	s.state = saved
	s.mu.Unlock()
	return nil
}

// update applies fn under the lock and persists the result.
func (s *store[T]) update(fn func(state *T)) error {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	s.mu.Unlock()

	if s.persist == nil {
		return nil
	}
	return s.persist.Save(s.key, snapshot)
}

func (s *store[T]) ok(message string) {
	if s.notifier != nil && message != "" {
		s.notifier.Success(message)
	}
}

// fail forwards err to the notifier and returns it unchanged.
func (s *store[T]) fail(err error) error {
	if s.notifier != nil && err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			s.notifier.Error(apiErr.Message)
		} else {
			s.notifier.Error(err.Error())
		}
	}
	return err
}
