package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/ossia/engine/core"
)

// Store is a file-backed, JSON-encoded key-value store for persisted
// engine state (loop configuration and the like). Values are kept under
// namespaced keys; the whole mapping is rewritten on every Set.
//
// Watch observes out-of-band edits to the backing file so externally
// changed configuration can be picked up on a later tick.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]json.RawMessage

	watcher  *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

func NewStore(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]json.RawMessage),
		done:   make(chan struct{}),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("settings: reading %s: %w", s.path, err)
	}
	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("settings: decoding %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Get decodes the value stored under key into out. It reports whether the
// key was present.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("settings: decoding key %q: %w", key, err)
	}
	return true, nil
}

// Set stores value under key and rewrites the backing file.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("settings: encoding key %q: %w", key, err)
	}
	s.mu.Lock()
	s.values[key] = raw
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("settings: writing %s: %w", s.path, err)
	}
	return nil
}

// Watch starts observing the backing file for external modifications.
// On every change the store reloads itself and then invokes onReload from
// the watcher goroutine; callers that need frame-loop affinity should post
// the follow-up work to the scheduler.
func (s *Store) Watch(onReload func()) error {
	if s.isClosed {
		return errors.New("settings store already closed")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher
	// Watch the directory: editors and atomic writers replace the file,
	// which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.load(); err != nil {
					core.LogWarn("settings: reload failed: %s", err)
					continue
				}
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				core.LogWarn("settings: watcher error: %s", err)
			case <-s.done:
				return
			}
		}
	}()
	return nil
}

func (s *Store) Close() error {
	if s.isClosed {
		return nil
	}
	s.isClosed = true
	close(s.done)
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
