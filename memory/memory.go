package memory

import (
	"sync"

	"github.com/isofinly/sharedcache/cache"
)

// Const DEFAULT_CAP defines the initial capacity of the underlying map
const DEFAULT_CAP = 1024

// Store defines the structure of the in-memory cache store.
//
// A single RWMutex guards the map: readers (Get, Size, Snapshot) share the
// read lock, writers (Put, Clear) take the write lock. Snapshot copies the
// whole map while holding the read lock, so no partially applied write can
// appear in the copy.
type Store struct {
	elements map[string]string
	lock     *sync.RWMutex
}

// NewStore creates a new empty in-memory store.
//
// Returns:
//
//	(*Store): The store, ready for concurrent use.
func NewStore() *Store {
	return &Store{
		elements: make(map[string]string, DEFAULT_CAP),
		lock:     new(sync.RWMutex),
	}
}

// Put inserts or overwrites the value associated with the given key.
//
// Parameters:
//
//	key (string): The key of the element to put. Must not be empty.
//	value (string): The value of the element to put.
//
// Returns:
//
//	(error): cache.ErrEmptyKey if the key is empty, nil otherwise.
func (s *Store) Put(key string, value string) error {
	if key == "" {
		return cache.ErrEmptyKey
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.elements[key] = value
	return nil
}

// Get retrieves the value associated with the given key.
//
// Parameters:
//
//	key (string): The key to retrieve. Must not be empty.
//
// Returns:
//
//	(string, bool, error): The value, whether the key was present, and
//	cache.ErrEmptyKey if the key is empty.
func (s *Store) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, cache.ErrEmptyKey
	}
	s.lock.RLock()
	defer s.lock.RUnlock()
	value, ok := s.elements[key]
	return value, ok, nil
}

// Clear removes every entry from the store.
func (s *Store) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.elements = make(map[string]string, DEFAULT_CAP)
	return nil
}

// Size returns the current number of stored entries.
func (s *Store) Size() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.elements), nil
}

// Snapshot returns a copy of all current entries.
//
// The copy is taken under the read lock, so it reflects the store at one
// instant: a Put or Clear that completes before Snapshot acquires the lock is
// fully visible, one that starts after is fully absent.
//
// Returns:
//
//	(map[string]string, error): The copied entries. The caller owns the map.
func (s *Store) Snapshot() (map[string]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	out := make(map[string]string, len(s.elements))
	for k, v := range s.elements {
		out[k] = v
	}
	return out, nil
}
