package manager

import (
	"sync"

	"github.com/isofinly/sharedcache/cache"
	"github.com/isofinly/sharedcache/memory"
)

// Manager is the shared cache handle. It exclusively owns its store; callers
// never touch the store directly.
type Manager struct {
	store cache.Store
}

var (
	shared *Manager
	once   sync.Once
)

// Instance returns the single process-wide Manager, constructing it on first
// call.
//
// Construction is guarded by a sync.Once, so any number of concurrent first
// calls build exactly one in-memory store and every caller receives the same
// fully constructed handle. There is no way to tear it down; the instance
// lives until process exit.
//
// Returns:
//
//	(*Manager): The process-wide shared cache.
func Instance() *Manager {
	once.Do(func() {
		shared = New(memory.NewStore())
	})
	return shared
}

// New creates a Manager around an explicitly provided store.
//
// Tests and callers that want scoped rather than process-wide sharing use
// this directly and pass the handle around themselves.
//
// Parameters:
//
//	store (cache.Store): The backend to manage.
//
// Returns:
//
//	(*Manager): A handle owning the given store.
func New(store cache.Store) *Manager {
	return &Manager{store: store}
}

// Put inserts or overwrites the value for key.
func (m *Manager) Put(key string, value string) error {
	return m.store.Put(key, value)
}

// Get retrieves the value for key. ok reports whether the key was present.
func (m *Manager) Get(key string) (value string, ok bool, err error) {
	return m.store.Get(key)
}

// Clear removes all entries.
func (m *Manager) Clear() error {
	return m.store.Clear()
}

// Size returns the current number of stored entries.
func (m *Manager) Size() (int, error) {
	return m.store.Size()
}

// Snapshot returns a copy of all entries, consistent at one instant.
func (m *Manager) Snapshot() (map[string]string, error) {
	return m.store.Snapshot()
}
