package cache

import "errors"

// ErrEmptyKey is returned by Put and Get when the key is the empty string.
// The store is never modified by a rejected call.
var ErrEmptyKey = errors.New("cache: key cannot be empty")

// Store is an interface for a cache store.
type Store interface {
	// Put inserts or overwrites the value for key.
	Put(key string, value string) error
	// Get retrieves the value for key. ok reports whether the key was present,
	// so a stored empty string is distinguishable from an absent key.
	Get(key string) (value string, ok bool, err error)
	// Clear removes all entries.
	Clear() error
	// Size returns the current number of stored entries.
	Size() (int, error)
	// Snapshot returns a copy of all entries, consistent at one instant.
	Snapshot() (map[string]string, error)
}
