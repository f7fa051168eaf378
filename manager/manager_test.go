package manager

import (
	"errors"
	"sync"
	"testing"

	"github.com/isofinly/sharedcache/cache"
	"github.com/isofinly/sharedcache/memory"
)

func TestInstanceIsSingleton(t *testing.T) {
	const callers = 32
	var wg sync.WaitGroup
	handles := make([]*Manager, callers)

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			handles[i] = Instance()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if handles[i] != handles[0] {
			t.Fatalf("Instance() returned distinct handles: %p vs %p", handles[i], handles[0])
		}
	}
}

func TestInstanceSharesOneStore(t *testing.T) {
	a := Instance()
	b := Instance()

	if err := a.Put("shared-key", "via-a"); err != nil {
		t.Fatalf("put: %v", err)
	}
	val, ok, err := b.Get("shared-key")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "via-a" {
		t.Fatalf("write through a not visible through b: got (%q, %t)", val, ok)
	}

	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n, _ := a.Size(); n != 0 {
		t.Fatalf("size via a = %d after clear via b, want 0", n)
	}
}

func TestNewManagersAreIndependent(t *testing.T) {
	a := New(memory.NewStore())
	b := New(memory.NewStore())

	if err := a.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := b.Get("k"); ok {
		t.Fatalf("injected stores must not share state")
	}
}

func TestManagerForwardsEmptyKeyError(t *testing.T) {
	m := New(memory.NewStore())

	if err := m.Put("", "x"); !errors.Is(err, cache.ErrEmptyKey) {
		t.Fatalf("put empty key: got %v, want ErrEmptyKey", err)
	}
	if _, _, err := m.Get(""); !errors.Is(err, cache.ErrEmptyKey) {
		t.Fatalf("get empty key: got %v, want ErrEmptyKey", err)
	}
}

func TestManagerSnapshot(t *testing.T) {
	m := New(memory.NewStore())

	_ = m.Put("user:123", "Alice Smith")
	_ = m.Put("config:theme", "dark")

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap))
	}
	if snap["user:123"] != "Alice Smith" || snap["config:theme"] != "dark" {
		t.Fatalf("unexpected snapshot contents: %v", snap)
	}
}
