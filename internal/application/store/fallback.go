package store

import (
	"sync"

	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
)

// FallbackSet is the locally held collection a store serves from when the
// remote backend is unreachable. It is seeded at construction, owned by
// exactly one store, and never a process-wide singleton.
type FallbackSet[T any, PT gateway.Record[T]] struct {
	mu    sync.Mutex
	items []T
}

// NewFallbackSet creates a fallback set pre-seeded with the given entities,
// most recent first.
func NewFallbackSet[T any, PT gateway.Record[T]](seed ...T) *FallbackSet[T, PT] {
	return &FallbackSet[T, PT]{items: append([]T(nil), seed...)}
}

// Snapshot returns a copy of the current contents.
func (f *FallbackSet[T, PT]) Snapshot() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]T(nil), f.items...)
}

// Prepend adds a locally created entity at the front.
func (f *FallbackSet[T, PT]) Prepend(item T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]T{item}, f.items...)
}

// MarkDeleted flags the entity with the given identity, if present.
func (f *FallbackSet[T, PT]) MarkDeleted(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if PT(&f.items[i]).EntityID() == id {
			PT(&f.items[i]).MarkDeleted()
			return
		}
	}
}
