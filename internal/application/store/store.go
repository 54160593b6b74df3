package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/localid"
)

// Store holds the authoritative in-memory snapshot for one entity type and
// orchestrates CRUD against the remote gateway. Whenever the gateway is
// unreachable the store keeps working against the local fallback set, so
// callers always get a usable result; the divergence between local and
// remote state is accepted and never reconciled.
//
// Snapshot order is most-recent-first: loads take the gateway's order,
// creates prepend.
//
// All operations are serialized by an internal mutex, so a store instance
// is safe to share across handler goroutines.
type Store[T any, PT gateway.Record[T]] struct {
	mu       sync.Mutex
	name     string
	gw       gateway.Gateway[T]
	fallback *FallbackSet[T, PT]
	items    []T
	degraded bool
	lastErr  error
}

// New creates a store for one entity type. The fallback set is owned by the
// caller and must not be shared between stores.
func New[T any, PT gateway.Record[T]](name string, gw gateway.Gateway[T], fallback *FallbackSet[T, PT]) *Store[T, PT] {
	return &Store[T, PT]{
		name:     name,
		gw:       gw,
		fallback: fallback,
	}
}

// Load replaces the snapshot with the gateway's contents. When the gateway
// fails the snapshot is replaced with the fallback set instead and the store
// enters degraded mode; the failure lands in the error slot, never in the
// return path.
func (s *Store[T, PT]) Load(ctx context.Context) {
	items, err := s.gw.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("%s store: load failed, serving fallback data: %v", s.name, err)
		s.items = s.fallback.Snapshot()
		s.degraded = true
		s.lastErr = err
		return
	}

	s.items = items
	s.degraded = false
}

// Create persists a new entity. When the gateway is unreachable the entity
// is minted locally with a reserved-namespace identity and the call still
// succeeds; only not-found and validation errors surface to the caller.
func (s *Store[T, PT]) Create(ctx context.Context, item T) (T, error) {
	created, err := s.gw.Create(ctx, item)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.items = append([]T{created}, s.items...)
		return created, nil
	}

	if !apperror.IsTransport(err) {
		s.lastErr = err
		return item, err
	}

	log.Printf("%s store: create failed, keeping entity locally: %v", s.name, err)
	PT(&item).Stamp(localid.New(), time.Now())
	s.items = append([]T{item}, s.items...)
	s.fallback.Prepend(item)
	s.degraded = true
	return item, nil
}

// Update merges the mutation produced by apply into the entity with the
// given identity. apply receives a shallow copy; the original snapshot entry
// is only replaced once the merge is accepted remotely or kept locally
// after a transport failure. Position in the snapshot is preserved.
func (s *Store[T, PT]) Update(ctx context.Context, id string, apply func(PT)) (T, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		var zero T
		err := apperror.NewNotFoundError(s.name)
		s.lastErr = err
		s.mu.Unlock()
		return zero, err
	}
	merged := s.items[idx]
	apply(PT(&merged))
	s.mu.Unlock()

	updated, err := s.gw.Update(ctx, merged)

	s.mu.Lock()
	defer s.mu.Unlock()

	// The slot may have moved while the gateway call was in flight.
	idx = s.indexOf(id)
	if idx < 0 {
		var zero T
		err := apperror.NewNotFoundError(s.name)
		s.lastErr = err
		return zero, err
	}

	if err == nil {
		s.items[idx] = updated
		return updated, nil
	}

	if !apperror.IsTransport(err) {
		s.lastErr = err
		var zero T
		return zero, err
	}

	log.Printf("%s store: update failed, keeping local merge: %v", s.name, err)
	s.items[idx] = merged
	s.degraded = true
	return merged, nil
}

// Delete soft-deletes the entity with the given identity. An unknown
// identity fails with a not-found error and leaves the snapshot unchanged.
// Gateway transport failures fall back to flagging the entity locally.
func (s *Store[T, PT]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.indexOf(id) < 0 {
		err := apperror.NewNotFoundError(s.name)
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	err := s.gw.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil && !apperror.IsTransport(err) {
		s.lastErr = err
		return err
	}
	if err != nil {
		log.Printf("%s store: delete failed, flagging entity locally: %v", s.name, err)
		s.degraded = true
		s.fallback.MarkDeleted(id)
	}

	if idx := s.indexOf(id); idx >= 0 {
		PT(&s.items[idx]).MarkDeleted()
	}
	return nil
}

// Snapshot returns a copy of the current ordered snapshot, soft-deleted
// entries included. Callers filter with the entity's deleted flag.
func (s *Store[T, PT]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// GetByID returns the non-deleted entity with the given identity.
func (s *Store[T, PT]) GetByID(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return s.items[idx], true
}

// Degraded reports whether the store has served at least one operation from
// local fallback since the last successful load.
func (s *Store[T, PT]) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// LastError returns the most recent unrecovered failure, if any.
func (s *Store[T, PT]) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError empties the store's error slot.
func (s *Store[T, PT]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// indexOf returns the snapshot position of the non-deleted entity with the
// given identity, or -1. Callers must hold the mutex.
func (s *Store[T, PT]) indexOf(id string) int {
	for i := range s.items {
		rec := PT(&s.items[i])
		if rec.EntityID() == id && !rec.IsDeleted() {
			return i
		}
	}
	return -1
}
