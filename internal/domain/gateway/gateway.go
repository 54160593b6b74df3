package gateway

import (
	"context"
	"time"
)

// Record constrains the entity types the stores and gateways operate on.
// Read accessors use value receivers so entity values satisfy them too;
// mutators require the pointer type.
type Record[T any] interface {
	*T
	EntityID() string
	IsDeleted() bool
	// Stamp assigns a locally minted identity and creation timestamp.
	Stamp(id string, at time.Time)
	// MarkDeleted sets the soft-delete flag.
	MarkDeleted()
}

// Gateway abstracts the remote persistence backend for one entity type.
// Implementations perform no retries and never swallow partial writes;
// failure handling belongs to the caller. Errors are classified through
// pkg/apperror: not-found and validation errors are surfaced as such,
// everything else counts as a transport failure.
type Gateway[T any] interface {
	// List returns every stored entity, most recently created first.
	List(ctx context.Context) ([]T, error)

	// Create persists a new entity and returns it with its backend-assigned
	// identity and timestamps.
	Create(ctx context.Context, item T) (T, error)

	// Update persists the given entity state and returns the stored result.
	Update(ctx context.Context, item T) (T, error)

	// Delete soft-deletes the entity with the given identity.
	Delete(ctx context.Context, id string) error
}
