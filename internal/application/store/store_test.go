package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shopmanager-api/internal/domain/entity"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"github.com/shoplite/shopmanager-api/pkg/localid"
)

// stubGateway lets each test script the remote side per operation.
type stubGateway struct {
	listFn   func(ctx context.Context) ([]entity.Customer, error)
	createFn func(ctx context.Context, c entity.Customer) (entity.Customer, error)
	updateFn func(ctx context.Context, c entity.Customer) (entity.Customer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (g *stubGateway) List(ctx context.Context) ([]entity.Customer, error) {
	if g.listFn == nil {
		return nil, nil
	}
	return g.listFn(ctx)
}

func (g *stubGateway) Create(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if g.createFn == nil {
		c.ID = "remote-" + c.Name
		c.CreatedAt = time.Now()
		return c, nil
	}
	return g.createFn(ctx, c)
}

func (g *stubGateway) Update(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	if g.updateFn == nil {
		return c, nil
	}
	return g.updateFn(ctx, c)
}

func (g *stubGateway) Delete(ctx context.Context, id string) error {
	if g.deleteFn == nil {
		return nil
	}
	return g.deleteFn(ctx, id)
}

func transportErr() error {
	return apperror.NewTransportError("test", errors.New("connection refused"))
}

func customer(id, name string) entity.Customer {
	return entity.Customer{ID: id, Name: name, Phone: "11900000000"}
}

func newCustomerStore(gw *stubGateway) *Store[entity.Customer, *entity.Customer] {
	fallback := NewFallbackSet[entity.Customer](
		customer("fb-2", "Fallback Two"),
		customer("fb-1", "Fallback One"),
	)
	return New("customer", gw, fallback)
}

func TestLoadReplacesSnapshot(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-2", "Beta"), customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)

	s.Load(context.Background())

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "c-2", snapshot[0].ID)
	assert.Equal(t, "c-1", snapshot[1].ID)
	assert.False(t, s.Degraded())
}

func TestLoadFailureServesFallback(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return nil, transportErr()
		},
	}
	s := newCustomerStore(gw)

	s.Load(context.Background())

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "fb-2", snapshot[0].ID)
	assert.True(t, s.Degraded())
	assert.Error(t, s.LastError())
}

func TestLoadRecoversFromDegradedMode(t *testing.T) {
	failing := true
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			if failing {
				return nil, transportErr()
			}
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)

	s.Load(context.Background())
	require.True(t, s.Degraded())

	failing = false
	s.Load(context.Background())

	assert.False(t, s.Degraded())
	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "c-1", snapshot[0].ID)
}

func TestCreatePrependsRemoteResult(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	created, err := s.Create(context.Background(), entity.Customer{Name: "Nova", Phone: "11911111111"})

	require.NoError(t, err)
	assert.Equal(t, "remote-Nova", created.ID)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "remote-Nova", snapshot[0].ID)
	assert.Equal(t, "c-1", snapshot[1].ID)
	assert.False(t, s.Degraded())
}

func TestCreateTransportFailureMintsLocalIdentity(t *testing.T) {
	gw := &stubGateway{
		createFn: func(ctx context.Context, c entity.Customer) (entity.Customer, error) {
			return c, transportErr()
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	created, err := s.Create(context.Background(), entity.Customer{Name: "Nova", Phone: "11911111111"})

	require.NoError(t, err)
	assert.True(t, localid.IsLocal(created.ID))
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, s.Degraded())

	snapshot := s.Snapshot()
	require.NotEmpty(t, snapshot)
	assert.Equal(t, created.ID, snapshot[0].ID)
}

func TestCreateValidationErrorSurfaces(t *testing.T) {
	gw := &stubGateway{
		createFn: func(ctx context.Context, c entity.Customer) (entity.Customer, error) {
			return c, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "name is required"}})
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	_, err := s.Create(context.Background(), entity.Customer{Phone: "11911111111"})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, s.Snapshot())
	assert.False(t, s.Degraded())
	assert.Error(t, s.LastError())
}

func TestUpdateMergesAndKeepsPosition(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-2", "Beta"), customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	updated, err := s.Update(context.Background(), "c-1", func(c *entity.Customer) {
		c.Name = "Alpha Renamed"
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpha Renamed", updated.Name)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "c-2", snapshot[0].ID)
	assert.Equal(t, "Alpha Renamed", snapshot[1].Name)
}

func TestUpdateUnknownIdentity(t *testing.T) {
	s := newCustomerStore(&stubGateway{})
	s.Load(context.Background())

	_, err := s.Update(context.Background(), "missing", func(c *entity.Customer) {})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateTransportFailureKeepsLocalMerge(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
		updateFn: func(ctx context.Context, c entity.Customer) (entity.Customer, error) {
			return c, transportErr()
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	updated, err := s.Update(context.Background(), "c-1", func(c *entity.Customer) {
		c.Name = "Alpha Local"
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpha Local", updated.Name)
	assert.True(t, s.Degraded())

	got, ok := s.GetByID("c-1")
	require.True(t, ok)
	assert.Equal(t, "Alpha Local", got.Name)
}

func TestDeleteSoftDeletes(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	require.NoError(t, s.Delete(context.Background(), "c-1"))

	_, ok := s.GetByID("c-1")
	assert.False(t, ok)

	// The entry stays in the snapshot, flagged.
	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	assert.True(t, snapshot[0].Deleted)
}

func TestDeleteUnknownIdentity(t *testing.T) {
	s := newCustomerStore(&stubGateway{})
	s.Load(context.Background())

	err := s.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteTransportFailureFlagsLocally(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return nil, transportErr()
		},
		deleteFn: func(ctx context.Context, id string) error {
			return transportErr()
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	require.NoError(t, s.Delete(context.Background(), "fb-1"))

	_, ok := s.GetByID("fb-1")
	assert.False(t, ok)
	assert.True(t, s.Degraded())
}

func TestDeleteIsIdempotentPerIdentity(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	require.NoError(t, s.Delete(context.Background(), "c-1"))

	// The identity is gone now, so a second delete is a not-found.
	err := s.Delete(context.Background(), "c-1")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSnapshotIsACopy(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return []entity.Customer{customer("c-1", "Alpha")}, nil
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())

	snapshot := s.Snapshot()
	snapshot[0].Name = "Mutated"

	got, ok := s.GetByID("c-1")
	require.True(t, ok)
	assert.Equal(t, "Alpha", got.Name)
}

func TestClearError(t *testing.T) {
	gw := &stubGateway{
		listFn: func(ctx context.Context) ([]entity.Customer, error) {
			return nil, transportErr()
		},
	}
	s := newCustomerStore(gw)
	s.Load(context.Background())
	require.Error(t, s.LastError())

	s.ClearError()

	assert.NoError(t, s.LastError())
	// Degraded mode persists until a load succeeds.
	assert.True(t, s.Degraded())
}
