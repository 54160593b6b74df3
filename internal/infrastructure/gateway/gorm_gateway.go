package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/shoplite/shopmanager-api/internal/domain/gateway"
	"github.com/shoplite/shopmanager-api/pkg/apperror"
	"gorm.io/gorm"
)

// gormGateway implements the remote gateway contract on top of a gorm
// connection. Every call carries its own deadline; a deadline hit surfaces
// as a transport error so the store falls back locally.
type gormGateway[T any, PT gateway.Record[T]] struct {
	db       *gorm.DB
	resource string
	preloads []string
	timeout  time.Duration
}

// NewGormGateway creates a database-backed gateway for one entity type.
// resource names the entity in error messages; preloads lists associations
// to hydrate on reads.
func NewGormGateway[T any, PT gateway.Record[T]](db *gorm.DB, resource string, timeout time.Duration, preloads ...string) gateway.Gateway[T] {
	return &gormGateway[T, PT]{
		db:       db,
		resource: resource,
		preloads: preloads,
		timeout:  timeout,
	}
}

func (g *gormGateway[T, PT]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, preload := range g.preloads {
		db = db.Preload(preload)
	}
	return db
}

func (g *gormGateway[T, PT]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var items []T
	var model T
	err := g.withPreloads(g.db.WithContext(ctx)).
		Model(&model).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, apperror.NewTransportError("list "+g.resource, err)
	}
	return items, nil
}

func (g *gormGateway[T, PT]) Create(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return item, apperror.ErrConflict
		}
		return item, apperror.NewTransportError("create "+g.resource, err)
	}
	return item, nil
}

func (g *gormGateway[T, PT]) Update(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	id := PT(&item).EntityID()

	var existing T
	err := g.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, apperror.NewNotFoundError(g.resource)
	}
	if err != nil {
		return item, apperror.NewTransportError("update "+g.resource, err)
	}

	if err := g.db.WithContext(ctx).Save(&item).Error; err != nil {
		return item, apperror.NewTransportError("update "+g.resource, err)
	}
	return item, nil
}

func (g *gormGateway[T, PT]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var model T
	res := g.db.WithContext(ctx).Model(&model).Where("id = ?", id).Update("deleted", true)
	if res.Error != nil {
		return apperror.NewTransportError("delete "+g.resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError(g.resource)
	}
	return nil
}
