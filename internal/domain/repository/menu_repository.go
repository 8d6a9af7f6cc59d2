package repository

import (
	"context"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
)

// MenuRepository defines data access for menu items
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uint64) (*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]entity.MenuItem, error)
	DeleteAll(ctx context.Context) error
}
