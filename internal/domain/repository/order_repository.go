package repository

import (
	"context"
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/pkg/pagination"
)

// OrderFilterParams holds filters for listing finalized orders
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
	SortOrder  string // "asc" or "desc" by timestamp, default desc
}

// OrderRepository defines data access for finalized orders
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListAll returns every finalized order with items, oldest first.
	// Raw input for the local sales aggregation path.
	ListAll(ctx context.Context) ([]entity.Order, error)
}
