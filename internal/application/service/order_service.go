package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
	"github.com/davidkuria/brewpos-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

// IDGenerator issues identifiers for locally-synthesized bills when
// the database cannot assign one. Injected rather than a package-level
// counter so tests control it.
type IDGenerator interface {
	Next() uint64
}

// ClockIDGenerator issues millisecond-epoch-seeded IDs, monotonically
// increasing within a process.
type ClockIDGenerator struct {
	last atomic.Uint64
}

func NewClockIDGenerator() *ClockIDGenerator {
	return &ClockIDGenerator{}
}

func (g *ClockIDGenerator) Next() uint64 {
	for {
		now := uint64(time.Now().UnixMilli())
		last := g.last.Load()
		if now <= last {
			now = last + 1
		}
		if g.last.CompareAndSwap(last, now) {
			return now
		}
	}
}

// OrderService finalizes active orders into immutable sales records
// and serves them back for reporting and bill rendering.
type OrderService struct {
	orderRepo    repository.OrderRepository
	activeOrders *ActiveOrderService
	billStore    repository.BillStore
	idGen        IDGenerator
	log          *logrus.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	activeOrders *ActiveOrderService,
	billStore repository.BillStore,
	idGen IDGenerator,
	log *logrus.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		activeOrders: activeOrders,
		billStore:    billStore,
		idGen:        idGen,
		log:          log,
	}
}

// Finalize converts the session's active order into a finalized order,
// persists it, and writes the bill into the session bill store.
//
// If the order cannot be persisted the bill is still synthesized
// locally with a generated ID so the receipt flow is not blocked; the
// returned bill carries Persisted=false and the failure is logged.
func (s *OrderService) Finalize(ctx context.Context, sessionID string) (*entity.Bill, error) {
	active := s.activeOrders.take(sessionID)
	if active == nil {
		return nil, apperror.NewBadRequestError("No items in the active order")
	}

	totals := active.Totals()
	order := &entity.Order{
		SubTotal:      totals.SubTotal,
		Discount:      totals.Discount,
		DiscountType:  active.DiscountType,
		DiscountValue: active.DiscountValue,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Timestamp:     time.Now().UnixNano(),
		Finalized:     true,
		Items:         active.SnapshotItems(),
	}

	persisted := true
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log.WithError(err).Warn("finalize: order persistence failed, issuing local bill")
		order.ID = s.idGen.Next()
		persisted = false
	}

	bill := entity.BillFromOrder(order, persisted)
	if err := s.billStore.Put(sessionID, bill); err != nil {
		s.log.WithError(err).Error("finalize: failed to store bill")
	}

	return bill, nil
}

// GetBill returns the session's stored bill, or a "no bill" error when
// absent or malformed.
func (s *OrderService) GetBill(sessionID string) (*entity.Bill, error) {
	bill, err := s.billStore.Get(sessionID)
	if err != nil || bill == nil {
		return nil, apperror.ErrNoBill
	}
	return bill, nil
}

// ClearBill removes the session's stored bill. Called when a new order
// starts.
func (s *OrderService) ClearBill(sessionID string) {
	s.billStore.Clear(sessionID)
}

// GetOrder retrieves a finalized order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists finalized orders with date filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder removes a finalized order. Admin operation; the handler
// layer enforces the role.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}
