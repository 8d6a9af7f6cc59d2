package service

import (
	"context"
	"sync"
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
)

// ActiveOrderService owns the in-progress orders, one per order-taking
// session. Each session's order is mutated only through this service;
// the mutex serializes access so a session's order is never observed
// mid-mutation. Stale sessions are evicted in the background.
type ActiveOrderService struct {
	mu       sync.Mutex
	orders   map[string]*activeOrderEntry
	menuRepo repository.MenuRepository
	taxRate  int64 // percent; 0 disables tax
	entryTTL time.Duration
}

type activeOrderEntry struct {
	order    *ActiveOrder
	lastSeen time.Time
}

// NewActiveOrderService creates the active order manager. taxRate of
// zero selects the discount-only schema variant.
func NewActiveOrderService(menuRepo repository.MenuRepository, taxRate int64) *ActiveOrderService {
	s := &ActiveOrderService{
		orders:   make(map[string]*activeOrderEntry),
		menuRepo: menuRepo,
		taxRate:  taxRate,
		entryTTL: 4 * time.Hour,
	}
	go s.cleanupLoop()
	return s
}

// get returns the session's order, creating an empty one on first use.
// Caller must hold s.mu.
func (s *ActiveOrderService) get(sessionID string) *ActiveOrder {
	entry, ok := s.orders[sessionID]
	if !ok {
		entry = &activeOrderEntry{order: NewActiveOrder(s.taxRate)}
		s.orders[sessionID] = entry
	}
	entry.lastSeen = time.Now()
	return entry.order
}

// AddItem adds one unit of the menu item to the session's order,
// capturing the item's current name and price.
func (s *ActiveOrderService) AddItem(ctx context.Context, sessionID string, menuItemID uint64) (*ActiveOrder, error) {
	item, err := s.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.get(sessionID)
	order.AddItem(item)
	return order.copy(), nil
}

// UpdateQuantity sets a line's quantity; zero or below removes it.
func (s *ActiveOrderService) UpdateQuantity(sessionID string, menuItemID uint64, quantity int64) *ActiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.get(sessionID)
	order.UpdateQuantity(menuItemID, quantity)
	return order.copy()
}

// RemoveItem removes a line unconditionally if present.
func (s *ActiveOrderService) RemoveItem(sessionID string, menuItemID uint64) *ActiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.get(sessionID)
	order.RemoveItem(menuItemID)
	return order.copy()
}

// SetDiscount updates the discount configuration for the session.
func (s *ActiveOrderService) SetDiscount(sessionID string, discountType enum.DiscountType, value int64) *ActiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	order := s.get(sessionID)
	order.SetDiscountType(discountType)
	order.SetDiscountValue(value)
	return order.copy()
}

// Get returns a snapshot of the session's current order.
func (s *ActiveOrderService) Get(sessionID string) *ActiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sessionID).copy()
}

// Clear resets the session's order to empty.
func (s *ActiveOrderService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sessionID).Clear()
}

// ClearAll drops every in-progress order. Admin operation.
func (s *ActiveOrderService) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[string]*activeOrderEntry)
}

// take removes and returns the session's order for finalization, or
// nil if the session has no lines.
func (s *ActiveOrderService) take(sessionID string) *ActiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.orders[sessionID]
	if !ok || entry.order.IsEmpty() {
		return nil
	}
	order := entry.order
	entry.order = NewActiveOrder(s.taxRate)
	entry.lastSeen = time.Now()
	return order
}

func (s *ActiveOrderService) cleanupLoop() {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.entryTTL)
		s.mu.Lock()
		for id, entry := range s.orders {
			if entry.lastSeen.Before(cutoff) {
				delete(s.orders, id)
			}
		}
		s.mu.Unlock()
	}
}

// copy returns a deep copy so callers never hold a reference into the
// map while the lock is released.
func (o *ActiveOrder) copy() *ActiveOrder {
	lines := make([]ActiveOrderLine, len(o.Lines))
	copy(lines, o.Lines)
	return &ActiveOrder{
		Lines:         lines,
		DiscountType:  o.DiscountType,
		DiscountValue: o.DiscountValue,
		TaxRate:       o.TaxRate,
	}
}

// SnapshotItems converts the active lines into order item snapshots.
func (o *ActiveOrder) SnapshotItems() []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, entity.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}
	return items
}
