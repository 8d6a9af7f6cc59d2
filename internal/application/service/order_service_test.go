package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
	"github.com/davidkuria/brewpos-api/internal/infrastructure/billstore"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
)

type fakeMenuRepo struct {
	items map[uint64]*entity.MenuItem
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) GetByID(ctx context.Context, id uint64) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}
func (r *fakeMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) Delete(ctx context.Context, id uint64) error             { return nil }
func (r *fakeMenuRepo) List(ctx context.Context) ([]entity.MenuItem, error)     { return nil, nil }
func (r *fakeMenuRepo) DeleteAll(ctx context.Context) error                     { return nil }

// recordingOrderRepo persists into memory, or fails every write when
// createErr is set.
type recordingOrderRepo struct {
	stubOrderRepo
	createErr error
	nextID    uint64
}

func (r *recordingOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	order.ID = r.nextID
	r.orders = append(r.orders, *order)
	return nil
}

type fixedIDGen struct{ id uint64 }

func (g *fixedIDGen) Next() uint64 { return g.id }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestOrderService(t *testing.T, orderRepo *recordingOrderRepo) (*OrderService, *ActiveOrderService) {
	t.Helper()
	menuRepo := &fakeMenuRepo{items: map[uint64]*entity.MenuItem{
		1: {ID: 1, Name: "Lemon Tea", Price: 2000, Category: "Tea"},
		2: {ID: 2, Name: "Black Coffee", Price: 4000, Category: "Coffee"},
	}}
	active := NewActiveOrderService(menuRepo, 0)
	store := billstore.NewStore(0)
	svc := NewOrderService(orderRepo, active, store, &fixedIDGen{id: 7777}, quietLogger())
	return svc, active
}

func TestFinalize_PersistsOrderAndStoresBill(t *testing.T) {
	ctx := context.Background()
	repo := &recordingOrderRepo{}
	svc, active := newTestOrderService(t, repo)

	_, err := active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)
	_, err = active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)
	active.SetDiscount("till-1", enum.DiscountTypeFlat, 500)

	bill, err := svc.Finalize(ctx, "till-1")
	require.NoError(t, err)
	require.NotNil(t, bill)

	assert.True(t, bill.Persisted)
	assert.Equal(t, int64(4000), bill.SubTotal)
	assert.Equal(t, int64(500), bill.Discount)
	assert.Equal(t, int64(3500), bill.Total)
	require.Len(t, bill.Items, 1)
	assert.Equal(t, int64(2), bill.Items[0].Quantity)
	require.Len(t, repo.orders, 1)
	assert.True(t, repo.orders[0].Finalized)

	// Finalizing drains the active order
	assert.True(t, active.Get("till-1").IsEmpty())

	// The bill is retrievable for the session
	stored, err := svc.GetBill("till-1")
	require.NoError(t, err)
	assert.Equal(t, bill.ID, stored.ID)
}

func TestFinalize_EmptyOrderIsRejected(t *testing.T) {
	svc, _ := newTestOrderService(t, &recordingOrderRepo{})

	_, err := svc.Finalize(context.Background(), "till-1")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestFinalize_StorageFailureStillIssuesBill(t *testing.T) {
	ctx := context.Background()
	repo := &recordingOrderRepo{createErr: errors.New("connection refused")}
	svc, active := newTestOrderService(t, repo)

	_, err := active.AddItem(ctx, "till-1", 2)
	require.NoError(t, err)

	bill, err := svc.Finalize(ctx, "till-1")
	require.NoError(t, err)
	require.NotNil(t, bill)

	assert.False(t, bill.Persisted)
	assert.Equal(t, uint64(7777), bill.ID)
	assert.Equal(t, int64(4000), bill.Total)
	assert.Empty(t, repo.orders)

	// The locally-synthesized bill is still in the session store
	stored, err := svc.GetBill("till-1")
	require.NoError(t, err)
	assert.False(t, stored.Persisted)
}

func TestGetBill_AbsentIsNoBill(t *testing.T) {
	svc, _ := newTestOrderService(t, &recordingOrderRepo{})

	_, err := svc.GetBill("till-9")
	assert.ErrorIs(t, err, apperror.ErrNoBill)
}

func TestClearBill(t *testing.T) {
	ctx := context.Background()
	svc, active := newTestOrderService(t, &recordingOrderRepo{})

	_, err := active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, "till-1")
	require.NoError(t, err)

	svc.ClearBill("till-1")
	_, err = svc.GetBill("till-1")
	assert.ErrorIs(t, err, apperror.ErrNoBill)
}

func TestActiveOrderService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	_, active := newTestOrderService(t, &recordingOrderRepo{})

	_, err := active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)
	_, err = active.AddItem(ctx, "till-2", 2)
	require.NoError(t, err)

	one := active.Get("till-1")
	two := active.Get("till-2")
	require.Len(t, one.Lines, 1)
	require.Len(t, two.Lines, 1)
	assert.Equal(t, uint64(1), one.Lines[0].MenuItemID)
	assert.Equal(t, uint64(2), two.Lines[0].MenuItemID)
}

func TestActiveOrderService_UnknownMenuItem(t *testing.T) {
	_, active := newTestOrderService(t, &recordingOrderRepo{})

	_, err := active.AddItem(context.Background(), "till-1", 404)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestActiveOrderService_SnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	_, active := newTestOrderService(t, &recordingOrderRepo{})

	_, err := active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)

	snapshot := active.Get("till-1")
	snapshot.Lines[0].Quantity = 99

	assert.Equal(t, int64(1), active.Get("till-1").Lines[0].Quantity)
}

func TestClockIDGenerator_MonotonicWithinProcess(t *testing.T) {
	gen := NewClockIDGenerator()
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		next := gen.Next()
		require.Greater(t, next, prev)
		prev = next
	}
}
