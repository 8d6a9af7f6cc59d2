package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/domain/entity"
)

type stubMenuRepo struct {
	items map[uint64]*entity.MenuItem
}

func (r *stubMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error { return nil }
func (r *stubMenuRepo) GetByID(ctx context.Context, id uint64) (*entity.MenuItem, error) {
	return r.items[id], nil
}
func (r *stubMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error { return nil }
func (r *stubMenuRepo) Delete(ctx context.Context, id uint64) error             { return nil }
func (r *stubMenuRepo) List(ctx context.Context) ([]entity.MenuItem, error)     { return nil, nil }
func (r *stubMenuRepo) DeleteAll(ctx context.Context) error                     { return nil }

func TestClearAllActive_DropsEverySession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	active := service.NewActiveOrderService(&stubMenuRepo{items: map[uint64]*entity.MenuItem{
		1: {ID: 1, Name: "Masala Chai", Price: 2500, Category: "Tea"},
	}}, 0)
	_, err := active.AddItem(ctx, "till-1", 1)
	require.NoError(t, err)
	_, err = active.AddItem(ctx, "till-2", 1)
	require.NoError(t, err)

	handler := NewOrderHandler(active, nil)
	router := gin.New()
	router.DELETE("/orders/active/all", handler.ClearAllActive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/orders/active/all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, active.Get("till-1").Lines)
	assert.Empty(t, active.Get("till-2").Lines)
}
