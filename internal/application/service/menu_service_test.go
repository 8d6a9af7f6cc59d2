package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
)

type listMenuRepo struct {
	fakeMenuRepo
	list []entity.MenuItem
}

func (r *listMenuRepo) List(ctx context.Context) ([]entity.MenuItem, error) {
	return r.list, nil
}

func TestMenuService_CreateValidation(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{items: map[uint64]*entity.MenuItem{}})

	cases := []struct {
		name  string
		input MenuItemInput
		field string
	}{
		{"empty name", MenuItemInput{Name: "  ", Price: 2000, Category: "Tea"}, "name"},
		{"zero price", MenuItemInput{Name: "Lemon Tea", Price: 0, Category: "Tea"}, "price"},
		{"negative price", MenuItemInput{Name: "Lemon Tea", Price: -100, Category: "Tea"}, "price"},
		{"empty category", MenuItemInput{Name: "Lemon Tea", Price: 2000, Category: ""}, "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.input)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)

			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tc.field, appErr.Errors[0].Field)
		})
	}
}

func TestMenuService_CreateTrimsInput(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{items: map[uint64]*entity.MenuItem{}})

	item, err := svc.Create(context.Background(), &MenuItemInput{
		Name:     "  Lemon Tea  ",
		Price:    2000,
		Category: " Tea ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lemon Tea", item.Name)
	assert.Equal(t, "Tea", item.Category)
}

func TestMenuService_GetUnknownItem(t *testing.T) {
	svc := NewMenuService(&fakeMenuRepo{items: map[uint64]*entity.MenuItem{}})

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestMenuService_ListByCategoryUsesDisplayOrder(t *testing.T) {
	repo := &listMenuRepo{list: []entity.MenuItem{
		{ID: 1, Name: "Veg Momos", Price: 8000, Category: "Momos"},
		{ID: 2, Name: "Lemon Tea", Price: 2000, Category: "Tea"},
		{ID: 3, Name: "Black Coffee", Price: 4000, Category: "Coffee"},
		{ID: 4, Name: "Masala Tea", Price: 2500, Category: "Tea"},
	}}
	svc := NewMenuService(repo)

	groups, err := svc.ListByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Tea", groups[0].Category)
	assert.Equal(t, "Coffee", groups[1].Category)
	assert.Equal(t, "Momos", groups[2].Category)
	require.Len(t, groups[0].Items, 2)
}

func TestMenuService_ListByCategoryUnknownCategoriesSortLast(t *testing.T) {
	repo := &listMenuRepo{list: []entity.MenuItem{
		{ID: 1, Name: "Zucchini Bowl", Price: 9000, Category: "Zpecials"},
		{ID: 2, Name: "Avocado Toast", Price: 9500, Category: "Artisan"},
		{ID: 3, Name: "Lemon Tea", Price: 2000, Category: "Tea"},
	}}
	svc := NewMenuService(repo)

	groups, err := svc.ListByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Tea", groups[0].Category)
	// Unknown categories follow the known ones, alphabetically
	assert.Equal(t, "Artisan", groups[1].Category)
	assert.Equal(t, "Zpecials", groups[2].Category)
}
