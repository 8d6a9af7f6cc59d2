package service

import (
	"context"
	"sort"
	"strings"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
)

// MenuService manages the cafe menu. Creation, edits and deletes are
// admin-gated at the route layer; reads are public.
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuItemInput is the create/update input for a menu item. Price is
// in minor currency units.
type MenuItemInput struct {
	Name     string
	Price    int64
	Category string
}

func validateMenuItemInput(input *MenuItemInput) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must be positive"})
	}
	if strings.TrimSpace(input.Category) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Category is required"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create adds a menu item and returns its assigned ID.
func (s *MenuService) Create(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:     strings.TrimSpace(input.Name),
		Price:    input.Price,
		Category: strings.TrimSpace(input.Category),
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get retrieves a menu item by ID
func (s *MenuService) Get(ctx context.Context, id uint64) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// Update edits a menu item in place. Open orders are unaffected: they
// carry their own name/price snapshots.
func (s *MenuService) Update(ctx context.Context, id uint64, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Price = input.Price
	item.Category = strings.TrimSpace(input.Category)
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item
func (s *MenuService) Delete(ctx context.Context, id uint64) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// List returns all menu items
func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// ListByCategory returns the menu grouped by category in the cafe's
// canonical category order; unknown categories sort last,
// alphabetically.
func (s *MenuService) ListByCategory(ctx context.Context) ([]entity.CategoryGroup, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]entity.CategoryGroup, 0)
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(groups)
			index[item.Category] = pos
			groups = append(groups, entity.CategoryGroup{Category: item.Category})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		ra, rb := entity.CategoryRank(groups[a].Category), entity.CategoryRank(groups[b].Category)
		if ra != rb {
			return ra < rb
		}
		return groups[a].Category < groups[b].Category
	})
	return groups, nil
}

// ClearAll removes every menu item. Admin operation.
func (s *MenuService) ClearAll(ctx context.Context) error {
	return s.menuRepo.DeleteAll(ctx)
}
