package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/request"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func menuItemID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid menu item ID")
		return 0, false
	}
	return id, true
}

// List returns all menu items
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved successfully", gin.H{"items": items})
}

// ListByCategory returns the menu grouped by category
func (h *MenuHandler) ListByCategory(c *gin.Context) {
	groups, err := h.menuService.ListByCategory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved successfully", gin.H{"categories": groups})
}

// Get returns one menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	item, err := h.menuService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved successfully", gin.H{"item": item})
}

// Create adds a menu item. Admin only.
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), &service.MenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created successfully", gin.H{"item": item})
}

// Update edits a menu item. Admin only.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	var req request.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), id, &service.MenuItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated successfully", gin.H{"item": item})
}

// Delete removes a menu item. Admin only.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item deleted successfully", nil)
}

// ClearAll removes every menu item. Admin only.
func (h *MenuHandler) ClearAll(c *gin.Context) {
	if err := h.menuService.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu cleared successfully", nil)
}
