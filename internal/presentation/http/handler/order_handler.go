package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/request"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/response"
	"github.com/davidkuria/brewpos-api/pkg/pagination"
)

// OrderHandler handles active-order and finalized-order HTTP requests
type OrderHandler struct {
	activeOrders *service.ActiveOrderService
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(activeOrders *service.ActiveOrderService, orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		activeOrders: activeOrders,
		orderService: orderService,
	}
}

// activeOrderPayload renders the active order with its derived totals.
// Totals are recomputed on every response, never cached.
func activeOrderPayload(order *service.ActiveOrder) gin.H {
	totals := order.Totals()
	return gin.H{
		"lines":          order.Lines,
		"discount_type":  order.DiscountType,
		"discount_value": order.DiscountValue,
		"totals":         totals,
	}
}

// GetActive returns the session's current active order
func (h *OrderHandler) GetActive(c *gin.Context) {
	order := h.activeOrders.Get(GetSessionID(c))
	response.OK(c, "Active order retrieved", activeOrderPayload(order))
}

// AddItem adds one unit of a menu item to the active order
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.activeOrders.AddItem(c.Request.Context(), GetSessionID(c), req.MenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", activeOrderPayload(order))
}

// UpdateQuantity sets a line's quantity; zero or below removes it
func (h *OrderHandler) UpdateQuantity(c *gin.Context) {
	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order := h.activeOrders.UpdateQuantity(GetSessionID(c), req.MenuItemID, req.Quantity)
	response.OK(c, "Quantity updated", activeOrderPayload(order))
}

// RemoveItem removes a line from the active order
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	order := h.activeOrders.RemoveItem(GetSessionID(c), id)
	response.OK(c, "Item removed", activeOrderPayload(order))
}

// SetDiscount updates the active order's discount configuration
func (h *OrderHandler) SetDiscount(c *gin.Context) {
	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	discountType, ok := enum.ParseDiscountType(req.DiscountType)
	if !ok {
		response.BadRequest(c, "Unknown discount type")
		return
	}

	order := h.activeOrders.SetDiscount(GetSessionID(c), discountType, req.DiscountValue)
	response.OK(c, "Discount updated", activeOrderPayload(order))
}

// ClearActive resets the session's active order and drops any stored
// bill, the start of a fresh order.
func (h *OrderHandler) ClearActive(c *gin.Context) {
	sessionID := GetSessionID(c)
	h.activeOrders.Clear(sessionID)
	h.orderService.ClearBill(sessionID)
	response.OK(c, "Active order cleared", nil)
}

// ClearAllActive drops every session's in-progress order. Admin only.
func (h *OrderHandler) ClearAllActive(c *gin.Context) {
	h.activeOrders.ClearAll()
	response.OK(c, "All active orders cleared", nil)
}

// Finalize converts the active order into a finalized sale and returns
// the bill. The bill is also stored for the session's bill view.
func (h *OrderHandler) Finalize(c *gin.Context) {
	bill, err := h.orderService.Finalize(c.Request.Context(), GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order finalized", gin.H{"bill": bill})
}

// GetBill returns the session's stored bill
func (h *OrderHandler) GetBill(c *gin.Context) {
	bill, err := h.orderService.GetBill(GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved", gin.H{"bill": bill})
}

// ClearBill drops the session's stored bill
func (h *OrderHandler) ClearBill(c *gin.Context) {
	h.orderService.ClearBill(GetSessionID(c))
	response.OK(c, "Bill cleared", nil)
}

// List returns finalized orders with date filtering and pagination
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: pagination.DefaultPagination(),
		SortOrder:  c.DefaultQuery("sort", "desc"),
	}
	if err := c.ShouldBindQuery(params.Pagination); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Pagination.Validate()

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid start_date")
			return
		}
		params.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid end_date")
			return
		}
		// Inclusive end of day
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get returns one finalized order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", gin.H{"order": order})
}

// Delete removes a finalized order. Admin only.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted successfully", nil)
}
