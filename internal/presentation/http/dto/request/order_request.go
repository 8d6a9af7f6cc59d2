package request

// AddItemRequest adds one unit of a menu item to the active order
type AddItemRequest struct {
	MenuItemID uint64 `json:"menu_item_id" binding:"required"`
}

// UpdateQuantityRequest sets an active order line's quantity. Zero or
// negative removes the line, so no lower bound is enforced here.
type UpdateQuantityRequest struct {
	MenuItemID uint64 `json:"menu_item_id" binding:"required"`
	Quantity   int64  `json:"quantity"`
}

// SetDiscountRequest updates the active order's discount configuration
type SetDiscountRequest struct {
	DiscountType  string `json:"discount_type" binding:"required,oneof=flat percentage"`
	DiscountValue int64  `json:"discount_value"`
}
