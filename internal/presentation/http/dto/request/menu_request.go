package request

// MenuItemRequest is the create/update body for a menu item. Price is
// in integer minor currency units.
type MenuItemRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	Category string `json:"category" binding:"required,min=1,max=255"`
}
