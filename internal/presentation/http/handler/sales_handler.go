package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/response"
)

// SalesHandler handles sales report HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// DailySummary returns the sales summary for one calendar day
func (h *SalesHandler) DailySummary(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		day = parsed
	}

	summary, err := h.salesService.DailySummary(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily summary retrieved", gin.H{"summary": summary})
}

// PreviousDaySummary returns yesterday's summary, or null when there
// were no sales. An empty previous day is a state, not an error.
func (h *SalesHandler) PreviousDaySummary(c *gin.Context) {
	summary, err := h.salesService.PreviousDaySummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Previous day summary retrieved", gin.H{"summary": summary})
}

// ItemWiseSales returns per-item quantity and revenue
func (h *SalesHandler) ItemWiseSales(c *gin.Context) {
	results, err := h.salesService.ItemWiseSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item-wise sales retrieved", gin.H{"items": results})
}

// DateWiseSales returns per-date bill counts and revenue
func (h *SalesHandler) DateWiseSales(c *gin.Context) {
	ascending := c.DefaultQuery("sort", "desc") == "asc"

	results, err := h.salesService.DateWiseSales(c.Request.Context(), ascending)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Date-wise sales retrieved", gin.H{"dates": results})
}

// MonthlySales returns per-month revenue and order counts
func (h *SalesHandler) MonthlySales(c *gin.Context) {
	results, err := h.salesService.MonthlySales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Monthly sales retrieved", gin.H{"months": results})
}
