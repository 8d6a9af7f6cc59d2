package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/davidkuria/brewpos-api/internal/application/service"
	"github.com/davidkuria/brewpos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printer HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
	orderService   *service.OrderService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService, orderService *service.OrderService) *PrinterHandler {
	return &PrinterHandler{
		printerService: printerService,
		orderService:   orderService,
	}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.Status())
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.OK(c, "Test print failed (printer may be disabled)", gin.H{
			"warning": err.Error(),
		})
		return
	}
	response.OK(c, "Test page sent to printer", nil)
}

// PrintBill prints the session's stored bill. A print failure is not a
// billing failure: the bill stays available and the warning is
// reported.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	bill, err := h.orderService.GetBill(GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.printerService.PrintBill(bill); err != nil {
		response.OK(c, "Bill generated but printing failed", gin.H{
			"bill":    bill,
			"warning": err.Error(),
		})
		return
	}
	response.OK(c, "Bill printed successfully", gin.H{"bill": bill})
}
