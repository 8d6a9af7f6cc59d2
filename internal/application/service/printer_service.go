package service

import (
	"fmt"
	"time"

	"github.com/davidkuria/brewpos-api/internal/config"
	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/pkg/apperror"
	"github.com/davidkuria/brewpos-api/pkg/printer"
)

// PrinterService renders bills as ESC/POS documents and sends them to
// the configured thermal printer.
type PrinterService struct {
	printer printer.Printer
	cfg     *config.PrinterConfig
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, cfg *config.PrinterConfig) *PrinterService {
	return &PrinterService{printer: p, cfg: cfg}
}

// Status reports printer type and connectivity.
func (s *PrinterService) Status() map[string]interface{} {
	return map[string]interface{}{
		"type":      s.cfg.Type,
		"connected": s.printer.IsConnected(),
	}
}

// PrintBill renders and prints a receipt for the bill.
func (s *PrinterService) PrintBill(bill *entity.Bill) error {
	if bill == nil || !bill.Valid() {
		return apperror.ErrNoBill
	}
	data := s.renderBill(bill)
	if err := s.printer.Print(data); err != nil {
		return apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}
	return nil
}

// TestPrint prints a short alignment test page.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.cfg.CharWidth)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.cfg.StoreName).
		SetBold(false).
		Text("Printer test").
		Separator('-').
		SetAlign(printer.AlignLeft).
		KeyValue("Left", "Right").
		FeedLines(3).
		Cut()
	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}
	return nil
}

func (s *PrinterService) renderBill(bill *entity.Bill) []byte {
	doc := printer.NewDocument(s.cfg.CharWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontTall).
		Text(s.cfg.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if s.cfg.Address2 != "" {
		doc.Text(s.cfg.Address2)
	}
	if s.cfg.Phone != "" {
		doc.Text("Ph: " + s.cfg.Phone)
	}

	doc.Separator('-').
		SetAlign(printer.AlignLeft).
		TextF("Bill No: %d", bill.ID).
		Text("Date: " + time.Unix(0, bill.Timestamp).Format("02 Jan 2006 15:04")).
		Separator('-')

	for _, item := range bill.Items {
		doc.ItemLine(int(item.Quantity), item.Name, FormatMoney(item.Price*item.Quantity))
	}

	doc.Separator('-').
		KeyValue("Subtotal", FormatMoney(bill.SubTotal))
	if bill.Discount > 0 {
		doc.KeyValue("Discount", "-"+FormatMoney(bill.Discount))
	}
	if bill.Tax > 0 {
		doc.KeyValue("Tax", FormatMoney(bill.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL", FormatMoney(bill.Total)).
		SetBold(false).
		Separator('-').
		SetAlign(printer.AlignCenter).
		Text("Thank you, visit again!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// FormatMoney renders minor currency units as a decimal string, e.g.
// 10500 -> "105.00". Display only; arithmetic stays in integers.
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
