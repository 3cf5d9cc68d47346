package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"docgen/internal/model"
	"docgen/internal/service"
)

// receiptPayload is the wire form of service.ReceiptRequest; receipt_date arrives as text.
type receiptPayload struct {
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	Items         []model.LineItem `json:"items"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	ReceiptDate   string           `json:"receipt_date"`
	PDFRequested  bool             `json:"pdf_requested"`
}

var receiptDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseReceiptDate(s string) (time.Time, bool) {
	for _, layout := range receiptDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GenerateInvoice stores a new invoice document built from a stored template.
//
// @Summary Generate an invoice
// @Tags generate
// @Accept json
// @Produce json
// @Param request body service.InvoiceRequest true "Invoice data"
// @Success 201 {object} service.InvoiceResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} service.InvoiceResult
// @Failure 502 {object} service.InvoiceResult
// @Router /generate/invoice [post]
func GenerateInvoice(gen service.InvoiceGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.InvoiceRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res := gen.Generate(c.UserContext(), req)
		return c.Status(failureStatus(res.Failure, fiber.StatusCreated)).JSON(res)
	}
}

// GenerateBill renders the bill template into a new bill document.
//
// @Summary Generate a bill
// @Tags generate
// @Accept json
// @Produce json
// @Param request body service.BillRequest true "Bill data"
// @Success 201 {object} service.BillResult
// @Failure 400 {object} errorPayload
// @Failure 422 {object} service.BillResult
// @Failure 502 {object} service.BillResult
// @Router /generate/bill [post]
func GenerateBill(gen service.BillGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.BillRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res := gen.Generate(c.UserContext(), req)
		return c.Status(failureStatus(res.Failure, fiber.StatusCreated)).JSON(res)
	}
}

// GenerateReceipt renders a receipt and returns its markup or a PDF link.
//
// @Summary Generate a receipt
// @Tags generate
// @Accept json
// @Produce json
// @Param request body receiptPayload true "Receipt data"
// @Success 200 {object} service.ReceiptResult
// @Failure 400 {object} errorPayload
// @Failure 422 {object} service.ReceiptResult
// @Router /generate/receipt [post]
func GenerateReceipt(gen service.ReceiptGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p receiptPayload
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		date, ok := parseReceiptDate(p.ReceiptDate)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_RECEIPT_DATE", "receipt_date must be RFC3339 or YYYY-MM-DD")
		}

		res := gen.Generate(c.UserContext(), service.ReceiptRequest{
			CustomerName:  p.CustomerName,
			CustomerEmail: p.CustomerEmail,
			Items:         p.Items,
			TotalAmount:   p.TotalAmount,
			ReceiptDate:   date,
			PDFRequested:  p.PDFRequested,
		})
		return c.Status(failureStatus(res.Failure, fiber.StatusOK)).JSON(res)
	}
}
