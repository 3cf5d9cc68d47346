package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"docgen/internal/logger"
	"docgen/internal/model"
	"docgen/internal/repository"
)

// InvoiceRequest is the input of an invoice generation.
type InvoiceRequest struct {
	CustomerName    string              `json:"customer_name"`
	CustomerAddress string              `json:"customer_address"`
	InvoiceNumber   string              `json:"invoice_number"`
	DateIssued      string              `json:"date_issued"`
	DueDate         string              `json:"due_date"`
	Items           []model.InvoiceItem `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	TaxRate         decimal.Decimal     `json:"tax_rate"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	TemplateID      string              `json:"template_id"`
}

// InvoiceGenerator pairs a stored template body with the invoice data in a persisted INVOICE document.
type InvoiceGenerator interface {
	// Generate never returns an error; failures are described by the result.
	Generate(ctx context.Context, req InvoiceRequest) InvoiceResult
}

type invoiceGenerator struct {
	templates repository.TemplateRepository
	documents repository.DocumentRepository
	opts      Options
}

// NewInvoiceGenerator constructs an InvoiceGenerator.
func NewInvoiceGenerator(templates repository.TemplateRepository, documents repository.DocumentRepository, opts Options) InvoiceGenerator {
	return &invoiceGenerator{
		templates: templates,
		documents: documents,
		opts:      opts.withDefaults(),
	}
}

func (g *invoiceGenerator) Generate(ctx context.Context, req InvoiceRequest) (res InvoiceResult) {
	ctx, span := tracer.Start(ctx, "InvoiceGenerator.Generate")
	span.SetAttributes(
		attribute.String("invoice.number", req.InvoiceNumber),
		attribute.String("invoice.template_id", req.TemplateID),
	)
	log := logger.FromContext(ctx).With(
		zap.String("document_kind", "invoice"),
		zap.String("invoice_number", req.InvoiceNumber),
	)

	defer func() {
		if r := recover(); r != nil {
			res = invoiceFailure(panicFailure(r))
		}
		if res.Failure != nil {
			span.RecordError(res.Failure)
			span.SetStatus(codes.Error, string(res.Failure.Kind))
			log.Warn("document_generation_failed",
				zap.String("failure_kind", string(res.Failure.Kind)),
				zap.Error(res.Failure.Err),
			)
		}
		g.opts.Metrics.observe("invoice", res.Failure)
		span.End()
	}()

	tmpl, err := g.templates.FindByID(ctx, req.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invoiceFailure(fail(FailureNotFound, ErrTemplateNotFound))
		}
		return invoiceFailure(fail(FailurePersistence, err))
	}

	// Stored bodies are pre-authored markup and are kept byte-for-byte; the
	// request data travels next to them for the downstream renderer.
	content, err := json.Marshal(map[string]any{
		"renderedDocument": tmpl.HTML,
		"data":             invoiceData(req),
	})
	if err != nil {
		return invoiceFailure(fail(FailureInternal, err))
	}

	doc, err := g.documents.Create(ctx, &model.Document{
		Title:   "Invoice " + req.InvoiceNumber,
		Content: content,
		Type:    model.DocumentTypeInvoice,
		OwnerID: g.opts.OwnerID,
	})
	if err != nil {
		return invoiceFailure(fail(FailurePersistence, err))
	}

	if g.opts.Archiver != nil {
		g.opts.Archiver.Archive(ctx, doc, tmpl.HTML)
	}

	log.Info("document_generated", zap.String("document_id", doc.ID))
	return InvoiceResult{
		Success:     true,
		Message:     invoiceSuccessMessage,
		DocumentURL: g.opts.documentURL(doc.ID),
	}
}

// invoiceData is the snapshot of the request stored with the document.
func invoiceData(req InvoiceRequest) map[string]any {
	items := make([]map[string]any, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, map[string]any{
			"description": it.Description,
			"quantity":    it.Quantity,
			"unit_price":  it.UnitPrice,
			"total_price": it.TotalPrice,
		})
	}
	return map[string]any{
		"customer_name":    req.CustomerName,
		"customer_address": req.CustomerAddress,
		"invoice_number":   req.InvoiceNumber,
		"date_issued":      req.DateIssued,
		"due_date":         req.DueDate,
		"items":            items,
		"subtotal":         req.Subtotal,
		"tax_rate":         req.TaxRate,
		"total_amount":     req.TotalAmount,
	}
}
