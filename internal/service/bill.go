package service

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"docgen/internal/logger"
	"docgen/internal/model"
	"docgen/internal/render"
	"docgen/internal/repository"
)

// BillRequest is the input of a bill generation.
type BillRequest struct {
	ClientName    string           `json:"client_name"`
	ClientAddress string           `json:"client_address"`
	BillingDate   string           `json:"billing_date"`
	DueDate       string           `json:"due_date"`
	BillItems     []model.LineItem `json:"bill_items"`
}

// BillGenerator renders the fixed bill template into a persisted BILL document.
type BillGenerator interface {
	Generate(ctx context.Context, req BillRequest) BillResult
}

type billGenerator struct {
	documents repository.DocumentRepository
	renderer  render.Renderer
	opts      Options
}

// NewBillGenerator constructs a BillGenerator.
func NewBillGenerator(documents repository.DocumentRepository, renderer render.Renderer, opts Options) BillGenerator {
	return &billGenerator{
		documents: documents,
		renderer:  renderer,
		opts:      opts.withDefaults(),
	}
}

func (g *billGenerator) Generate(ctx context.Context, req BillRequest) (res BillResult) {
	ctx, span := tracer.Start(ctx, "BillGenerator.Generate")
	log := logger.FromContext(ctx).With(zap.String("document_kind", "bill"))

	defer func() {
		if r := recover(); r != nil {
			res = billFailure(panicFailure(r))
		}
		if res.Failure != nil {
			span.RecordError(res.Failure)
			span.SetStatus(codes.Error, string(res.Failure.Kind))
			log.Warn("document_generation_failed",
				zap.String("failure_kind", string(res.Failure.Kind)),
				zap.Error(res.Failure.Err),
			)
		}
		g.opts.Metrics.observe("bill", res.Failure)
		span.End()
	}()

	rendered, err := g.renderer.RenderFile(render.BillTemplate, map[string]any{
		"client_name":    req.ClientName,
		"client_address": req.ClientAddress,
		"billing_date":   req.BillingDate,
		"due_date":       req.DueDate,
		"bill_items":     lineItemsContext(req.BillItems),
	})
	if err != nil {
		return billFailure(fail(FailureRender, err))
	}

	content, err := json.Marshal(map[string]string{"renderedDocument": rendered})
	if err != nil {
		return billFailure(fail(FailureInternal, err))
	}

	doc, err := g.documents.Create(ctx, &model.Document{
		Title:   "Bill for " + req.ClientName,
		Content: content,
		Type:    model.DocumentTypeBill,
		OwnerID: g.opts.OwnerID,
	})
	if err != nil {
		return billFailure(fail(FailurePersistence, err))
	}

	if g.opts.Archiver != nil {
		g.opts.Archiver.Archive(ctx, doc, rendered)
	}

	log.Info("document_generated", zap.String("document_id", doc.ID))
	return BillResult{
		Status:           BillStatusGenerated,
		DocumentURL:      g.opts.documentURL(doc.ID),
		PDFConversionURL: g.opts.conversionURL(doc.ID),
	}
}

func lineItemsContext(items []model.LineItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		out = append(out, map[string]any{
			"description": it.Description,
			"quantity":    it.Quantity,
			"unit_price":  it.UnitPrice,
			"total":       it.Total,
		})
	}
	return out
}
