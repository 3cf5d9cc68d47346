package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"docgen/internal/logger"
	"docgen/internal/model"
	"docgen/internal/render"
)

const receiptDateLayout = "2006-01-02"

// ReceiptRequest is the input of a receipt generation.
type ReceiptRequest struct {
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	Items         []model.LineItem `json:"items"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	ReceiptDate   time.Time        `json:"receipt_date"`
	PDFRequested  bool             `json:"pdf_requested"`
}

// ReceiptGenerator renders the fixed receipt template. Nothing is persisted: the caller
// gets either the markup or a link where the PDF will be produced offline.
type ReceiptGenerator interface {
	Generate(ctx context.Context, req ReceiptRequest) ReceiptResult
}

type receiptGenerator struct {
	renderer render.Renderer
	opts     Options
}

// NewReceiptGenerator constructs a ReceiptGenerator.
func NewReceiptGenerator(renderer render.Renderer, opts Options) ReceiptGenerator {
	return &receiptGenerator{renderer: renderer, opts: opts.withDefaults()}
}

func (g *receiptGenerator) Generate(ctx context.Context, req ReceiptRequest) (res ReceiptResult) {
	receiptID := g.opts.NewID()

	ctx, span := tracer.Start(ctx, "ReceiptGenerator.Generate")
	span.SetAttributes(
		attribute.String("receipt.id", receiptID),
		attribute.Bool("receipt.pdf_requested", req.PDFRequested),
	)
	log := logger.FromContext(ctx).With(
		zap.String("document_kind", "receipt"),
		zap.String("receipt_id", receiptID),
	)

	defer func() {
		if r := recover(); r != nil {
			f := panicFailure(r)
			res = ReceiptResult{ReceiptID: receiptID, Message: f.Error(), Failure: f}
		}
		if res.Failure != nil {
			span.RecordError(res.Failure)
			span.SetStatus(codes.Error, string(res.Failure.Kind))
			log.Warn("document_generation_failed",
				zap.String("failure_kind", string(res.Failure.Kind)),
				zap.Error(res.Failure.Err),
			)
		}
		g.opts.Metrics.observe("receipt", res.Failure)
		span.End()
	}()

	rendered, err := g.renderer.RenderFile(render.ReceiptTemplate, map[string]any{
		"receipt_id":     receiptID,
		"customer_name":  req.CustomerName,
		"customer_email": req.CustomerEmail,
		"items":          lineItemsContext(req.Items),
		"total_amount":   req.TotalAmount,
		"receipt_date":   req.ReceiptDate.Format(receiptDateLayout),
	})
	if err != nil {
		f := fail(FailureRender, err)
		return ReceiptResult{ReceiptID: receiptID, Message: f.Error(), Failure: f}
	}

	log.Info("document_generated", zap.Bool("pdf_requested", req.PDFRequested))
	if req.PDFRequested {
		return ReceiptResult{ReceiptID: receiptID, ReceiptLink: g.opts.receiptPDFURL(receiptID)}
	}
	return ReceiptResult{ReceiptID: receiptID, ReceiptHTML: rendered}
}
