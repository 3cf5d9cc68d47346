package service

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("docgen/internal/service")

// Options carries the configuration shared by the generators.
type Options struct {
	// BaseURL prefixes every link handed back to callers.
	BaseURL string
	// OwnerID is stamped on persisted documents.
	OwnerID string
	// NewID mints receipt identifiers. Defaults to random UUIDs.
	NewID func() string
	// Archiver, when set, receives a copy of every persisted document's markup.
	Archiver Archiver
	// Metrics, when set, counts generation outcomes.
	Metrics *Metrics
}

func (o Options) withDefaults() Options {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

func (o Options) documentURL(id string) string {
	return o.BaseURL + "/documents/" + url.PathEscape(id)
}

func (o Options) conversionURL(id string) string {
	return o.documentURL(id) + "/convert"
}

func (o Options) receiptPDFURL(receiptID string) string {
	return o.BaseURL + "/receipts/" + url.PathEscape(receiptID) + ".pdf"
}
