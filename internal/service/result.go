package service

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a generation call did not produce a document.
type FailureKind string

const (
	// FailureNotFound means a referenced template does not exist.
	FailureNotFound FailureKind = "not_found"
	// FailureRender means the template could not be parsed or executed.
	FailureRender FailureKind = "render"
	// FailurePersistence means a store lookup or write failed.
	FailurePersistence FailureKind = "persistence"
	// FailureInternal means an unexpected fault inside the generator.
	FailureInternal FailureKind = "internal"
)

// ErrTemplateNotFound is the failure reported for an unknown invoice template.
var ErrTemplateNotFound = errors.New("Template not found")

// Failure describes an unsuccessful generation. Its message is surfaced to callers verbatim.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string { return f.Err.Error() }

func (f *Failure) Unwrap() error { return f.Err }

func fail(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

func panicFailure(v any) *Failure {
	return fail(FailureInternal, fmt.Errorf("internal error: %v", v))
}

func outcome(f *Failure) string {
	if f == nil {
		return "success"
	}
	return string(f.Kind)
}

// InvoiceResult is returned by InvoiceGenerator.Generate.
type InvoiceResult struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	DocumentURL string   `json:"document_url,omitempty"`
	Failure     *Failure `json:"-"`
}

// BillResult is returned by BillGenerator.Generate. Status is "generated" or "failed".
type BillResult struct {
	Status           string   `json:"status"`
	DocumentURL      string   `json:"document_url,omitempty"`
	PDFConversionURL string   `json:"pdf_conversion_url,omitempty"`
	Message          string   `json:"message,omitempty"`
	Failure          *Failure `json:"-"`
}

// ReceiptResult is returned by ReceiptGenerator.Generate.
// On success exactly one of ReceiptLink and ReceiptHTML is set.
type ReceiptResult struct {
	ReceiptID   string   `json:"receipt_id"`
	ReceiptLink string   `json:"receipt_link,omitempty"`
	ReceiptHTML string   `json:"receipt_html,omitempty"`
	Message     string   `json:"message,omitempty"`
	Failure     *Failure `json:"-"`
}

const (
	BillStatusGenerated = "generated"
	BillStatusFailed    = "failed"

	invoiceSuccessMessage = "Invoice generated successfully"
)

func invoiceFailure(f *Failure) InvoiceResult {
	return InvoiceResult{Success: false, Message: f.Error(), Failure: f}
}

func billFailure(f *Failure) BillResult {
	return BillResult{Status: BillStatusFailed, Message: f.Error(), Failure: f}
}
