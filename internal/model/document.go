package model

import (
	"encoding/json"
	"time"
)

// DocumentType tags what kind of business document a record holds.
type DocumentType string

const (
	DocumentTypeBill    DocumentType = "BILL"
	DocumentTypeInvoice DocumentType = "INVOICE"
	DocumentTypeReceipt DocumentType = "RECEIPT"
)

// Document is a generated, persisted business document.
// This is a pure domain model with no database-specific dependencies or tags.
// The Document Store assigns ID and CreatedAt on creation.
type Document struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	Type      DocumentType    `json:"type"`
	OwnerID   string          `json:"owner_id"`
	CreatedAt time.Time       `json:"created_at"`
}
