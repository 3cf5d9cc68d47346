package repository

import (
	"context"

	"docgen/internal/model"
)

// DocumentRepository defines data access for generated documents.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record. ID and CreatedAt are assigned by the store;
	// the returned document carries them.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
}
