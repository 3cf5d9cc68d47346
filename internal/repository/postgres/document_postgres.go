package postgres

import (
	"context"
	"database/sql"

	"docgen/internal/model"
	"docgen/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
// The id and created_at columns are filled by their database defaults.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (title, content, type, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, content, type, owner_id, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.Title,
		string(doc.Content),
		string(doc.Type),
		doc.OwnerID,
	)

	var (
		out     model.Document
		content []byte
		docType string
	)
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&content,
		&docType,
		&out.OwnerID,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	out.Content = append(out.Content[:0], content...)
	out.Type = model.DocumentType(docType)
	return &out, nil
}
