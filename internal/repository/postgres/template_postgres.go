package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docgen/internal/model"
	"docgen/internal/repository"
)

// TemplatePostgres reads invoice templates from the templates table.
type TemplatePostgres struct {
	db *sql.DB
}

// NewTemplatePostgres creates a new TemplatePostgres repository.
func NewTemplatePostgres(db *sql.DB) *TemplatePostgres {
	return &TemplatePostgres{db: db}
}

var _ repository.TemplateRepository = (*TemplatePostgres)(nil)

// FindByID fetches a single template by its ID. A missing row yields repository.ErrNotFound.
func (r *TemplatePostgres) FindByID(ctx context.Context, id string) (*model.Template, error) {
	const q = `
		SELECT id, name, html, created_at
		FROM templates
		WHERE id = $1
	`
	var t model.Template
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&t.ID,
		&t.Name,
		&t.HTML,
		&t.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
