package repository

import (
	"context"

	"docgen/internal/model"
)

// TemplateRepository provides read access to stored invoice templates.
type TemplateRepository interface {
	// FindByID returns the template with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Template, error)
}
