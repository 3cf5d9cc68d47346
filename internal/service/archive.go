package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"docgen/internal/logger"
	"docgen/internal/model"
	"docgen/internal/storage"
)

// Archiver mirrors rendered markup of persisted documents for downstream consumers
// such as the PDF converter. Archiving is best effort and never fails a generation.
type Archiver interface {
	Archive(ctx context.Context, doc *model.Document, markup string)
}

// StorageArchiver writes markup to object storage under documents/{id}.html.
type StorageArchiver struct {
	store storage.Storage
}

// NewStorageArchiver creates an Archiver on top of store.
func NewStorageArchiver(store storage.Storage) *StorageArchiver {
	return &StorageArchiver{store: store}
}

func archiveKey(id string) string {
	return "documents/" + id + ".html"
}

func (a *StorageArchiver) Archive(ctx context.Context, doc *model.Document, markup string) {
	key := archiveKey(doc.ID)
	_, err := a.store.Put(ctx, key, strings.NewReader(markup), storage.PutObjectOptions{
		Size:        int64(len(markup)),
		ContentType: "text/html; charset=utf-8",
		Metadata: map[string]string{
			"document-type": string(doc.Type),
			"owner-id":      doc.OwnerID,
		},
	})
	if err != nil {
		logger.FromContext(ctx).Warn("document_archive_failed",
			zap.String("document_id", doc.ID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
