package repository

import (
	"context"
	"errors"

	"abstracta/internal/domain"
)

// ErrNotFound is returned when no document has the requested name
var ErrNotFound = errors.New("document not found")

// Repository defines the interface for document library access
type Repository interface {
	// SaveDocument stores doc under its name, replacing any document with
	// the same name. ID and timestamps are filled in on doc.
	SaveDocument(ctx context.Context, doc *domain.StoredDocument) error
	GetDocument(ctx context.Context, name string) (*domain.StoredDocument, error)
	// ListDocuments returns metadata only; Content is left empty
	ListDocuments(ctx context.Context) ([]domain.StoredDocument, error)
	DeleteDocument(ctx context.Context, name string) error

	// Close releases resources
	Close() error
}
