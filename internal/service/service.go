package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"abstracta/internal/codec"
	"abstracta/internal/document"
	"abstracta/internal/domain"
	"abstracta/internal/model"
	"abstracta/internal/repository"
)

// ErrNoLibrary is returned by library operations on a service without a repository
var ErrNoLibrary = errors.New("no document library configured")

// LibraryFormat is the format snapshots are stored in
const LibraryFormat = "yaml"

// DocumentService provides document import, export and library operations
type DocumentService struct {
	repo     repository.Repository
	eventBus *EventBus
	opts     []model.Option
}

// NewDocumentService creates a new document service. repo may be nil when
// only file operations are needed. opts are applied to every model the
// service builds.
func NewDocumentService(repo repository.Repository, eventBus *EventBus, opts ...model.Option) *DocumentService {
	return &DocumentService{
		repo:     repo,
		eventBus: eventBus,
		opts:     opts,
	}
}

// Import parses a document in the given format and builds a model from it
func (s *DocumentService) Import(r io.Reader, format string) (*model.Model, error) {
	c, err := codec.ForFormat(format)
	if err != nil {
		return nil, err
	}
	outline, err := c.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	m, err := document.Restore(outline, s.opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Export writes m to w in the given format
func (s *DocumentService) Export(m *model.Model, w io.Writer, format string) error {
	c, err := codec.ForFormat(format)
	if err != nil {
		return err
	}
	outline, err := document.Capture(m)
	if err != nil {
		return err
	}
	return c.Export(outline, w)
}

// ImportFile reads a document file, picking the format from its extension
func (s *DocumentService) ImportFile(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	m, err := s.Import(f, codec.DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Imported %s: %d nodes, %d connections", path, m.Len()-1, len(m.Connections()))
	s.eventBus.Publish(Event{
		Type:    EventDocumentImported,
		Payload: map[string]string{"path": path, "nodes": strconv.Itoa(m.Len() - 1)},
	})
	return m, nil
}

// ExportFile writes m to path, picking the format from its extension. The
// file is only written once the whole document has been encoded.
func (s *DocumentService) ExportFile(m *model.Model, path string) error {
	var buf bytes.Buffer
	if err := s.Export(m, &buf, codec.DetectFormat(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	log.Printf("Exported %d nodes to %s", m.Len()-1, path)
	s.eventBus.Publish(Event{
		Type:    EventDocumentExported,
		Payload: map[string]string{"path": path},
	})
	return nil
}

// Save stores m in the library under name, replacing any earlier snapshot
func (s *DocumentService) Save(ctx context.Context, name string, m *model.Model) (*domain.StoredDocument, error) {
	if s.repo == nil {
		return nil, ErrNoLibrary
	}
	if name == "" {
		return nil, errors.New("document name is required")
	}

	outline, err := document.Capture(m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := codec.NewYAMLCodec().Export(outline, &buf); err != nil {
		return nil, err
	}

	doc := &domain.StoredDocument{
		Name:      name,
		Format:    LibraryFormat,
		Content:   buf.Bytes(),
		NodeCount: outline.Count(),
	}
	if err := s.repo.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}

	log.Printf("Saved document %s (%d nodes)", name, doc.NodeCount)
	s.eventBus.Publish(Event{
		Type:    EventDocumentSaved,
		Payload: map[string]string{"name": name, "id": doc.ID},
	})
	return doc, nil
}

// Load rebuilds the model stored under name
func (s *DocumentService) Load(ctx context.Context, name string) (*model.Model, error) {
	if s.repo == nil {
		return nil, ErrNoLibrary
	}
	doc, err := s.repo.GetDocument(ctx, name)
	if err != nil {
		return nil, err
	}

	m, err := s.Import(bytes.NewReader(doc.Content), doc.Format)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}

	s.eventBus.Publish(Event{
		Type:    EventDocumentLoaded,
		Payload: map[string]string{"name": name, "id": doc.ID},
	})
	return m, nil
}

// List returns the library's documents without content
func (s *DocumentService) List(ctx context.Context) ([]domain.StoredDocument, error) {
	if s.repo == nil {
		return nil, ErrNoLibrary
	}
	return s.repo.ListDocuments(ctx)
}

// Delete removes a document from the library
func (s *DocumentService) Delete(ctx context.Context, name string) error {
	if s.repo == nil {
		return ErrNoLibrary
	}
	if err := s.repo.DeleteDocument(ctx, name); err != nil {
		return err
	}

	log.Printf("Deleted document %s", name)
	s.eventBus.Publish(Event{
		Type:    EventDocumentDeleted,
		Payload: map[string]string{"name": name},
	})
	return nil
}
