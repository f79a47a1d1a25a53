package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"abstracta/internal/domain"
	"abstracta/internal/repository"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

var _ repository.Repository = (*Repository)(nil)

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps :memory: databases shared across calls
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		format TEXT NOT NULL,
		content BLOB NOT NULL,
		node_count INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveDocument inserts doc or replaces the document with the same name. An
// existing document keeps its id and creation time.
func (r *Repository) SaveDocument(ctx context.Context, doc *domain.StoredDocument) error {
	if doc.Name == "" {
		return errors.New("document name is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	var (
		id      string
		created string
	)
	err = tx.QueryRowContext(ctx, `SELECT id, created_at FROM documents WHERE name = ?`, doc.Name).Scan(&id, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.New().String()
		created = formatTime(now)
	case err != nil:
		return fmt.Errorf("failed to look up document: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (id, name, format, content, node_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			format = excluded.format,
			content = excluded.content,
			node_count = excluded.node_count,
			updated_at = excluded.updated_at
	`, id, doc.Name, doc.Format, doc.Content, doc.NodeCount, created, formatTime(now))
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit document: %w", err)
	}

	doc.ID = id
	doc.CreatedAt = parseTime(created)
	doc.UpdatedAt = parseTime(formatTime(now))
	return nil
}

// GetDocument loads a document with its content
func (r *Repository) GetDocument(ctx context.Context, name string) (*domain.StoredDocument, error) {
	var (
		doc              domain.StoredDocument
		created, updated string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, format, content, node_count, created_at, updated_at
		FROM documents WHERE name = ?
	`, name).Scan(&doc.ID, &doc.Name, &doc.Format, &doc.Content, &doc.NodeCount, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	doc.CreatedAt = parseTime(created)
	doc.UpdatedAt = parseTime(updated)
	return &doc, nil
}

// ListDocuments returns document metadata ordered by name
func (r *Repository) ListDocuments(ctx context.Context) ([]domain.StoredDocument, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, format, node_count, created_at, updated_at
		FROM documents ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.StoredDocument
	for rows.Next() {
		var (
			doc              domain.StoredDocument
			created, updated string
		)
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Format, &doc.NodeCount, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.CreatedAt = parseTime(created)
		doc.UpdatedAt = parseTime(updated)
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument removes a document by name
func (r *Repository) DeleteDocument(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, name)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Timestamps are stored as RFC 3339 text so ordering by column matches time order
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
