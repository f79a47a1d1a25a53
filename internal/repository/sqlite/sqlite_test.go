package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"abstracta/internal/domain"
	"abstracta/internal/repository"
)

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func newDoc(name, content string) *domain.StoredDocument {
	return &domain.StoredDocument{
		Name:      name,
		Format:    "yaml",
		Content:   []byte(content),
		NodeCount: 1,
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := newDoc("car", "- Name: Car\n  Rect: [0, 0, 100, 50]\n")
	assertNoError(t, repo.SaveDocument(ctx, doc))

	if doc.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := repo.GetDocument(ctx, "car")
	assertNoError(t, err)
	if got.ID != doc.ID {
		t.Errorf("expected id %s, got %s", doc.ID, got.ID)
	}
	if string(got.Content) != string(doc.Content) {
		t.Errorf("expected content %q, got %q", doc.Content, got.Content)
	}
	if got.Format != "yaml" || got.NodeCount != 1 {
		t.Errorf("unexpected metadata %+v", got)
	}
}

func TestSaveReplacesByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := newDoc("car", "old")
	assertNoError(t, repo.SaveDocument(ctx, first))

	second := newDoc("car", "new")
	second.NodeCount = 7
	assertNoError(t, repo.SaveDocument(ctx, second))

	if second.ID != first.ID {
		t.Errorf("expected id to be kept, got %s then %s", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("expected creation time kept, got %v then %v", first.CreatedAt, second.CreatedAt)
	}

	got, err := repo.GetDocument(ctx, "car")
	assertNoError(t, err)
	if string(got.Content) != "new" || got.NodeCount != 7 {
		t.Errorf("expected replaced document, got %+v", got)
	}

	docs, err := repo.ListDocuments(ctx)
	assertNoError(t, err)
	if len(docs) != 1 {
		t.Errorf("expected 1 document, got %d", len(docs))
	}
}

func TestSaveRequiresName(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.SaveDocument(context.Background(), newDoc("", "x")); err == nil {
		t.Error("expected error for unnamed document")
	}
}

func TestListDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs, err := repo.ListDocuments(ctx)
	assertNoError(t, err)
	if len(docs) != 0 {
		t.Fatalf("expected empty library, got %d", len(docs))
	}

	for _, name := range []string{"wheels", "car", "engine"} {
		assertNoError(t, repo.SaveDocument(ctx, newDoc(name, name)))
	}

	docs, err = repo.ListDocuments(ctx)
	assertNoError(t, err)
	want := []string{"car", "engine", "wheels"}
	if len(docs) != len(want) {
		t.Fatalf("expected %d documents, got %d", len(want), len(docs))
	}
	for i, d := range docs {
		if d.Name != want[i] {
			t.Errorf("docs[%d] = %s, want %s", i, d.Name, want[i])
		}
		if d.Content != nil {
			t.Errorf("expected list without content, got %q", d.Content)
		}
	}
}

func TestDeleteDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.SaveDocument(ctx, newDoc("car", "x")))
	assertNoError(t, repo.DeleteDocument(ctx, "car"))

	if _, err := repo.GetDocument(ctx, "car"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.DeleteDocument(ctx, "car"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestReopenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.db")
	ctx := context.Background()

	repo, err := New(path)
	assertNoError(t, err)
	assertNoError(t, repo.SaveDocument(ctx, newDoc("car", "persisted")))
	assertNoError(t, repo.Close())

	repo, err = New(path)
	assertNoError(t, err)
	defer repo.Close()

	got, err := repo.GetDocument(ctx, "car")
	assertNoError(t, err)
	if string(got.Content) != "persisted" {
		t.Errorf("expected persisted content, got %q", got.Content)
	}
}
