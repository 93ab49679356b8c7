package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/store/memory"
)

const seedYAML = `
genres: [Fantasy, Science Fiction]
books:
  - title: The Name of the Wind
    author: Patrick Rothfuss
    summary: ${SEED_SUMMARY}
    isbn: "9781473211896"
    genres: [fantasy]
  - title: Dune
    author: Frank Herbert
    isbn: "9780441013593"
    genres: [Science Fiction]
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create seed file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Setenv("SEED_SUMMARY", "A story about Kvothe")

	f, err := NewLoader(writeSeed(t, seedYAML)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Genres) != 2 || len(f.Books) != 2 {
		t.Fatalf("Load() = %d genres, %d books; want 2, 2", len(f.Genres), len(f.Books))
	}
	if f.Books[0].Summary != "A story about Kvothe" {
		t.Errorf("summary = %q, want expanded env value", f.Books[0].Summary)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/seed.yaml").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	_, err := repos.Genres.Create(ctx, &domain.Genre{Name: "FANTASY"})
	require.NoError(t, err)

	f, err := NewLoader(writeSeed(t, seedYAML)).Load()
	require.NoError(t, err)

	im := NewImporter(repos, logger.NewNop())
	rep, err := im.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Report{GenresCreated: 1, GenresReused: 1, BooksCreated: 2}, rep)

	rep, err = im.Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Report{GenresReused: 2, BooksSkipped: 2}, rep)

	genres, err := repos.Genres.List(ctx, store.Query{})
	require.NoError(t, err)
	assert.Len(t, genres, 2)

	fantasy, err := repos.Books.List(ctx, store.Where("isbn", "9781473211896"))
	require.NoError(t, err)
	require.Len(t, fantasy, 1)
	assert.Equal(t, []string{genres[0].ID}, fantasy[0].Genre)
}

func TestImportRejectsUnknownGenre(t *testing.T) {
	f := &File{Books: []BookEntry{{Title: "Orphan", ISBN: "1", Genres: []string{"Nope"}}}}

	_, err := NewImporter(memory.New(), logger.NewNop()).Import(context.Background(), f)
	assert.ErrorContains(t, err, "Nope")
}

func TestImportRejectsShortGenre(t *testing.T) {
	f := &File{Genres: []string{"ab"}}

	_, err := NewImporter(memory.New(), logger.NewNop()).Import(context.Background(), f)
	assert.ErrorContains(t, err, "at least 3 characters")
}
