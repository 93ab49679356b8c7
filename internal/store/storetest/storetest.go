// Package storetest holds the behaviour every store backend must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/store"
)

// Run exercises repos against the repository contract. repos must start
// empty.
func Run(t *testing.T, repos store.Repositories) {
	t.Run("GenreLifecycle", func(t *testing.T) { genreLifecycle(t, repos.Genres) })
	t.Run("QueryEvaluation", func(t *testing.T) { queryEvaluation(t, repos.Books) })
	t.Run("OptionalFields", func(t *testing.T) { optionalFields(t, repos.BookInstances) })
	t.Run("ReservedLookingIDs", func(t *testing.T) { reservedLookingIDs(t, repos.Genres) })
}

// reservedLookingIDs checks that ids resembling backend bookkeeping names
// are plain missing documents and leave the collection intact.
func reservedLookingIDs(t *testing.T, genres store.Repository[*domain.Genre]) {
	ctx := context.Background()

	before, err := genres.List(ctx, store.Query{})
	require.NoError(t, err)
	kept, err := genres.Create(ctx, &domain.Genre{Name: "Poetry"})
	require.NoError(t, err)

	for _, id := range []string{"all", "index", "doc", ""} {
		_, err := genres.UpdateByID(ctx, id, &domain.Genre{Name: "Horror"})
		assert.ErrorIs(t, err, store.ErrNotFound, "update %q", id)

		_, err = genres.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound, "get %q", id)
	}

	all, err := genres.List(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, all, len(before)+1)
	got, err := genres.GetByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poetry", got.Name)

	require.NoError(t, genres.DeleteByID(ctx, kept.ID))
}

func genreLifecycle(t *testing.T, genres store.Repository[*domain.Genre]) {
	ctx := context.Background()

	created, err := genres.Create(ctx, &domain.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := genres.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := genres.UpdateByID(ctx, created.ID, &domain.Genre{ID: "ignored", Name: "High Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, &domain.Genre{ID: created.ID, Name: "High Fantasy"}, updated)

	_, err = genres.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = genres.UpdateByID(ctx, "missing", &domain.Genre{Name: "Nope"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, genres.DeleteByID(ctx, created.ID))
	_, err = genres.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, genres.DeleteByID(ctx, created.ID), "deleting twice is a no-op")

	all, err := genres.List(ctx, store.Query{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func queryEvaluation(t *testing.T, books store.Repository[*domain.Book]) {
	ctx := context.Background()

	for _, b := range []*domain.Book{
		{Title: "Dune", Summary: "Spice", ISBN: "1", Genre: []string{"sf"}},
		{Title: "Anathem", Summary: "Maths", ISBN: "2", Genre: []string{"sf", "philosophy"}},
		{Title: "Gormenghast", Summary: "Castle", ISBN: "3", Genre: []string{"fantasy"}},
	} {
		_, err := books.Create(ctx, b)
		require.NoError(t, err)
	}

	sf, err := books.List(ctx, store.Where("genre", "sf").Select("title", "summary").OrderBy("title"))
	require.NoError(t, err)
	require.Len(t, sf, 2)
	assert.Equal(t, "Anathem", sf[0].Title)
	assert.Equal(t, "Dune", sf[1].Title)
	assert.Equal(t, "Maths", sf[0].Summary)
	assert.Empty(t, sf[0].ISBN, "projected away")
	assert.Nil(t, sf[0].Genre, "projected away")
	assert.NotEmpty(t, sf[0].ID, "id survives projection")

	desc, err := books.List(ctx, store.Query{}.OrderByDesc("title"))
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, "Gormenghast", desc[0].Title)
	assert.Equal(t, "Anathem", desc[2].Title)

	none, err := books.List(ctx, store.Where("genre", "poetry"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func optionalFields(t *testing.T, instances store.Repository[*domain.BookInstance]) {
	ctx := context.Background()
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	absent, err := instances.Create(ctx, &domain.BookInstance{Book: "b1", Imprint: "Ace", Status: domain.StatusAvailable})
	require.NoError(t, err)
	dated, err := instances.Create(ctx, &domain.BookInstance{Book: "b1", Imprint: "Tor", Status: domain.StatusLoaned, DueBack: &due})
	require.NoError(t, err)

	got, err := instances.GetByID(ctx, absent.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueBack)

	got, err = instances.GetByID(ctx, dated.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueBack)
	assert.True(t, due.Equal(*got.DueBack))

	loaned, err := instances.List(ctx, store.Where("status", "Loaned"))
	require.NoError(t, err)
	require.Len(t, loaned, 1)
	assert.Equal(t, dated.ID, loaned[0].ID)
}
