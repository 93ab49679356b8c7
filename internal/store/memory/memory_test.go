package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/store/storetest"
)

func TestContract(t *testing.T) {
	storetest.Run(t, New())
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(store.CollectionGenres, store.GenreCodec())

	created, err := c.Create(ctx, &domain.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	created.Name = "mutated"

	got, err := c.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)

	all, err := c.List(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	all[0].Name = "mutated"
	got, err = c.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(store.CollectionGenres, store.GenreCodec())

	for _, n := range []string{"Poetry", "Fantasy", "Horror"} {
		_, err := c.Create(ctx, &domain.Genre{Name: n})
		require.NoError(t, err)
	}

	all, err := c.List(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Poetry", all[0].Name)
	assert.Equal(t, "Horror", all[2].Name)
}
