package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/store/storetest"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestContract(t *testing.T) {
	storetest.Run(t, openTemp(t).Repositories())
}

func TestDataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	g, err := db.Repositories().Genres.Create(ctx, &domain.Genre{Name: "Fantasy"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Repositories().Genres.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", got.Name)
	assert.NoError(t, db.Ping(ctx))
	assert.Equal(t, path, db.Path())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	genres := openTemp(t).Repositories().Genres

	for _, n := range []string{"Poetry", "Fantasy", "Horror"} {
		_, err := genres.Create(ctx, &domain.Genre{Name: n})
		require.NoError(t, err)
	}

	all, err := genres.List(ctx, store.Query{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Poetry", all[0].Name)
	assert.Equal(t, "Horror", all[2].Name)
}
