package catalog

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/store"
)

// DuplicateResolver finds a genre whose name collides with a candidate.
type DuplicateResolver struct {
	genres store.Repository[*domain.Genre]
}

func NewDuplicateResolver(genres store.Repository[*domain.Genre]) *DuplicateResolver {
	return &DuplicateResolver{genres: genres}
}

// FindExisting returns the stored genre named name under case-insensitive
// English collation, or nil when there is none.
func (r *DuplicateResolver) FindExisting(ctx context.Context, name string) (*domain.Genre, error) {
	genres, err := r.genres.List(ctx, store.Query{}.Select("name"))
	if err != nil {
		return nil, fmt.Errorf("failed to look up genre %q: %w", name, err)
	}

	col := domain.NameCollator()
	for _, g := range genres {
		if col.CompareString(g.Name, name) == 0 {
			return g, nil
		}
	}
	return nil, nil
}
