package catalog

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/store"
)

// IntegrityChecker reports the books that still reference a genre.
type IntegrityChecker struct {
	books store.Repository[*domain.Book]
}

func NewIntegrityChecker(books store.Repository[*domain.Book]) *IntegrityChecker {
	return &IntegrityChecker{books: books}
}

// ReferencingBooks lists the books filed under genreID, with only their
// title and summary, sorted by title.
func (c *IntegrityChecker) ReferencingBooks(ctx context.Context, genreID string) ([]*domain.Book, error) {
	books, err := c.books.List(ctx, store.Where("genre", genreID).Select("title", "summary").OrderBy("title"))
	if err != nil {
		return nil, fmt.Errorf("failed to list books of genre %s: %w", genreID, err)
	}
	return books, nil
}
