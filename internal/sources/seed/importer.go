package seed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/catalog/internal/catalog"
	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/validation"
)

// Report counts what an import touched.
type Report struct {
	GenresCreated int
	GenresReused  int
	BooksCreated  int
	BooksSkipped  int
}

// Importer writes a seed file into the store. Genres go through the same
// validation and duplicate resolution as the genre form, so reruns are
// idempotent.
type Importer struct {
	repos    store.Repositories
	resolver *catalog.DuplicateResolver
	logger   logger.Logger
}

func NewImporter(repos store.Repositories, log logger.Logger) *Importer {
	return &Importer{
		repos:    repos,
		resolver: catalog.NewDuplicateResolver(repos.Genres),
		logger:   log,
	}
}

// Import stores f. Books whose ISBN is already present are skipped; books
// naming an unknown genre fail the import.
func (im *Importer) Import(ctx context.Context, f *File) (Report, error) {
	var rep Report
	ids := make(map[string]string, len(f.Genres))

	for _, name := range f.Genres {
		id, created, err := im.ensureGenre(ctx, name)
		if err != nil {
			return rep, err
		}
		ids[strings.ToLower(strings.TrimSpace(name))] = id
		if created {
			rep.GenresCreated++
		} else {
			rep.GenresReused++
		}
	}

	for _, entry := range f.Books {
		created, err := im.ensureBook(ctx, entry, ids)
		if err != nil {
			return rep, err
		}
		if created {
			rep.BooksCreated++
		} else {
			rep.BooksSkipped++
		}
	}

	im.logger.Info("seed imported",
		logger.Int("genres_created", rep.GenresCreated),
		logger.Int("genres_reused", rep.GenresReused),
		logger.Int("books_created", rep.BooksCreated),
		logger.Int("books_skipped", rep.BooksSkipped))
	return rep, nil
}

func (im *Importer) ensureGenre(ctx context.Context, name string) (id string, created bool, err error) {
	input, failures := validation.Genre(url.Values{"name": {name}})
	if !failures.Empty() {
		return "", false, fmt.Errorf("seed genre %q: %s", name, strings.Join(failures.Messages(), "; "))
	}

	existing, err := im.resolver.FindExisting(ctx, input.Name)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	genre, err := im.repos.Genres.Create(ctx, input.Genre())
	if err != nil {
		return "", false, fmt.Errorf("failed to create seed genre %q: %w", name, err)
	}
	im.logger.Debug("seed genre created", logger.String("id", genre.ID), logger.String("name", genre.Name))
	return genre.ID, true, nil
}

func (im *Importer) ensureBook(ctx context.Context, entry BookEntry, genreIDs map[string]string) (bool, error) {
	title := strings.TrimSpace(entry.Title)
	isbn := strings.TrimSpace(entry.ISBN)
	if title == "" || isbn == "" {
		return false, fmt.Errorf("seed book %q: title and isbn are required", entry.Title)
	}

	existing, err := im.repos.Books.List(ctx, store.Where("isbn", isbn).Select("isbn"))
	if err != nil {
		return false, fmt.Errorf("failed to look up book %s: %w", isbn, err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	book := &domain.Book{
		Title:   title,
		Author:  strings.TrimSpace(entry.Author),
		Summary: strings.TrimSpace(entry.Summary),
		ISBN:    isbn,
	}
	for _, name := range entry.Genres {
		id, ok := genreIDs[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return false, fmt.Errorf("seed book %q: genre %q is not listed under genres", title, name)
		}
		book.Genre = append(book.Genre, id)
	}

	if _, err := im.repos.Books.Create(ctx, book); err != nil {
		return false, fmt.Errorf("failed to create seed book %q: %w", title, err)
	}
	return true, nil
}
