package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/metrics"
	"github.com/MrSnakeDoc/catalog/internal/store"
	"github.com/MrSnakeDoc/catalog/internal/validation"
)

// Messages shown when an update would rename a genre onto an existing name.
const (
	MsgGenreExists   = "ALREADY EXISTS : Can't Update Genre."
	MsgGenreTryAgain = "Try something else."
)

const resourceGenre = "genre"

// GenreWorkflow orchestrates the genre pages.
type GenreWorkflow struct {
	genres    store.Repository[*domain.Genre]
	resolver  *DuplicateResolver
	integrity *IntegrityChecker
	logger    logger.Logger
}

// NewGenreWorkflow wires the genre workflow over repos.
func NewGenreWorkflow(repos store.Repositories, log logger.Logger) *GenreWorkflow {
	return &GenreWorkflow{
		genres:    repos.Genres,
		resolver:  NewDuplicateResolver(repos.Genres),
		integrity: NewIntegrityChecker(repos.Books),
		logger:    log,
	}
}

// List renders every genre sorted by name.
func (w *GenreWorkflow) List(ctx context.Context) (Outcome, error) {
	genres, err := w.genres.List(ctx, store.Query{}.OrderBy("name"))
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to list genres: %w", err)
	}
	return render(ViewGenreList, GenreListView{Title: "Genre List", GenreList: genres}), nil
}

// Detail renders a genre with its books. A missing genre is an error
// wrapping store.ErrNotFound.
func (w *GenreWorkflow) Detail(ctx context.Context, id string) (Outcome, error) {
	var (
		genre *domain.Genre
		books []*domain.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		genre, err = w.genres.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		books, err = w.integrity.ReferencingBooks(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return Outcome{}, fmt.Errorf("genre detail: %w", err)
	}

	return render(ViewGenreDetail, GenreDetailView{
		Title:      "Genre Detail",
		Genre:      genre,
		GenreBooks: books,
	}), nil
}

// CreateForm renders the empty form.
func (w *GenreWorkflow) CreateForm(context.Context) (Outcome, error) {
	return render(ViewGenreForm, GenreFormView{Title: "Create Genre"}), nil
}

// Create validates the submission, then either redirects to an existing
// genre with the same name or stores a new one and redirects to it.
func (w *GenreWorkflow) Create(ctx context.Context, form validation.Form) (Outcome, error) {
	input, failures := validation.Genre(form)
	genre := input.Genre()

	if !failures.Empty() {
		metrics.Outcome(resourceGenre, "create", metrics.ResultInvalid)
		return render(ViewGenreForm, GenreFormView{
			Title:  "Create Genre",
			Genre:  genre,
			Errors: failures,
		}), nil
	}

	existing, err := w.resolver.FindExisting(ctx, genre.Name)
	if err != nil {
		return Outcome{}, err
	}
	if existing != nil {
		w.logger.Debug("genre already exists, redirecting",
			logger.String("name", genre.Name),
			logger.String("id", existing.ID))
		metrics.Outcome(resourceGenre, "create", metrics.ResultDuplicate)
		return redirect(existing.URL()), nil
	}

	created, err := w.genres.Create(ctx, genre)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create genre: %w", err)
	}
	w.logger.Info("genre created",
		logger.String("id", created.ID),
		logger.String("name", created.Name))
	metrics.Outcome(resourceGenre, "create", metrics.ResultCreated)
	return redirect(created.URL()), nil
}

// UpdateForm renders the form filled with the stored genre. A missing
// genre is an error wrapping store.ErrNotFound.
func (w *GenreWorkflow) UpdateForm(ctx context.Context, id string) (Outcome, error) {
	genre, err := w.genres.GetByID(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("genre update form: %w", err)
	}
	return render(ViewGenreForm, GenreFormView{Title: "Update Genre", Genre: genre}), nil
}

// Update validates the submission and renames the genre unless another
// genre (or this one) already carries the name under collation.
func (w *GenreWorkflow) Update(ctx context.Context, id string, form validation.Form) (Outcome, error) {
	input, failures := validation.Genre(form)
	genre := input.Genre()
	genre.ID = id

	if !failures.Empty() {
		metrics.Outcome(resourceGenre, "update", metrics.ResultInvalid)
		return render(ViewGenreForm, GenreFormView{
			Title:  "Update Genre",
			Genre:  genre,
			Errors: failures,
		}), nil
	}

	existing, err := w.resolver.FindExisting(ctx, genre.Name)
	if err != nil {
		return Outcome{}, err
	}
	if existing != nil {
		w.logger.Debug("genre rename collides with existing genre",
			logger.String("id", id),
			logger.String("name", genre.Name),
			logger.String("existing_id", existing.ID))
		metrics.Outcome(resourceGenre, "update", metrics.ResultDuplicate)
		return render(ViewGenreForm, GenreFormView{
			Title: "Update Genre",
			Genre: genre,
			Errors: validation.Failures{
				{Field: "name", Message: MsgGenreExists, Value: genre.Name},
				{Message: MsgGenreTryAgain},
			},
		}), nil
	}

	updated, err := w.genres.UpdateByID(ctx, id, genre)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to update genre: %w", err)
	}
	w.logger.Info("genre updated",
		logger.String("id", updated.ID),
		logger.String("name", updated.Name))
	metrics.Outcome(resourceGenre, "update", metrics.ResultUpdated)
	return redirect(updated.URL()), nil
}

// DeleteForm renders the confirmation page with the books that would block
// the delete. A missing genre redirects to the list.
func (w *GenreWorkflow) DeleteForm(ctx context.Context, id string) (Outcome, error) {
	genre, found, books, err := w.genreWithBooks(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return redirect(domain.GenreListPath), nil
	}
	return render(ViewGenreDelete, GenreDeleteView{
		Title:      "Delete Genre",
		Genre:      genre,
		GenreBooks: books,
	}), nil
}

// Delete removes the genre when no book references it; otherwise the
// confirmation page is shown again with the blocking books. A missing
// genre, or a confirmation naming another genre, redirects to the list.
func (w *GenreWorkflow) Delete(ctx context.Context, id string, form validation.Form) (Outcome, error) {
	genre, found, books, err := w.genreWithBooks(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		metrics.Outcome(resourceGenre, "delete", metrics.ResultMissing)
		return redirect(domain.GenreListPath), nil
	}
	if bodyID := form.Get("genreid"); !deleteTarget(id, bodyID) {
		w.logger.Warn("genre delete confirmation does not match path",
			logger.String("id", id),
			logger.String("genreid", bodyID))
		return redirect(domain.GenreListPath), nil
	}

	if len(books) > 0 {
		w.logger.Info("genre delete blocked by referencing books",
			logger.String("id", id),
			logger.Int("books", len(books)))
		metrics.Outcome(resourceGenre, "delete", metrics.ResultBlocked)
		return render(ViewGenreDelete, GenreDeleteView{
			Title:      "Delete Genre",
			Genre:      genre,
			GenreBooks: books,
		}), nil
	}

	if err := w.genres.DeleteByID(ctx, id); err != nil {
		return Outcome{}, fmt.Errorf("failed to delete genre: %w", err)
	}
	w.logger.Info("genre deleted", logger.String("id", id))
	metrics.Outcome(resourceGenre, "delete", metrics.ResultDeleted)
	return redirect(domain.GenreListPath), nil
}

// genreWithBooks fetches the genre and its referencing books concurrently.
func (w *GenreWorkflow) genreWithBooks(ctx context.Context, id string) (*domain.Genre, bool, []*domain.Book, error) {
	var (
		genre *domain.Genre
		found bool
		books []*domain.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		genre, found, err = lookup(gctx, w.genres, id)
		return err
	})
	g.Go(func() (err error) {
		books, err = w.integrity.ReferencingBooks(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, nil, fmt.Errorf("genre %s: %w", id, err)
	}
	return genre, found, books, nil
}
