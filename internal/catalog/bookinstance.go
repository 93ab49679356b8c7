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

const resourceBookInstance = "bookinstance"

// BookInstanceWorkflow orchestrates the book instance pages.
//
// The submitted book reference is never checked against the book
// collection; an instance may point at a book that does not exist.
type BookInstanceWorkflow struct {
	instances store.Repository[*domain.BookInstance]
	books     store.Repository[*domain.Book]
	logger    logger.Logger
}

// NewBookInstanceWorkflow wires the book instance workflow over repos.
func NewBookInstanceWorkflow(repos store.Repositories, log logger.Logger) *BookInstanceWorkflow {
	return &BookInstanceWorkflow{
		instances: repos.BookInstances,
		books:     repos.Books,
		logger:    log,
	}
}

// List renders every instance joined with its book.
func (w *BookInstanceWorkflow) List(ctx context.Context) (Outcome, error) {
	var (
		instances []*domain.BookInstance
		books     []*domain.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		instances, err = w.instances.List(gctx, store.Query{})
		return err
	})
	g.Go(func() (err error) {
		books, err = w.bookList(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Outcome{}, fmt.Errorf("failed to list book instances: %w", err)
	}

	byID := make(map[string]*domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}
	rows := make([]BookInstanceRow, len(instances))
	for i, bi := range instances {
		rows[i] = BookInstanceRow{Instance: bi, Book: byID[bi.Book]}
	}

	return render(ViewBookInstanceList, BookInstanceListView{
		Title:            "Book Instance List",
		BookInstanceList: rows,
	}), nil
}

// Detail renders one instance and its book. A missing instance is an error
// wrapping store.ErrNotFound; a missing book is not.
func (w *BookInstanceWorkflow) Detail(ctx context.Context, id string) (Outcome, error) {
	instance, err := w.instances.GetByID(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("book instance detail: %w", err)
	}
	book, err := w.book(ctx, instance.Book)
	if err != nil {
		return Outcome{}, err
	}
	return render(ViewBookInstanceDetail, BookInstanceDetailView{
		Title:        "Book:",
		BookInstance: instance,
		Book:         book,
	}), nil
}

// CreateForm renders the empty form with the book selector.
func (w *BookInstanceWorkflow) CreateForm(ctx context.Context) (Outcome, error) {
	books, err := w.bookList(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return render(ViewBookInstanceForm, BookInstanceFormView{
		Title:      "Create BookInstance",
		BookList:   books,
		StatusList: domain.Statuses(),
	}), nil
}

// Create validates the submission and stores a new instance.
func (w *BookInstanceWorkflow) Create(ctx context.Context, form validation.Form) (Outcome, error) {
	input, failures := validation.BookInstance(form)
	instance := input.BookInstance()

	if !failures.Empty() {
		metrics.Outcome(resourceBookInstance, "create", metrics.ResultInvalid)
		return w.formWithErrors(ctx, "Create BookInstance", instance, input.DueBackText, failures)
	}

	instance.ApplyDefaults()
	w.warnUnknownStatus(instance)
	created, err := w.instances.Create(ctx, instance)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create book instance: %w", err)
	}
	w.logger.Info("book instance created",
		logger.String("id", created.ID),
		logger.String("book", created.Book))
	metrics.Outcome(resourceBookInstance, "create", metrics.ResultCreated)
	return redirect(created.URL()), nil
}

// UpdateForm renders the form filled with the stored instance. A missing
// instance is an error wrapping store.ErrNotFound.
func (w *BookInstanceWorkflow) UpdateForm(ctx context.Context, id string) (Outcome, error) {
	var (
		instance *domain.BookInstance
		books    []*domain.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		instance, err = w.instances.GetByID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		books, err = w.bookList(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Outcome{}, fmt.Errorf("book instance update form: %w", err)
	}

	return render(ViewBookInstanceForm, BookInstanceFormView{
		Title:        "Update BookInstance",
		BookInstance: instance,
		DueBackText:  instance.DueBackISO(),
		BookList:     books,
		SelectedBook: instance.Book,
		StatusList:   domain.Statuses(),
	}), nil
}

// Update validates the submission and replaces the stored instance. A
// missing instance is an error wrapping store.ErrNotFound.
func (w *BookInstanceWorkflow) Update(ctx context.Context, id string, form validation.Form) (Outcome, error) {
	input, failures := validation.BookInstance(form)
	instance := input.BookInstance()
	instance.ID = id

	if !failures.Empty() {
		metrics.Outcome(resourceBookInstance, "update", metrics.ResultInvalid)
		return w.formWithErrors(ctx, "Update BookInstance", instance, input.DueBackText, failures)
	}

	instance.ApplyDefaults()
	w.warnUnknownStatus(instance)
	updated, err := w.instances.UpdateByID(ctx, id, instance)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to update book instance: %w", err)
	}
	w.logger.Info("book instance updated", logger.String("id", updated.ID))
	metrics.Outcome(resourceBookInstance, "update", metrics.ResultUpdated)
	return redirect(updated.URL()), nil
}

// DeleteForm renders the confirmation page. A missing instance redirects to
// the list.
func (w *BookInstanceWorkflow) DeleteForm(ctx context.Context, id string) (Outcome, error) {
	instance, found, err := lookup(ctx, w.instances, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("book instance %s: %w", id, err)
	}
	if !found {
		return redirect(domain.BookInstanceListPath), nil
	}
	book, err := w.book(ctx, instance.Book)
	if err != nil {
		return Outcome{}, err
	}
	return render(ViewBookInstanceDelete, BookInstanceDeleteView{
		Title:        "Delete BookInstance",
		BookInstance: instance,
		Book:         book,
	}), nil
}

// Delete removes the instance and redirects to the list. A missing
// instance, or a confirmation naming another instance, deletes nothing.
func (w *BookInstanceWorkflow) Delete(ctx context.Context, id string, form validation.Form) (Outcome, error) {
	_, found, err := lookup(ctx, w.instances, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("book instance %s: %w", id, err)
	}
	if !found {
		metrics.Outcome(resourceBookInstance, "delete", metrics.ResultMissing)
		return redirect(domain.BookInstanceListPath), nil
	}
	if bodyID := form.Get("bookinstanceid"); !deleteTarget(id, bodyID) {
		w.logger.Warn("book instance delete confirmation does not match path",
			logger.String("id", id),
			logger.String("bookinstanceid", bodyID))
		return redirect(domain.BookInstanceListPath), nil
	}

	if err := w.instances.DeleteByID(ctx, id); err != nil {
		return Outcome{}, fmt.Errorf("failed to delete book instance: %w", err)
	}
	w.logger.Info("book instance deleted", logger.String("id", id))
	metrics.Outcome(resourceBookInstance, "delete", metrics.ResultDeleted)
	return redirect(domain.BookInstanceListPath), nil
}

func (w *BookInstanceWorkflow) formWithErrors(ctx context.Context, title string, instance *domain.BookInstance, dueBackText string, failures validation.Failures) (Outcome, error) {
	books, err := w.bookList(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return render(ViewBookInstanceForm, BookInstanceFormView{
		Title:        title,
		BookInstance: instance,
		DueBackText:  dueBackText,
		BookList:     books,
		SelectedBook: instance.Book,
		StatusList:   domain.Statuses(),
		Errors:       failures,
	}), nil
}

// bookList returns id and title of every book, sorted by title.
func (w *BookInstanceWorkflow) bookList(ctx context.Context) ([]*domain.Book, error) {
	books, err := w.books.List(ctx, store.Query{}.Select("title").OrderBy("title"))
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// book returns the referenced book, or nil when it does not exist.
func (w *BookInstanceWorkflow) book(ctx context.Context, id string) (*domain.Book, error) {
	if id == "" {
		return nil, nil
	}
	book, found, err := lookup(ctx, w.books, id)
	if err != nil {
		return nil, fmt.Errorf("book %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return book, nil
}

// warnUnknownStatus logs statuses outside the offered choices. They are
// stored as submitted.
func (w *BookInstanceWorkflow) warnUnknownStatus(instance *domain.BookInstance) {
	if instance.Status.Known() {
		return
	}
	w.logger.Warn("book instance status is not one of the offered choices",
		logger.String("id", instance.ID),
		logger.String("status", instance.Status.String()))
}
