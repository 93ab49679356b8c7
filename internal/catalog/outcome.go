// Package catalog implements the genre and book instance workflows: the
// list, detail, create, update and delete handlers expressed as functions
// that return what to render or where to redirect.
package catalog

import (
	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/validation"
)

// View names, one template each.
const (
	ViewGenreList          = "genre_list"
	ViewGenreDetail        = "genre_detail"
	ViewGenreForm          = "genre_form"
	ViewGenreDelete        = "genre_delete"
	ViewBookInstanceList   = "bookinstance_list"
	ViewBookInstanceDetail = "bookinstance_detail"
	ViewBookInstanceForm   = "bookinstance_form"
	ViewBookInstanceDelete = "bookinstance_delete"
)

// Outcome is the terminal state of a workflow: either a view to render
// with its model, or a location to redirect to.
type Outcome struct {
	View     string
	Data     any
	Redirect string
}

// IsRedirect reports whether the outcome is a redirect.
func (o Outcome) IsRedirect() bool { return o.Redirect != "" }

func render(view string, data any) Outcome {
	return Outcome{View: view, Data: data}
}

func redirect(location string) Outcome {
	return Outcome{Redirect: location}
}

type GenreListView struct {
	Title     string
	GenreList []*domain.Genre
}

type GenreDetailView struct {
	Title      string
	Genre      *domain.Genre
	GenreBooks []*domain.Book
}

type GenreFormView struct {
	Title  string
	Genre  *domain.Genre
	Errors validation.Failures
}

type GenreDeleteView struct {
	Title      string
	Genre      *domain.Genre
	GenreBooks []*domain.Book
}

// BookInstanceRow is an instance joined with its book for listings.
type BookInstanceRow struct {
	Instance *domain.BookInstance
	Book     *domain.Book // nil when the referenced book does not exist
}

type BookInstanceListView struct {
	Title            string
	BookInstanceList []BookInstanceRow
}

type BookInstanceDetailView struct {
	Title        string
	BookInstance *domain.BookInstance
	Book         *domain.Book
}

type BookInstanceFormView struct {
	Title        string
	BookInstance *domain.BookInstance
	// DueBackText is the date as shown in the form, including an
	// unparseable submission being echoed back.
	DueBackText  string
	BookList     []*domain.Book
	SelectedBook string
	StatusList   []domain.Status
	Errors       validation.Failures
}

type BookInstanceDeleteView struct {
	Title        string
	BookInstance *domain.BookInstance
	Book         *domain.Book
}
