package view_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/catalog/internal/catalog"
	"github.com/MrSnakeDoc/catalog/internal/domain"
	"github.com/MrSnakeDoc/catalog/internal/validation"
	"github.com/MrSnakeDoc/catalog/internal/view"
)

func TestRenderEveryView(t *testing.T) {
	views, err := view.New()
	require.NoError(t, err)

	due := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	genre := &domain.Genre{ID: "g1", Name: "Fantasy"}
	book := &domain.Book{ID: "b1", Title: "Earthsea", Summary: "Wizards"}
	instance := &domain.BookInstance{ID: "i1", Book: "b1", Imprint: "Parnassus", Status: domain.StatusLoaned, DueBack: &due}

	tests := []struct {
		view     string
		data     any
		contains []string
	}{
		{catalog.ViewGenreList, catalog.GenreListView{Title: "Genre List", GenreList: []*domain.Genre{genre}}, []string{`href="/genre/g1"`, "Fantasy"}},
		{catalog.ViewGenreDetail, catalog.GenreDetailView{Title: "Genre Detail", Genre: genre, GenreBooks: []*domain.Book{book}}, []string{"Wizards", `href="/genre/g1/delete"`}},
		{catalog.ViewGenreForm, catalog.GenreFormView{Title: "Create Genre", Errors: validation.Failures{{Message: "Genre name must contain at least 3 characters"}}}, []string{`name="name"`, "at least 3 characters"}},
		{catalog.ViewGenreDelete, catalog.GenreDeleteView{Title: "Delete Genre", Genre: genre}, []string{`name="genreid" value="g1"`}},
		{catalog.ViewGenreDelete, catalog.GenreDeleteView{Title: "Delete Genre", Genre: genre, GenreBooks: []*domain.Book{book}}, []string{"Delete the following books"}},
		{catalog.ViewBookInstanceList, catalog.BookInstanceListView{Title: "Book Instance List", BookInstanceList: []catalog.BookInstanceRow{{Instance: instance, Book: book}}}, []string{"Earthsea : Parnassus", "Jan 2nd, 2024"}},
		{catalog.ViewBookInstanceDetail, catalog.BookInstanceDetailView{Title: "Book:", BookInstance: instance}, []string{"Unknown book", "Due back"}},
		{catalog.ViewBookInstanceForm, catalog.BookInstanceFormView{Title: "Update BookInstance", BookInstance: instance, DueBackText: "2024-01-02", BookList: []*domain.Book{book}, SelectedBook: "b1", StatusList: domain.Statuses()}, []string{`value="b1" selected`, `value="Loaned" selected`, `value="2024-01-02"`}},
		{catalog.ViewBookInstanceForm, catalog.BookInstanceFormView{Title: "Create BookInstance", StatusList: domain.Statuses()}, []string{`value="Maintenance"`}},
		{catalog.ViewBookInstanceDelete, catalog.BookInstanceDeleteView{Title: "Delete BookInstance", BookInstance: instance, Book: book}, []string{`name="bookinstanceid" value="i1"`}},
		{view.ViewError, view.ErrorView{Title: "Not Found", Status: 404, Message: "gone"}, []string{"<title>Not Found</title>", "gone"}},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, views.Render(&buf, tt.view, tt.data))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderUnknownView(t *testing.T) {
	views, err := view.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, views.Render(&buf, "nope", nil))
	assert.Zero(t, buf.Len())
}
