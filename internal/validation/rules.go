package validation

import (
	"time"

	"github.com/MrSnakeDoc/catalog/internal/domain"
)

// Failure messages shown to users.
const (
	MsgGenreName   = "Genre name must contain at least 3 characters"
	MsgBook        = "Book must be specified"
	MsgImprint     = "Imprint must be specified"
	MsgInvalidDate = "Invalid date"
)

var (
	genreName = Field[string]{Name: "name", Rule: Text(3, MsgGenreName)}

	instanceBook    = Field[string]{Name: "book", Rule: Text(1, MsgBook)}
	instanceImprint = Field[string]{Name: "imprint", Rule: Text(1, MsgImprint)}
	instanceStatus  = Field[string]{Name: "status", Rule: Escaped()}
	instanceDueBack = Field[*time.Time]{Name: "due_back", Rule: OptionalDate(MsgInvalidDate)}
)

// GenreInput is a normalized genre submission.
type GenreInput struct {
	Name string
}

// Genre returns the transient entity built from the normalized values.
func (in GenreInput) Genre() *domain.Genre {
	return &domain.Genre{Name: in.Name}
}

// Genre validates a genre form.
func Genre(form Form) (GenreInput, Failures) {
	p := New(form)
	name := Run(p, genreName)
	return GenreInput{Name: name.Value}, p.Failures()
}

// BookInstanceInput is a normalized book instance submission.
type BookInstanceInput struct {
	Book    string
	Imprint string
	Status  string
	DueBack *time.Time
	// DueBackText is what the user typed, escaped, for re-display when the
	// date did not parse.
	DueBackText string
}

// BookInstance returns the transient entity built from the normalized values.
func (in BookInstanceInput) BookInstance() *domain.BookInstance {
	return &domain.BookInstance{
		Book:    in.Book,
		Imprint: in.Imprint,
		Status:  domain.Status(in.Status),
		DueBack: in.DueBack,
	}
}

// BookInstance validates a book instance form.
func BookInstance(form Form) (BookInstanceInput, Failures) {
	p := New(form)
	book := Run(p, instanceBook)
	imprint := Run(p, instanceImprint)
	status := Run(p, instanceStatus)
	due := Run(p, instanceDueBack)
	return BookInstanceInput{
		Book:        book.Value,
		Imprint:     imprint.Value,
		Status:      status.Value,
		DueBack:     due.Value,
		DueBackText: due.Normalized,
	}, p.Failures()
}
