package domain

import (
	"fmt"
	"time"
)

// BookInstance is one physical copy of a Book.
type BookInstance struct {
	ID      string     `json:"id"`
	Book    string     `json:"book"` // Book ID, existence is not checked
	Imprint string     `json:"imprint"`
	Status  Status     `json:"status"`
	DueBack *time.Time `json:"due_back,omitempty"`
}

// URL returns the canonical detail page path.
func (bi *BookInstance) URL() string {
	return BookInstancePath + "/" + bi.ID
}

// ApplyDefaults fills fields left empty by the submitter.
func (bi *BookInstance) ApplyDefaults() {
	if bi.Status == "" {
		bi.Status = DefaultStatus
	}
}

// DueBackFormatted renders the due date for humans, e.g. "Jan 2nd, 2024".
func (bi *BookInstance) DueBackFormatted() string {
	if bi.DueBack == nil {
		return ""
	}
	d := bi.DueBack.UTC()
	return fmt.Sprintf("%s %d%s, %d", d.Format("Jan"), d.Day(), ordinalSuffix(d.Day()), d.Year())
}

// DueBackISO renders the due date as YYYY-MM-DD for date inputs.
func (bi *BookInstance) DueBackISO() string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.UTC().Format(time.DateOnly)
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func (bi *BookInstance) DocID() string      { return bi.ID }
func (bi *BookInstance) SetDocID(id string) { bi.ID = id }

func (bi *BookInstance) Field(name string) []string {
	switch name {
	case "id":
		return []string{bi.ID}
	case "book":
		return []string{bi.Book}
	case "imprint":
		return []string{bi.Imprint}
	case "status":
		return []string{string(bi.Status)}
	case "due_back":
		return []string{bi.DueBackISO()}
	}
	return nil
}

func (bi *BookInstance) Project(fields []string) {
	if !hasField(fields, "book") {
		bi.Book = ""
	}
	if !hasField(fields, "imprint") {
		bi.Imprint = ""
	}
	if !hasField(fields, "status") {
		bi.Status = ""
	}
	if !hasField(fields, "due_back") {
		bi.DueBack = nil
	}
}
