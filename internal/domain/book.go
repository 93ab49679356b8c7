package domain

// Book is read by the catalog workflows (selectors, integrity checks, joins)
// and only written by the seed importer.
type Book struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Author  string   `json:"author,omitempty"`
	Summary string   `json:"summary,omitempty"`
	ISBN    string   `json:"isbn,omitempty"`
	Genre   []string `json:"genre,omitempty"` // Genre IDs
}

// URL returns the canonical detail page path.
func (b *Book) URL() string {
	return BookPath + "/" + b.ID
}

func (b *Book) DocID() string      { return b.ID }
func (b *Book) SetDocID(id string) { b.ID = id }

func (b *Book) Field(name string) []string {
	switch name {
	case "id":
		return []string{b.ID}
	case "title":
		return []string{b.Title}
	case "author":
		return []string{b.Author}
	case "summary":
		return []string{b.Summary}
	case "isbn":
		return []string{b.ISBN}
	case "genre":
		return b.Genre
	}
	return nil
}

func (b *Book) Project(fields []string) {
	if !hasField(fields, "title") {
		b.Title = ""
	}
	if !hasField(fields, "author") {
		b.Author = ""
	}
	if !hasField(fields, "summary") {
		b.Summary = ""
	}
	if !hasField(fields, "isbn") {
		b.ISBN = ""
	}
	if !hasField(fields, "genre") {
		b.Genre = nil
	}
}
