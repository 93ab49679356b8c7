package domain

// Genre is a category that books can be filed under.
//
// Name uniqueness is not a storage constraint: it is enforced by the
// duplicate resolver using case-insensitive collation (see NameCollator).
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// URL returns the canonical detail page path.
func (g *Genre) URL() string {
	return GenrePath + "/" + g.ID
}

func (g *Genre) DocID() string      { return g.ID }
func (g *Genre) SetDocID(id string) { g.ID = id }

// Field exposes document fields to the store query evaluator.
func (g *Genre) Field(name string) []string {
	switch name {
	case "id":
		return []string{g.ID}
	case "name":
		return []string{g.Name}
	}
	return nil
}

// Project keeps only the listed fields. The id is always kept.
func (g *Genre) Project(fields []string) {
	if !hasField(fields, "name") {
		g.Name = ""
	}
}
