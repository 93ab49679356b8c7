package seed

// File is the root of a seed document:
//
//	genres: [Fantasy, Poetry]
//	books:
//	  - title: The Name of the Wind
//	    author: Patrick Rothfuss
//	    isbn: "9781473211896"
//	    genres: [Fantasy]
type File struct {
	Genres []string    `yaml:"genres"`
	Books  []BookEntry `yaml:"books"`
}

// BookEntry references its genres by name, not id.
type BookEntry struct {
	Title   string   `yaml:"title"`
	Author  string   `yaml:"author"`
	Summary string   `yaml:"summary"`
	ISBN    string   `yaml:"isbn"`
	Genres  []string `yaml:"genres"`
}
