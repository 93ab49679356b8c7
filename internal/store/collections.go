package store

import "github.com/MrSnakeDoc/catalog/internal/domain"

// Collection names, used as Redis key segments and SQLite table names.
const (
	CollectionGenres        = "genres"
	CollectionBookInstances = "bookinstances"
	CollectionBooks         = "books"
)

// Repositories groups the repositories of every catalog collection so a
// backend can be handed around as one value.
type Repositories struct {
	Genres        Repository[*domain.Genre]
	BookInstances Repository[*domain.BookInstance]
	Books         Repository[*domain.Book]
}

func GenreCodec() Codec[*domain.Genre] {
	return Codec[*domain.Genre]{New: func() *domain.Genre { return new(domain.Genre) }}
}

func BookInstanceCodec() Codec[*domain.BookInstance] {
	return Codec[*domain.BookInstance]{New: func() *domain.BookInstance { return new(domain.BookInstance) }}
}

func BookCodec() Codec[*domain.Book] {
	return Codec[*domain.Book]{New: func() *domain.Book { return new(domain.Book) }}
}
