package memory

import "github.com/MrSnakeDoc/catalog/internal/store"

// New returns repositories for every catalog collection backed by memory.
func New() store.Repositories {
	return store.Repositories{
		Genres:        NewCollection(store.CollectionGenres, store.GenreCodec()),
		BookInstances: NewCollection(store.CollectionBookInstances, store.BookInstanceCodec()),
		Books:         NewCollection(store.CollectionBooks, store.BookCodec()),
	}
}
