// Package redis stores catalog documents in Redis.
package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/catalog/internal/store"
)

// New returns repositories for every catalog collection backed by client.
func New(client *redis.Client) store.Repositories {
	return store.Repositories{
		Genres:        NewCollection(client, store.CollectionGenres, store.GenreCodec()),
		BookInstances: NewCollection(client, store.CollectionBookInstances, store.BookInstanceCodec()),
		Books:         NewCollection(client, store.CollectionBooks, store.BookCodec()),
	}
}
