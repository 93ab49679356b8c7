package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/catalog/internal/store"
)

// Collection handles Redis operations for one document type.
// Each document is a JSON string value; a set indexes the IDs.
type Collection[T store.Document] struct {
	client *redis.Client
	name   string
	codec  store.Codec[T]
}

// NewCollection creates a Redis-backed collection
func NewCollection[T store.Document](client *redis.Client, name string, codec store.Codec[T]) *Collection[T] {
	return &Collection[T]{
		client: client,
		name:   name,
		codec:  codec,
	}
}

// GetByID retrieves a document from Redis by ID
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	data, err := c.client.Get(ctx, DocumentKey(c.name, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, fmt.Errorf("%s %s: %w", c.name, id, store.ErrNotFound)
		}
		return zero, fmt.Errorf("failed to get %s: %w", c.name, err)
	}
	return c.codec.Decode(data)
}

// List retrieves all documents of the collection and evaluates q over them
func (c *Collection[T]) List(ctx context.Context, q store.Query) ([]T, error) {
	ids, err := c.client.SMembers(ctx, AllKey(c.name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s IDs: %w", c.name, err)
	}

	if len(ids) == 0 {
		return []T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = DocumentKey(c.name, id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", c.name, err)
	}

	docs := make([]T, 0, len(values))
	for _, v := range values {
		// Set members whose document vanished between the two reads
		raw, ok := v.(string)
		if !ok {
			continue
		}
		doc, err := c.codec.Decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return store.Apply(q, docs), nil
}

// Create stores a new document under a fresh ID
func (c *Collection[T]) Create(ctx context.Context, candidate T) (T, error) {
	var zero T
	candidate.SetDocID(store.NewID())
	data, err := c.codec.Encode(candidate)
	if err != nil {
		return zero, err
	}

	id := candidate.DocID()
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, DocumentKey(c.name, id), data, 0)
		pipe.SAdd(ctx, AllKey(c.name), id)
		return nil
	})
	if err != nil {
		return zero, fmt.Errorf("failed to save %s: %w", c.name, err)
	}

	return c.codec.Decode(data)
}

// UpdateByID replaces an existing document; it never creates one
func (c *Collection[T]) UpdateByID(ctx context.Context, id string, candidate T) (T, error) {
	var zero T
	candidate.SetDocID(id)
	data, err := c.codec.Encode(candidate)
	if err != nil {
		return zero, err
	}

	replaced, err := c.client.SetXX(ctx, DocumentKey(c.name, id), data, 0).Result()
	if err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", c.name, err)
	}
	if !replaced {
		return zero, fmt.Errorf("%s %s: %w", c.name, id, store.ErrNotFound)
	}

	return c.codec.Decode(data)
}

// DeleteByID removes a document from Redis
func (c *Collection[T]) DeleteByID(ctx context.Context, id string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, DocumentKey(c.name, id))
		pipe.SRem(ctx, AllKey(c.name), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", c.name, err)
	}
	return nil
}
