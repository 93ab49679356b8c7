// Package memory provides an in-process document store. Documents are kept
// in their encoded form so no caller ever shares a value with another.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/catalog/internal/store"
)

// Collection stores documents of one type.
type Collection[T store.Document] struct {
	mu    sync.RWMutex
	name  string
	codec store.Codec[T]
	docs  map[string][]byte // ID -> encoded document
	order []string          // insertion order, for stable unsorted listings
}

// NewCollection creates an empty collection.
func NewCollection[T store.Document](name string, codec store.Codec[T]) *Collection[T] {
	return &Collection[T]{
		name:  name,
		codec: codec,
		docs:  make(map[string][]byte),
	}
}

// GetByID retrieves a document by ID
func (c *Collection[T]) GetByID(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	data, ok := c.docs[id]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", c.name, id, store.ErrNotFound)
	}
	return c.codec.Decode(data)
}

// List returns the documents matching q
func (c *Collection[T]) List(_ context.Context, q store.Query) ([]T, error) {
	c.mu.RLock()
	docs := make([]T, 0, len(c.docs))
	for _, id := range c.order {
		doc, err := c.codec.Decode(c.docs[id])
		if err != nil {
			c.mu.RUnlock()
			return nil, err
		}
		docs = append(docs, doc)
	}
	c.mu.RUnlock()

	return store.Apply(q, docs), nil
}

// Create stores candidate under a fresh ID
func (c *Collection[T]) Create(_ context.Context, candidate T) (T, error) {
	candidate.SetDocID(store.NewID())
	data, err := c.codec.Encode(candidate)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.docs[candidate.DocID()] = data
	c.order = append(c.order, candidate.DocID())
	c.mu.Unlock()

	return c.codec.Decode(data)
}

// UpdateByID replaces the document stored under id
func (c *Collection[T]) UpdateByID(_ context.Context, id string, candidate T) (T, error) {
	var zero T
	candidate.SetDocID(id)
	data, err := c.codec.Encode(candidate)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	if _, ok := c.docs[id]; !ok {
		c.mu.Unlock()
		return zero, fmt.Errorf("%s %s: %w", c.name, id, store.ErrNotFound)
	}
	c.docs[id] = data
	c.mu.Unlock()

	return c.codec.Decode(data)
}

// DeleteByID removes a document
func (c *Collection[T]) DeleteByID(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return nil
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}
