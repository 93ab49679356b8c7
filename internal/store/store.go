// Package store defines the entity repository contract shared by the
// memory, Redis and SQLite document stores.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned (wrapped) when no document has the requested id.
var ErrNotFound = errors.New("record not found")

// Document is a persisted entity. Implementations are pointer types.
type Document interface {
	DocID() string
	SetDocID(id string)
	// Field returns the values of a named field; multi-valued fields
	// return every value.
	Field(name string) []string
	// Project zeroes every field not listed. The id is always kept.
	Project(fields []string)
}

// Repository is the persistence boundary used by the catalog workflows.
//
// Operations are single-document and never retried; backend failures are
// returned wrapped and must be treated as fatal for the request.
type Repository[T Document] interface {
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context, q Query) ([]T, error)
	// Create assigns an id and returns the stored form.
	Create(ctx context.Context, candidate T) (T, error)
	// UpdateByID replaces the whole document stored under id.
	UpdateByID(ctx context.Context, id string, candidate T) (T, error)
	// DeleteByID removes the document; deleting a missing id is a no-op.
	DeleteByID(ctx context.Context, id string) error
}

// NewID returns a fresh document id.
func NewID() string {
	return uuid.NewString()
}
