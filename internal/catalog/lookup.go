package catalog

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/catalog/internal/store"
)

// lookup fetches id and reports a missing record as found=false instead of
// an error. Other failures are returned unchanged.
func lookup[T store.Document](ctx context.Context, repo store.Repository[T], id string) (doc T, found bool, err error) {
	doc, err = repo.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, err
	}
	return doc, true, nil
}

// deleteTarget reports whether a delete confirmation names the record in
// the path. A form without the hidden id field targets the path record.
func deleteTarget(pathID, bodyID string) bool {
	return bodyID == "" || bodyID == pathID
}
