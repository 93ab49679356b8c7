package store

import (
	"encoding/json"
	"fmt"
)

// Codec converts documents to and from their stored JSON form.
type Codec[T Document] struct {
	// New returns an empty document to decode into.
	New func() T
}

func (c Codec[T]) Encode(doc T) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document %s: %w", doc.DocID(), err)
	}
	return data, nil
}

func (c Codec[T]) Decode(data []byte) (T, error) {
	doc := c.New()
	if err := json.Unmarshal(data, doc); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return doc, nil
}
