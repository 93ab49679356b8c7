package redis

const (
	// KeyPrefix namespaces every key written by the catalog
	KeyPrefix = "catalog:"
	// docSegment separates document keys from the collection index, so no
	// document id can ever name the index key
	docSegment = ":doc:"
	// indexSuffix names the set of all document IDs of a collection
	indexSuffix = ":index"
)

// DocumentKey returns the Redis key for a document by collection and ID
func DocumentKey(collection, id string) string {
	return KeyPrefix + collection + docSegment + id
}

// AllKey returns the key for the set of all document IDs of a collection
func AllKey(collection string) string {
	return KeyPrefix + collection + indexSuffix
}
