package domain

import "slices"

// Canonical path prefixes shared by URL derivation, routing and redirects.
const (
	GenrePath            = "/genre"
	GenreListPath        = "/genres"
	BookInstancePath     = "/bookinstance"
	BookInstanceListPath = "/bookinstances"
	BookPath             = "/book"
)

func hasField(fields []string, name string) bool {
	return slices.Contains(fields, name)
}
