package domain

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameCollator compares genre names the way the catalog treats them as
// duplicates: English collation, case ignored, diacritics significant.
//
// A collate.Collator is not safe for concurrent use, so callers get a fresh
// one per lookup.
func NameCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
