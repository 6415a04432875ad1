package search

import (
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
)

// Catalog is the consumer interface over the loaded record store.
type Catalog interface {
	// Records returns all records in load order.
	Records() []domcat.Record
	// Category resolves a category by ID (for category-name scoring).
	Category(id string) (domcat.Category, error)
	// FallbackLanguage is used when a localized field is absent.
	FallbackLanguage() string
}

// RecordScorer rates one record against one normalized query term.
type RecordScorer interface {
	Score(rec domcat.Record, categoryName, term, lang, fallback string) float64
}
