package domain

import "errors"

var (
	// ErrNotReady signals that the catalog has not finished loading.
	// Search and suggestion operations are refused until load completes.
	ErrNotReady = errors.New("catalog not loaded")
	// ErrRecordNotFound signals a missing catalog record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrCategoryNotFound signals a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidCatalog signals a catalog that violates load invariants.
	// The load fails wholesale; the engine never operates on a partial store.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
