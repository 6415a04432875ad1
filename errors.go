package showdex

import "github.com/kinetic-pages/showdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrRecordNotFound   = domain.ErrRecordNotFound
	ErrCategoryNotFound = domain.ErrCategoryNotFound
	ErrInvalidCatalog   = domain.ErrInvalidCatalog
)
