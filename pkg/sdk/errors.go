package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors for well-known server conditions.
// Use errors.Is() to check.
var (
	ErrNotReady         = errors.New("catalog not ready")
	ErrRecordNotFound   = errors.New("record not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("showdex api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Is maps well-known error codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotReady:
		return e.Code == "catalog_not_ready"
	case ErrRecordNotFound:
		return e.Code == "record_not_found"
	case ErrCategoryNotFound:
		return e.Code == "category_not_found"
	}
	return false
}
