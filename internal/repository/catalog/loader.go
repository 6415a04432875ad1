package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinetic-pages/showdex/internal/domain"
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
)

// Load reads and validates a JSON catalog file. The load succeeds wholesale
// or fails: a single invalid record or dangling category reference rejects
// the entire file.
func Load(path, fallbackLang string) (*Store, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data, fallbackLang)
}

// Parse builds a Store from raw catalog JSON.
func Parse(data []byte, fallbackLang string) (*Store, error) {
	var dto catalogDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	if len(dto.Records) == 0 {
		return nil, fmt.Errorf("%w: no records", domain.ErrInvalidCatalog)
	}

	categories := make([]domcat.Category, 0, len(dto.Categories))
	for _, c := range dto.Categories {
		cat, err := domcat.NewCategory(c.ID, c.Name, c.Order, c.Icon, fallbackLang)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		categories = append(categories, cat)
	}

	records := make([]domcat.Record, 0, len(dto.Records))
	for _, r := range dto.Records {
		rec, err := domcat.NewRecord(domcat.RecordParams{
			ID:          r.ID,
			CategoryID:  r.Category,
			Status:      domcat.Status(r.Status),
			Title:       r.Title,
			Description: r.Description,
			Details:     r.Details,
			Tags:        r.Tags,
			Examples:    r.Examples,
			Version:     r.Version,
		}, fallbackLang)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		records = append(records, rec)
	}

	return FromRecords(categories, records, fallbackLang)
}
