package catalog

import (
	"fmt"
	"sort"

	"github.com/kinetic-pages/showdex/internal/domain"
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
)

// Store holds the loaded catalog in memory. It is immutable after
// construction and safe for unsynchronized concurrent reads.
type Store struct {
	records    []domcat.Record
	recIndex   map[string]int
	categories []domcat.Category
	catIndex   map[string]int
	byCategory map[string][]string
	fallback   string
}

// FromRecords builds a Store from already-constructed domain objects.
// Every record's category must resolve against the category set and record
// and category IDs must be unique; a violation fails the whole build.
func FromRecords(categories []domcat.Category, records []domcat.Record, fallbackLang string) (*Store, error) {
	s := &Store{
		records:    records,
		recIndex:   make(map[string]int, len(records)),
		categories: append([]domcat.Category(nil), categories...),
		catIndex:   make(map[string]int),
		byCategory: make(map[string][]string),
		fallback:   fallbackLang,
	}

	// Stable presentation order for categories.
	sort.SliceStable(s.categories, func(i, j int) bool {
		a, b := s.categories[i], s.categories[j]
		if a.Order() != b.Order() {
			return a.Order() < b.Order()
		}
		return a.ID() < b.ID()
	})

	for i := range s.categories {
		id := s.categories[i].ID()
		if _, dup := s.catIndex[id]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", domain.ErrInvalidCatalog, id)
		}
		s.catIndex[id] = i
	}

	for i := range s.records {
		rec := &s.records[i]
		if _, dup := s.recIndex[rec.ID()]; dup {
			return nil, fmt.Errorf("%w: duplicate record %q", domain.ErrInvalidCatalog, rec.ID())
		}
		if _, ok := s.catIndex[rec.CategoryID()]; !ok {
			return nil, fmt.Errorf(
				"%w: record %q references unknown category %q",
				domain.ErrInvalidCatalog, rec.ID(), rec.CategoryID(),
			)
		}
		s.recIndex[rec.ID()] = i
		s.byCategory[rec.CategoryID()] = append(s.byCategory[rec.CategoryID()], rec.ID())
	}

	return s, nil
}

// Records returns all records in load order. Callers must not mutate the
// returned slice.
func (s *Store) Records() []domcat.Record { return s.records }

// Record returns a record by ID.
func (s *Store) Record(id string) (domcat.Record, error) {
	i, ok := s.recIndex[id]
	if !ok {
		return domcat.Record{}, domain.ErrRecordNotFound
	}
	return s.records[i], nil
}

// Categories returns all categories in presentation order.
func (s *Store) Categories() []domcat.Category { return s.categories }

// Category returns a category by ID.
func (s *Store) Category(id string) (domcat.Category, error) {
	i, ok := s.catIndex[id]
	if !ok {
		return domcat.Category{}, domain.ErrCategoryNotFound
	}
	return s.categories[i], nil
}

// RecordIDsByCategory returns the record IDs of a category in load order.
func (s *Store) RecordIDsByCategory(categoryID string) []string {
	return s.byCategory[categoryID]
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// FallbackLanguage returns the language used when a localized field is
// absent for the requested language.
func (s *Store) FallbackLanguage() string { return s.fallback }
