package search

import (
	"testing"

	"github.com/kinetic-pages/showdex/internal/domain"
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/query"
)

// mockCatalog implements the Catalog consumer interface for tests.
type mockCatalog struct {
	records    []domcat.Record
	categories map[string]domcat.Category
	fallback   string
}

func (m *mockCatalog) Records() []domcat.Record { return m.records }

func (m *mockCatalog) Category(id string) (domcat.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return domcat.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (m *mockCatalog) FallbackLanguage() string { return m.fallback }

func makeRecord(id, title string, mutate ...func(*domcat.RecordParams)) domcat.Record {
	p := domcat.RecordParams{
		ID:         id,
		CategoryID: "general",
		Status:     domcat.StatusStable,
		Title:      domcat.LocalizedText{"en": title},
	}
	for _, m := range mutate {
		m(&p)
	}
	return domcat.ReconstructRecord(p)
}

func commandsCatalog() *mockCatalog {
	return &mockCatalog{
		records: []domcat.Record{
			makeRecord("1", "Slash Commands"),
			makeRecord("2", "Background Commands"),
		},
		categories: map[string]domcat.Category{
			"general": domcat.ReconstructCategory("general", domcat.LocalizedText{"en": "General"}, 1, ""),
		},
		fallback: "en",
	}
}

func mustQuery(t *testing.T, text, lang string) query.Query {
	t.Helper()
	q, err := query.New(text, lang)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return q
}
