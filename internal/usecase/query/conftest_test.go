package query

import (
	"context"
	"sync"
	"time"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
)

// --- Mocks ---

type mockSearcher struct {
	mu      sync.Mutex
	lang    string
	catalog *mockCatalog
	calls   []string
}

func (m *mockSearcher) Search(q domquery.Query) ([]result.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, q.Text())
	m.mu.Unlock()

	var out []result.Result
	for _, rec := range m.catalog.records {
		if q.IsBlank() {
			out = append(out, result.New(rec, 0))
			continue
		}
		title := rec.Title().Resolve(q.Language(), "en")
		if containsFold(title, q.Normalized()) {
			out = append(out, result.New(rec, 1))
		}
	}
	return out, nil
}

func (m *mockSearcher) Language() string { return m.lang }

func (m *mockSearcher) searchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// passFilter applies no narrowing unless a category facet is active.
type passFilter struct{}

func (passFilter) Apply(results []result.Result, state facet.State, _, _ string) []result.Result {
	if !state.CategoryActive() {
		return results
	}
	var out []result.Result
	for _, r := range results {
		rec := r.Record()
		if rec.CategoryID() == state.Category() {
			out = append(out, r)
		}
	}
	return out
}

type mockCatalog struct {
	records    []domcat.Record
	categories []domcat.Category
}

func (m *mockCatalog) Records() []domcat.Record      { return m.records }
func (m *mockCatalog) Categories() []domcat.Category { return m.categories }
func (m *mockCatalog) FallbackLanguage() string      { return "en" }

type appliedCall struct {
	ids    []string
	text   string
	direct bool
}

type mockPresenter struct {
	mu          sync.Mutex
	applied     []appliedCall
	selected    []string
	suggestions [][]suggest.Suggestion
}

func (m *mockPresenter) Apply(results []result.Result, queryText string, direct bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = append(m.applied, appliedCall{ids: result.IDs(results), text: queryText, direct: direct})
}

func (m *mockPresenter) SelectRecord(recordID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = append(m.selected, recordID)
}

func (m *mockPresenter) ShowSuggestions(list []suggest.Suggestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suggestions = append(m.suggestions, list)
}

func (m *mockPresenter) appliedCalls() []appliedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]appliedCall(nil), m.applied...)
}

func (m *mockPresenter) lastSuggestions() []suggest.Suggestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.suggestions) == 0 {
		return nil
	}
	return m.suggestions[len(m.suggestions)-1]
}

type memHistory struct {
	mu      sync.Mutex
	entries []string
	saves   int
	loadErr bool
}

func (m *memHistory) Load(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr {
		return nil
	}
	return append([]string(nil), m.entries...)
}

func (m *memHistory) Save(_ context.Context, entries []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]string(nil), entries...)
	m.saves++
}

// --- Fixtures ---

func containsFold(haystack, needle string) bool {
	return needle == "" || indexFold(haystack, needle) >= 0
}

func indexFold(haystack, needle string) int {
	h := []rune(haystack)
	n := []rune(needle)
	for i := 0; i+len(n) <= len(h); i++ {
		match := true
		for j := range n {
			if lower(h[i+j]) != lower(n[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}

func fixtureRecord(id, categoryID, title string) domcat.Record {
	return domcat.ReconstructRecord(domcat.RecordParams{
		ID:         id,
		CategoryID: categoryID,
		Status:     domcat.StatusStable,
		Title:      domcat.LocalizedText{"en": title},
	})
}

func fixtureCatalog() *mockCatalog {
	return &mockCatalog{
		records: []domcat.Record{
			fixtureRecord("1", "workflow", "Slash Commands"),
			fixtureRecord("2", "workflow", "Background Commands"),
			fixtureRecord("3", "tooling", "Hooks"),
		},
		categories: []domcat.Category{
			domcat.ReconstructCategory("workflow", domcat.LocalizedText{"en": "Workflow"}, 1, ""),
			domcat.ReconstructCategory("tooling", domcat.LocalizedText{"en": "Tooling"}, 2, ""),
		},
	}
}

const testDebounce = 20 * time.Millisecond

func settle() {
	time.Sleep(6 * testDebounce)
}
