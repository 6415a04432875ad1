package filter

import (
	"sort"
	"strings"

	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
)

// Service narrows a result sequence by facet predicates and applies the
// active sort. It never touches the full store: composition order is fixed
// as search → facets → sort, each over the already-narrowed set.
type Service struct{}

// New creates a filter service.
func New() *Service {
	return &Service{}
}

// Apply runs facet narrowing and then the sort from a single facet state.
func (s *Service) Apply(results []result.Result, state facet.State, lang, fallback string) []result.Result {
	return s.ApplySort(s.ApplyFilters(results, state), state.Sort(), lang, fallback)
}

// ApplyFilters keeps only results whose fields equal every non-wildcard
// facet. Facets compose with logical AND. The input is never mutated and a
// second application with the same state is a no-op.
func (s *Service) ApplyFilters(results []result.Result, state facet.State) []result.Result {
	if !state.CategoryActive() && !state.StatusActive() {
		return results
	}
	kept := make([]result.Result, 0, len(results))
	for _, r := range results {
		rec := r.Record()
		if state.CategoryActive() && rec.CategoryID() != state.Category() {
			continue
		}
		if state.StatusActive() && string(rec.Status()) != state.Status() {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// ApplySort orders results by the given key. Sorting is stable and total;
// an unknown key preserves the incoming order and is never an error.
func (s *Service) ApplySort(results []result.Result, key sortkey.Key, lang, fallback string) []result.Result {
	if key == sortkey.None || !key.IsValid() {
		return results
	}

	sorted := append([]result.Result(nil), results...)
	name := func(r *result.Result) string {
		rec := r.Record()
		return strings.ToLower(rec.Title().Resolve(lang, fallback))
	}

	switch key {
	case sortkey.Name:
		sort.SliceStable(sorted, func(i, j int) bool {
			return name(&sorted[i]) < name(&sorted[j])
		})
	case sortkey.Category:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].Record(), sorted[j].Record()
			if a.CategoryID() != b.CategoryID() {
				return a.CategoryID() < b.CategoryID()
			}
			return name(&sorted[i]) < name(&sorted[j])
		})
	case sortkey.Status:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].Record(), sorted[j].Record()
			if a.Status().Rank() != b.Status().Rank() {
				return a.Status().Rank() < b.Status().Rank()
			}
			return name(&sorted[i]) < name(&sorted[j])
		})
	case sortkey.Version:
		// Reverse lexicographic: the newest-looking label first.
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].Record(), sorted[j].Record()
			return a.Version() > b.Version()
		})
	}
	return sorted
}
