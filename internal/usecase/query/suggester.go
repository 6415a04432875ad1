package query

import (
	"strings"

	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
	"github.com/kinetic-pages/showdex/internal/metrics"
)

// Caps bound the suggestion list per source and in total.
type Caps struct {
	History    int
	Records    int
	Categories int
	Total      int
}

// DefaultCaps returns the stock suggestion limits.
func DefaultCaps() Caps {
	return Caps{History: 3, Records: 5, Categories: 3, Total: 8}
}

// Suggester builds the typeahead list from recent history, live record
// titles, and category names. Unlike the search itself, suggestions are
// never debounced; they fire as soon as the input is long enough.
type Suggester struct {
	catalog Catalog
	caps    Caps
}

// NewSuggester creates a suggester.
func NewSuggester(catalog Catalog, caps Caps) *Suggester {
	return &Suggester{catalog: catalog, caps: caps}
}

// Build assembles suggestions for the given input. history is expected
// most-recent-first. Returns nil below the minimum input length.
func (s *Suggester) Build(text, lang string, history []string) []suggest.Suggestion {
	term := strings.ToLower(strings.TrimSpace(text))
	if len([]rune(term)) < domquery.MinSuggestLength {
		return nil
	}

	fallback := s.catalog.FallbackLanguage()
	list := make([]suggest.Suggestion, 0, s.caps.Total)

	count := 0
	for _, saved := range history {
		if count == s.caps.History {
			break
		}
		if strings.Contains(strings.ToLower(saved), term) {
			list = append(list, suggest.History(saved))
			metrics.SuggestionsTotal.WithLabelValues(string(suggest.KindHistory)).Inc()
			count++
		}
	}

	count = 0
	for _, rec := range s.catalog.Records() {
		if count == s.caps.Records {
			break
		}
		title := rec.Title().Resolve(lang, fallback)
		if strings.Contains(strings.ToLower(title), term) {
			list = append(list, suggest.Record(rec.ID(), title))
			metrics.SuggestionsTotal.WithLabelValues(string(suggest.KindRecord)).Inc()
			count++
		}
	}

	count = 0
	for _, cat := range s.catalog.Categories() {
		if count == s.caps.Categories {
			break
		}
		name := cat.Name().Resolve(lang, fallback)
		if strings.Contains(strings.ToLower(name), term) {
			list = append(list, suggest.Category(cat.ID(), name))
			metrics.SuggestionsTotal.WithLabelValues(string(suggest.KindCategory)).Inc()
			count++
		}
	}

	if len(list) > s.caps.Total {
		list = list[:s.caps.Total]
	}
	return list
}
