package showdex

import (
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
)

// Sort selects the result ordering applied after relevance ranking.
type Sort string

// Available sort keys. SortNone keeps relevance order.
const (
	SortNone     Sort = ""
	SortName     Sort = Sort(sortkey.Name)
	SortCategory Sort = Sort(sortkey.Category)
	SortStatus   Sort = Sort(sortkey.Status)
	SortVersion  Sort = Sort(sortkey.Version)
)

// Record is a catalog entry with its localized fields resolved.
type Record struct {
	ID          string
	Category    string
	Status      string
	Title       string
	Description string
	Details     string
	Tags        []string
	Examples    []string
	Version     string
}

// Result is a record with its relevance score.
type Result struct {
	Record
	Score float64
}

// Category is a catalog grouping node.
type Category struct {
	ID          string
	Name        string
	Icon        string
	Order       int
	RecordCount int
}

// SuggestionKind identifies the source and action of a typeahead entry.
type SuggestionKind string

// Suggestion kinds.
const (
	SuggestionHistory  SuggestionKind = SuggestionKind(suggest.KindHistory)
	SuggestionRecord   SuggestionKind = SuggestionKind(suggest.KindRecord)
	SuggestionCategory SuggestionKind = SuggestionKind(suggest.KindCategory)
)

// Suggestion is one typeahead entry. Only the field matching Kind is set:
// Query for history entries, RecordID for records, CategoryID for categories.
type Suggestion struct {
	Kind       SuggestionKind
	Label      string
	Query      string
	RecordID   string
	CategoryID string
}

// Weights holds the relevance heuristic constants. Zero values fall back to
// the defaults.
type Weights struct {
	TitleSubstring  float64
	TitleExactBonus float64
	Description     float64
	Tag             float64
	TagExactBonus   float64
	Example         float64
	CategoryName    float64
	FuzzyScale      float64
	FuzzyThreshold  float64
}

func recordFromDomain(rec domcat.Record, lang, fallback string) Record {
	return Record{
		ID:          rec.ID(),
		Category:    rec.CategoryID(),
		Status:      string(rec.Status()),
		Title:       rec.Title().Resolve(lang, fallback),
		Description: rec.Description().Resolve(lang, fallback),
		Details:     rec.Details().Resolve(lang, fallback),
		Tags:        rec.Tags(),
		Examples:    rec.Examples(),
		Version:     rec.Version(),
	}
}

func resultsFromDomain(results []result.Result, store *catalogrepo.Store, lang string) []Result {
	out := make([]Result, len(results))
	for i := range results {
		out[i] = Result{
			Record: recordFromDomain(results[i].Record(), lang, store.FallbackLanguage()),
			Score:  results[i].Score(),
		}
	}
	return out
}

func suggestionFromDomain(s suggest.Suggestion) Suggestion {
	out := Suggestion{
		Kind:  SuggestionKind(s.Kind()),
		Label: s.Label(),
	}
	switch s.Kind() {
	case suggest.KindHistory:
		out.Query = s.Query()
	case suggest.KindRecord:
		out.RecordID = s.RecordID()
	case suggest.KindCategory:
		out.CategoryID = s.CategoryID()
	}
	return out
}
