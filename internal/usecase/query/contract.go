package query

import (
	"context"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
)

// Searcher is the ranked search engine.
type Searcher interface {
	Search(q domquery.Query) ([]result.Result, error)
	Language() string
}

// Filterer narrows and sorts a result sequence by facet state.
type Filterer interface {
	Apply(results []result.Result, state facet.State, lang, fallback string) []result.Result
}

// Catalog is the consumer interface for suggestion generation.
type Catalog interface {
	Records() []domcat.Record
	Categories() []domcat.Category
	FallbackLanguage() string
}

// Presenter receives projection updates (the view synchronizer).
type Presenter interface {
	Apply(results []result.Result, queryText string, direct bool)
	SelectRecord(recordID string)
	ShowSuggestions(list []suggest.Suggestion)
}

// HistoryStore persists the bounded recency list of executed queries.
// Implementations must degrade silently: Load returns an empty list on
// failure and Save never reports an error.
type HistoryStore interface {
	Load(ctx context.Context) []string
	Save(ctx context.Context, entries []string)
}
