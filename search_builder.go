package showdex

import (
	"fmt"

	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
)

// SearchBuilder is a fluent builder for ranked, faceted searches.
type SearchBuilder struct {
	client *Client

	text     string
	lang     string
	category string
	status   string
	sort     Sort
}

// InCategory narrows results to one category.
func (b *SearchBuilder) InCategory(id string) *SearchBuilder {
	b.category = id
	return b
}

// WithStatus narrows results to one lifecycle status.
func (b *SearchBuilder) WithStatus(status string) *SearchBuilder {
	b.status = status
	return b
}

// SortBy reorders results after relevance ranking.
func (b *SearchBuilder) SortBy(s Sort) *SearchBuilder {
	b.sort = s
	return b
}

// InLanguage overrides the client's active language for this search only.
func (b *SearchBuilder) InLanguage(lang string) *SearchBuilder {
	b.lang = lang
	return b
}

// Do executes the search pipeline: rank, filter, sort.
func (b *SearchBuilder) Do() ([]Result, error) {
	lang := b.lang
	if lang == "" {
		lang = b.client.engine.Language()
	}

	sort := sortkey.Key(b.sort)
	if !sort.IsValid() {
		return nil, fmt.Errorf("showdex: unknown sort key %q", b.sort)
	}

	q, err := domquery.New(b.text, lang)
	if err != nil {
		return nil, fmt.Errorf("showdex: build query: %w", err)
	}

	results, err := b.client.engine.Search(q)
	if err != nil {
		return nil, fmt.Errorf("showdex: search: %w", err)
	}

	state := facet.New(b.category, b.status, sort)
	filtered := b.client.filters.Apply(results, state, lang, b.client.store.FallbackLanguage())

	return resultsFromDomain(filtered, b.client.store, lang), nil
}
