package view

import "github.com/kinetic-pages/showdex/internal/domain/search/suggest"

// Kind identifies a directive.
type Kind string

// Directive kinds.
const (
	// KindSelect bypasses the result list and opens one record directly.
	KindSelect Kind = "select"
	// KindResults re-renders the grid and toggles tree visibility.
	KindResults Kind = "results"
	// KindEmpty shows the no-results state (a valid display, not an error).
	KindEmpty Kind = "empty"
	// KindSuggestions replaces the suggestion list.
	KindSuggestions Kind = "suggestions"
)

// Directive is one projection instruction for the UI collaborators.
// Only the fields matching the kind are populated.
type Directive struct {
	kind Kind

	recordID string

	ids              []string
	hiddenRecords    []string
	hiddenCategories []string

	query string

	suggestions []suggest.Suggestion
}

// Select creates a single-record selection directive.
func Select(recordID string) Directive {
	return Directive{kind: KindSelect, recordID: recordID}
}

// Results creates a grid/tree projection directive.
func Results(ids, hiddenRecords, hiddenCategories []string) Directive {
	return Directive{
		kind:             KindResults,
		ids:              ids,
		hiddenRecords:    hiddenRecords,
		hiddenCategories: hiddenCategories,
	}
}

// Empty creates a no-results directive for the given query text.
func Empty(query string) Directive {
	return Directive{kind: KindEmpty, query: query}
}

// Suggestions creates a suggestion-list directive.
func Suggestions(list []suggest.Suggestion) Directive {
	return Directive{kind: KindSuggestions, suggestions: list}
}

// Kind returns the directive kind.
func (d Directive) Kind() Kind { return d.kind }

// RecordID returns the selected record for KindSelect.
func (d Directive) RecordID() string { return d.recordID }

// IDs returns the ordered matching record IDs for KindResults.
func (d Directive) IDs() []string { return d.ids }

// HiddenRecords returns the tree nodes to hide for KindResults.
func (d Directive) HiddenRecords() []string { return d.hiddenRecords }

// HiddenCategories returns the grouping nodes to hide for KindResults.
func (d Directive) HiddenCategories() []string { return d.hiddenCategories }

// Query returns the query text for KindEmpty.
func (d Directive) Query() string { return d.query }

// Suggestions returns the list for KindSuggestions.
func (d Directive) Suggestions() []suggest.Suggestion { return d.suggestions }
