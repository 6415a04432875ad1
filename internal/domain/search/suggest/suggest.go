package suggest

// Kind identifies the source of a suggestion and the action it carries.
type Kind string

// Suggestion kinds.
const (
	// KindHistory re-runs a saved query.
	KindHistory Kind = "history"
	// KindRecord jumps straight to a record.
	KindRecord Kind = "record"
	// KindCategory switches to a category filter.
	KindCategory Kind = "category"
)

// Suggestion is one entry in the typeahead list. Exactly one action payload
// is set, matching the kind.
type Suggestion struct {
	kind       Kind
	label      string
	query      string
	recordID   string
	categoryID string
}

// History creates a saved-query suggestion.
func History(savedQuery string) Suggestion {
	return Suggestion{kind: KindHistory, label: savedQuery, query: savedQuery}
}

// Record creates a jump-to-record suggestion.
func Record(id, label string) Suggestion {
	return Suggestion{kind: KindRecord, label: label, recordID: id}
}

// Category creates a switch-to-category-filter suggestion.
func Category(id, label string) Suggestion {
	return Suggestion{kind: KindCategory, label: label, categoryID: id}
}

// Kind returns the suggestion kind.
func (s Suggestion) Kind() Kind { return s.kind }

// Label returns the display text.
func (s Suggestion) Label() string { return s.label }

// Query returns the saved query for KindHistory suggestions.
func (s Suggestion) Query() string { return s.query }

// RecordID returns the target record for KindRecord suggestions.
func (s Suggestion) RecordID() string { return s.recordID }

// CategoryID returns the target category for KindCategory suggestions.
func (s Suggestion) CategoryID() string { return s.categoryID }
