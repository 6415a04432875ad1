package facet

import "github.com/kinetic-pages/showdex/internal/domain/search/sortkey"

// Wildcard selects every value of a facet.
const Wildcard = "all"

// State holds the current facet selections and sort order. The zero value is
// not valid; use Default or New.
type State struct {
	category string
	status   string
	sort     sortkey.Key
}

// Default returns the all-wildcard state with no sort.
func Default() State {
	return State{category: Wildcard, status: Wildcard, sort: sortkey.None}
}

// New creates a State. Empty facet values normalize to the wildcard.
func New(category, status string, sort sortkey.Key) State {
	if category == "" {
		category = Wildcard
	}
	if status == "" {
		status = Wildcard
	}
	return State{category: category, status: status, sort: sort}
}

// Category returns the selected category facet (Wildcard for all).
func (s State) Category() string { return s.category }

// Status returns the selected status facet (Wildcard for all).
func (s State) Status() string { return s.status }

// Sort returns the active sort key.
func (s State) Sort() sortkey.Key { return s.sort }

// WithCategory returns a copy with the category facet replaced.
func (s State) WithCategory(category string) State {
	return New(category, s.status, s.sort)
}

// WithStatus returns a copy with the status facet replaced.
func (s State) WithStatus(status string) State {
	return New(s.category, status, s.sort)
}

// WithSort returns a copy with the sort key replaced.
func (s State) WithSort(sort sortkey.Key) State {
	return New(s.category, s.status, sort)
}

// CategoryActive reports whether the category facet narrows the set.
func (s State) CategoryActive() bool { return s.category != Wildcard }

// StatusActive reports whether the status facet narrows the set.
func (s State) StatusActive() bool { return s.status != Wildcard }

// IsDefault reports whether every facet is the wildcard and no sort is set.
func (s State) IsDefault() bool { return s == Default() }
