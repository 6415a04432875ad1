package view

import (
	"sync"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
)

// Catalog is the consumer interface for the tree projection.
type Catalog interface {
	Categories() []domcat.Category
	RecordIDsByCategory(categoryID string) []string
}

// Listener consumes projection directives. Presentation code (the WebSocket
// session, tests) registers here; the synchronizer never renders anything
// itself.
type Listener interface {
	OnDirective(d Directive)
}

// Synchronizer projects a ranked+filtered result sequence onto the dependent
// surfaces without re-deriving data. The grid re-renders from the ordered ID
// list; the navigation tree only toggles visibility so its expand/collapse
// state survives.
type Synchronizer struct {
	mu        sync.Mutex
	catalog   Catalog
	listeners []Listener
}

// New creates a synchronizer over a loaded catalog.
func New(catalog Catalog) *Synchronizer {
	return &Synchronizer{catalog: catalog}
}

// Subscribe registers a directive listener.
func (s *Synchronizer) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Apply projects the current result set. A direct search resolving to
// exactly one record selects it outright; zero results show the empty state;
// anything else re-renders the grid and recomputes tree visibility.
func (s *Synchronizer) Apply(results []result.Result, queryText string, direct bool) {
	switch {
	case direct && len(results) == 1:
		s.publish(Select(results[0].ID()))
	case len(results) == 0:
		s.publish(Empty(queryText))
	default:
		ids := result.IDs(results)
		hiddenRecords, hiddenCategories := s.treeVisibility(ids)
		s.publish(Results(ids, hiddenRecords, hiddenCategories))
	}
}

// SelectRecord publishes a jump straight to one record, bypassing the grid.
func (s *Synchronizer) SelectRecord(recordID string) {
	s.publish(Select(recordID))
}

// ShowSuggestions publishes the current suggestion list.
func (s *Synchronizer) ShowSuggestions(list []suggest.Suggestion) {
	s.publish(Suggestions(list))
}

// treeVisibility marks records outside the matching set as hidden, and hides
// every category node whose children are all hidden.
func (s *Synchronizer) treeVisibility(matching []string) (hiddenRecords, hiddenCategories []string) {
	visible := make(map[string]bool, len(matching))
	for _, id := range matching {
		visible[id] = true
	}

	for _, cat := range s.catalog.Categories() {
		children := s.catalog.RecordIDsByCategory(cat.ID())
		anyVisible := false
		for _, id := range children {
			if visible[id] {
				anyVisible = true
			} else {
				hiddenRecords = append(hiddenRecords, id)
			}
		}
		if !anyVisible {
			hiddenCategories = append(hiddenCategories, cat.ID())
		}
	}
	return hiddenRecords, hiddenCategories
}

func (s *Synchronizer) publish(d Directive) {
	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.OnDirective(d)
	}
}
