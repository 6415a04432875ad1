package query

import (
	"testing"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
)

func TestSuggester_Build(t *testing.T) {
	s := NewSuggester(fixtureCatalog(), DefaultCaps())

	t.Run("below minimum length returns nil", func(t *testing.T) {
		if got := s.Build("c", "en", nil); got != nil {
			t.Fatalf("Build(%q) = %v, want nil", "c", got)
		}
	})

	t.Run("history before records before categories", func(t *testing.T) {
		got := s.Build("oo", "en", []string{"hooks workflow"})
		kinds := make([]suggest.Kind, len(got))
		for i, sg := range got {
			kinds[i] = sg.Kind()
		}
		// "oo" hits the saved query, the Hooks record, and the Tooling category.
		want := []suggest.Kind{suggest.KindHistory, suggest.KindRecord, suggest.KindCategory}
		if len(kinds) != len(want) {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
		for i := range want {
			if kinds[i] != want[i] {
				t.Fatalf("kinds = %v, want %v", kinds, want)
			}
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		got := s.Build("SLASH", "en", nil)
		if len(got) != 1 || got[0].RecordID() != "1" {
			t.Fatalf("Build(SLASH) = %v, want record 1", got)
		}
		if got[0].Label() != "Slash Commands" {
			t.Errorf("label = %q, want resolved title", got[0].Label())
		}
	})

	t.Run("history keeps most recent first", func(t *testing.T) {
		got := s.Build("install", "en", []string{"install redis", "install older"})
		if len(got) != 2 {
			t.Fatalf("got %d suggestions, want 2", len(got))
		}
		if got[0].Query() != "install redis" || got[1].Query() != "install older" {
			t.Errorf("history order = [%q %q]", got[0].Query(), got[1].Query())
		}
	})
}

func TestSuggester_Caps(t *testing.T) {
	records := make([]domcat.Record, 0, 12)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		records = append(records, fixtureRecord(id, "workflow", "Widget "+id))
	}
	cat := &mockCatalog{
		records: records,
		categories: []domcat.Category{
			domcat.ReconstructCategory("workflow", domcat.LocalizedText{"en": "Widget Makers"}, 1, ""),
		},
	}
	history := []string{"widget one", "widget two", "widget three", "widget four"}

	s := NewSuggester(cat, DefaultCaps())
	got := s.Build("widget", "en", history)

	var nHistory, nRecords, nCategories int
	for _, sg := range got {
		switch sg.Kind() {
		case suggest.KindHistory:
			nHistory++
		case suggest.KindRecord:
			nRecords++
		case suggest.KindCategory:
			nCategories++
		}
	}
	if nHistory != 3 {
		t.Errorf("history entries = %d, want capped at 3", nHistory)
	}
	if nRecords != 5 {
		t.Errorf("record entries = %d, want capped at 5", nRecords)
	}
	if len(got) > 8 {
		t.Errorf("total = %d, want at most 8", len(got))
	}
}
