package catalog

import (
	"errors"
	"testing"

	"github.com/kinetic-pages/showdex/internal/domain"
)

const validCatalog = `{
	"categories": [
		{"id": "workflow", "name": {"en": "Workflow"}, "order": 1},
		{"id": "tooling", "name": {"en": "Tooling"}, "order": 2, "icon": "wrench"}
	],
	"records": [
		{
			"id": "slash-commands",
			"category": "workflow",
			"status": "stable",
			"title": {"en": "Slash Commands", "zh": "斜杠命令"},
			"description": {"en": "Run predefined prompts"},
			"tags": ["commands", "prompts"],
			"examples": ["/review", "/compact"],
			"version": "1.2"
		},
		{
			"id": "background-commands",
			"category": "tooling",
			"status": "beta",
			"title": {"en": "Background Commands"}
		}
	]
}`

func TestParse(t *testing.T) {
	store, err := Parse([]byte(validCatalog), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}

	rec, err := store.Record("slash-commands")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Version() != "1.2" {
		t.Errorf("Version = %q", rec.Version())
	}
	if got := rec.Title().Resolve("zh", "en"); got != "斜杠命令" {
		t.Errorf("zh title = %q", got)
	}

	cats := store.Categories()
	if len(cats) != 2 || cats[0].ID() != "workflow" {
		t.Errorf("categories out of presentation order: %+v", cats)
	}
	if ids := store.RecordIDsByCategory("tooling"); len(ids) != 1 || ids[0] != "background-commands" {
		t.Errorf("RecordIDsByCategory(tooling) = %v", ids)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"records": [`},
		{"empty catalog", `{"categories": [], "records": []}`},
		{
			"dangling category",
			`{"categories": [{"id": "a", "name": {"en": "A"}}],
			  "records": [{"id": "r", "category": "missing", "status": "new", "title": {"en": "R"}}]}`,
		},
		{
			"title missing fallback",
			`{"categories": [{"id": "a", "name": {"en": "A"}}],
			  "records": [{"id": "r", "category": "a", "status": "new", "title": {"zh": "只有中文"}}]}`,
		},
		{
			"duplicate record id",
			`{"categories": [{"id": "a", "name": {"en": "A"}}],
			  "records": [
				{"id": "r", "category": "a", "status": "new", "title": {"en": "R"}},
				{"id": "r", "category": "a", "status": "new", "title": {"en": "R2"}}
			  ]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "en")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Errorf("error %v does not wrap ErrInvalidCatalog", err)
			}
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	store, err := Parse([]byte(validCatalog), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Record("nope"); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("Record(nope) err = %v", err)
	}
	if _, err := store.Category("nope"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Category(nope) err = %v", err)
	}
}

func TestProvider(t *testing.T) {
	var p Provider
	if _, ok := p.Get(); ok {
		t.Fatal("empty provider must report not ready")
	}
	store, err := Parse([]byte(validCatalog), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Set(store)
	got, ok := p.Get()
	if !ok || got != store {
		t.Error("provider must return the published store")
	}
}
