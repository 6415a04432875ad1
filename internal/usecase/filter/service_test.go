package filter

import (
	"testing"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
)

func res(id, categoryID string, status domcat.Status, title, version string) result.Result {
	return result.New(domcat.ReconstructRecord(domcat.RecordParams{
		ID:         id,
		CategoryID: categoryID,
		Status:     status,
		Title:      domcat.LocalizedText{"en": title},
		Version:    version,
	}), 0)
}

func fixture() []result.Result {
	return []result.Result{
		res("r1", "workflow", domcat.StatusStable, "Zeta", "1.0"),
		res("r2", "tooling", domcat.StatusBeta, "Alpha", "2.1"),
		res("r3", "workflow", domcat.StatusNew, "Midway", "1.5"),
	}
}

func ids(results []result.Result) []string {
	return result.IDs(results)
}

func TestApplyFilters_Status(t *testing.T) {
	svc := New()
	got := svc.ApplyFilters(fixture(), facet.New("", "beta", sortkey.None))
	if len(got) != 1 || got[0].ID() != "r2" {
		t.Errorf("filtered = %v", ids(got))
	}
}

func TestApplyFilters_ComposeWithAND(t *testing.T) {
	svc := New()
	state := facet.New("workflow", "new", sortkey.None)
	got := svc.ApplyFilters(fixture(), state)
	if len(got) != 1 || got[0].ID() != "r3" {
		t.Errorf("filtered = %v", ids(got))
	}
}

func TestApplyFilters_WildcardKeepsAll(t *testing.T) {
	svc := New()
	in := fixture()
	got := svc.ApplyFilters(in, facet.Default())
	if len(got) != len(in) {
		t.Errorf("wildcard filtered out records: %v", ids(got))
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	svc := New()
	state := facet.New("workflow", "", sortkey.None)
	once := svc.ApplyFilters(fixture(), state)
	twice := svc.ApplyFilters(once, state)
	if len(once) != len(twice) {
		t.Fatal("second application changed the set")
	}
	for i := range once {
		if once[i].ID() != twice[i].ID() {
			t.Fatal("second application changed the order")
		}
	}
}

func TestApplySort(t *testing.T) {
	svc := New()
	tests := []struct {
		key  sortkey.Key
		want []string
	}{
		{sortkey.Name, []string{"r2", "r3", "r1"}},
		{sortkey.Category, []string{"r2", "r3", "r1"}}, // tooling < workflow, then Midway < Zeta
		{sortkey.Status, []string{"r3", "r2", "r1"}},   // new < beta < stable
		{sortkey.Version, []string{"r2", "r3", "r1"}},  // 2.1 > 1.5 > 1.0
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := ids(svc.ApplySort(fixture(), tt.key, "en", "en"))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestApplySort_UnknownKeyIsIdentity(t *testing.T) {
	svc := New()
	in := fixture()
	got := svc.ApplySort(in, sortkey.Key("bogus"), "en", "en")
	for i := range in {
		if got[i].ID() != in[i].ID() {
			t.Fatal("unknown sort key must preserve order")
		}
	}
}

func TestApplySort_DoesNotMutateInput(t *testing.T) {
	svc := New()
	in := fixture()
	_ = svc.ApplySort(in, sortkey.Name, "en", "en")
	if in[0].ID() != "r1" {
		t.Error("sort must copy, not reorder the caller's slice")
	}
}

func TestApply_FiltersThenSorts(t *testing.T) {
	svc := New()
	state := facet.New("workflow", "", sortkey.Name)
	got := ids(svc.Apply(fixture(), state, "en", "en"))
	want := []string{"r3", "r1"} // workflow only, Midway < Zeta
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("pipeline = %v, want %v", got, want)
	}
}
