package result

import "github.com/kinetic-pages/showdex/internal/domain/catalog"

// Result is a single search hit: a catalog record annotated with a relevance
// score. The score is a computation artifact and is never stored on the
// record itself.
type Result struct {
	record catalog.Record
	score  float64
}

// New creates a search result.
func New(record catalog.Record, score float64) Result {
	return Result{record: record, score: score}
}

// Record returns the underlying catalog record.
func (r *Result) Record() catalog.Record { return r.record }

// ID returns the record identifier.
func (r *Result) ID() string {
	rec := r.record
	return rec.ID()
}

// Score returns the relevance score.
func (r *Result) Score() float64 { return r.score }

// IDs extracts the ordered record identifiers from a result sequence.
func IDs(results []Result) []string {
	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].ID()
	}
	return ids
}
