package search

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/domain"
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/metrics"
)

// Engine scores the whole catalog against a query, ranks the hits, and
// caches the ranked sequence per (query, language) pair. Scoring is CPU-only
// and synchronous; there is nothing to cancel once it starts.
type Engine struct {
	mu       sync.Mutex
	catalog  Catalog
	scorer   RecordScorer
	language string
	cache    map[query.Key][]result.Result
	logger   *zap.Logger
}

// New creates an engine. It refuses searches until Bind publishes a loaded
// catalog.
func New(scorer RecordScorer, defaultLanguage string, logger *zap.Logger) *Engine {
	return &Engine{
		scorer:   scorer,
		language: defaultLanguage,
		cache:    make(map[query.Key][]result.Result),
		logger:   logger,
	}
}

// Bind attaches the loaded catalog. The catalog is immutable for the
// session, so the cache is never invalidated by catalog changes.
func (e *Engine) Bind(c Catalog) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.catalog = c
}

// Ready reports whether the catalog has been loaded.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog != nil
}

// Language returns the active language.
func (e *Engine) Language() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.language
}

// SetLanguage switches the active language. Relevance text differs per
// language, so the entire cache is dropped on a change.
func (e *Engine) SetLanguage(lang string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if lang == e.language {
		return
	}
	e.language = lang
	e.cache = make(map[query.Key][]result.Result)
}

// Search returns the ranked result sequence for a query. A blank query
// returns the full catalog in load order with no ranking and no cache entry.
// Results are ordered by score descending; ties keep load order.
func (e *Engine) Search(q query.Query) ([]result.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.catalog == nil {
		return nil, domain.ErrNotReady
	}

	if q.IsBlank() {
		metrics.SearchesTotal.WithLabelValues("blank").Inc()
		return e.allRecords(), nil
	}

	key := q.Key()
	if cached, ok := e.cache[key]; ok {
		metrics.SearchesTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}

	start := time.Now()
	ranked := e.rank(q)
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchesTotal.WithLabelValues("miss").Inc()

	e.cache[key] = ranked
	return ranked, nil
}

func (e *Engine) allRecords() []result.Result {
	records := e.catalog.Records()
	all := make([]result.Result, 0, len(records))
	for _, rec := range records {
		all = append(all, result.New(rec, 0))
	}
	return all
}

func (e *Engine) rank(q query.Query) []result.Result {
	term := q.Normalized()
	lang := q.Language()
	fallback := e.catalog.FallbackLanguage()

	var ranked []result.Result
	for _, rec := range e.catalog.Records() {
		categoryName := ""
		if cat, err := e.catalog.Category(rec.CategoryID()); err == nil {
			categoryName = cat.Name().Resolve(lang, fallback)
		}
		score := e.scoreRecord(rec, categoryName, term, lang, fallback)
		if score > 0 {
			ranked = append(ranked, result.New(rec, score))
		}
	}

	// Stable: equal scores keep catalog load order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// scoreRecord rates one record, treating a scoring panic on a malformed
// record as a zero-score non-match so a single bad record cannot abort the
// whole search.
func (e *Engine) scoreRecord(rec domcat.Record, categoryName, term, lang, fallback string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
			metrics.ScoringFailuresTotal.Inc()
			e.logger.Warn("scoring failed, record excluded",
				zap.String("record", rec.ID()),
				zap.Any("panic", r),
			)
		}
	}()
	return e.scorer.Score(rec, categoryName, term, lang, fallback)
}
