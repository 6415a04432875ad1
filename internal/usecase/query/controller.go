package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
)

// State is the controller's interaction phase.
type State string

// Interaction states.
const (
	// StateIdle means the input is empty.
	StateIdle State = "idle"
	// StatePending means text was entered and the debounce slot is armed.
	StatePending State = "pending"
	// StateResolved means the debounce elapsed and results were presented.
	StateResolved State = "resolved"
)

// Key is a navigation key event over the suggestion list.
type Key string

// Navigation keys.
const (
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyEnter  Key = "enter"
	KeyEscape Key = "escape"
)

// Config holds the controller tunables.
type Config struct {
	// DebounceDelay is the quiet period before a keystroke triggers a search.
	DebounceDelay time.Duration
	// HistoryCapacity bounds the recency list of executed queries.
	HistoryCapacity int
	// SuggestionCaps bounds the typeahead list.
	SuggestionCaps Caps
}

// DefaultConfig returns the stock controller tunables.
func DefaultConfig() Config {
	return Config{
		DebounceDelay:   300 * time.Millisecond,
		HistoryCapacity: 10,
		SuggestionCaps:  DefaultCaps(),
	}
}

// Controller owns the live input interaction state machine: debouncing,
// suggestion generation, keyboard navigation, and query history. One
// controller serves one input surface (one WebSocket session).
type Controller struct {
	searcher  Searcher
	filters   Filterer
	catalog   Catalog
	presenter Presenter
	suggester *Suggester
	cfg       Config
	logger    *zap.Logger

	mu           sync.Mutex
	text         string
	state        State
	facets       facet.State
	history      []string
	histStore    HistoryStore
	pendingSeq   uint64
	pendingTimer *time.Timer
	suggestions  []suggest.Suggestion
	highlighted  int
}

// New creates a controller. History is in-memory only until WithHistory
// attaches a durable store.
func New(
	searcher Searcher, filters Filterer, catalog Catalog, presenter Presenter,
	cfg Config, logger *zap.Logger,
) *Controller {
	return &Controller{
		searcher:    searcher,
		filters:     filters,
		catalog:     catalog,
		presenter:   presenter,
		suggester:   NewSuggester(catalog, cfg.SuggestionCaps),
		cfg:         cfg,
		logger:      logger,
		state:       StateIdle,
		facets:      facet.Default(),
		highlighted: -1,
	}
}

// WithHistory attaches a durable history store and loads the saved list.
func (c *Controller) WithHistory(ctx context.Context, store HistoryStore) *Controller {
	entries := store.Load(ctx)
	c.mu.Lock()
	c.histStore = store
	c.history = entries
	c.mu.Unlock()
	return c
}

// OnInput handles one keystroke's worth of new text. Every call supersedes
// the previously scheduled search: at most one search executes per quiet
// period. Suggestions fire immediately once the input is long enough.
func (c *Controller) OnInput(text string) {
	c.mu.Lock()
	c.text = text
	c.supersedeLocked()

	if strings.TrimSpace(text) == "" {
		c.state = StateIdle
		c.suggestions = nil
		c.highlighted = -1
		c.mu.Unlock()
		c.presenter.ShowSuggestions(nil)
		return
	}

	c.state = StatePending
	list := c.suggester.Build(text, c.searcher.Language(), c.history)
	c.suggestions = list
	c.highlighted = -1
	c.scheduleLocked(text)
	c.mu.Unlock()

	c.presenter.ShowSuggestions(list)
}

// OnKey handles navigation over the rendered suggestion list. Navigation
// wraps circularly in both directions.
func (c *Controller) OnKey(k Key) {
	c.mu.Lock()
	switch k {
	case KeyDown:
		if n := len(c.suggestions); n > 0 {
			c.highlighted = (c.highlighted + 1) % n
		}
		c.mu.Unlock()

	case KeyUp:
		if n := len(c.suggestions); n > 0 {
			if c.highlighted <= 0 {
				c.highlighted = n - 1
			} else {
				c.highlighted--
			}
		}
		c.mu.Unlock()

	case KeyEnter:
		if c.highlighted >= 0 && c.highlighted < len(c.suggestions) {
			chosen := c.suggestions[c.highlighted]
			c.supersedeLocked()
			c.mu.Unlock()
			c.activate(chosen)
			return
		}
		text := c.text
		c.supersedeLocked()
		c.mu.Unlock()
		c.runSearch(text, true)

	case KeyEscape:
		c.mu.Unlock()
		c.Clear()

	default:
		c.mu.Unlock()
	}
}

// Clear resets the controller to its defaults: empty text, wildcard facets,
// no suggestions, no pending search.
func (c *Controller) Clear() {
	c.mu.Lock()
	c.text = ""
	c.state = StateIdle
	c.facets = facet.Default()
	c.suggestions = nil
	c.highlighted = -1
	c.supersedeLocked()
	c.mu.Unlock()

	c.presenter.ShowSuggestions(nil)
}

// SetFilters replaces the facet state and re-presents the current query
// under the new narrowing.
func (c *Controller) SetFilters(state facet.State) {
	c.mu.Lock()
	c.facets = state
	text := c.text
	c.mu.Unlock()

	c.runSearch(text, false)
}

// Close releases the pending debounce slot.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supersedeLocked()
}

// State returns the current interaction phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Suggestions returns a copy of the current suggestion list.
func (c *Controller) Suggestions() []suggest.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]suggest.Suggestion(nil), c.suggestions...)
}

// Highlighted returns the index of the highlighted suggestion, -1 for none.
func (c *Controller) Highlighted() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlighted
}

// History returns a copy of the recency list, most recent first.
func (c *Controller) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.history...)
}

// scheduleLocked arms the single debounce slot for text. The previous slot,
// if any, is invalidated first: this is cancellation by superseding, not
// task cancellation. Work that already started is never interrupted.
// Callers must hold c.mu.
func (c *Controller) scheduleLocked(text string) {
	c.pendingSeq++
	seq := c.pendingSeq
	c.pendingTimer = time.AfterFunc(c.cfg.DebounceDelay, func() {
		c.resolve(text, seq)
	})
}

// supersedeLocked invalidates the pending slot. Callers must hold c.mu.
func (c *Controller) supersedeLocked() {
	c.pendingSeq++
	if c.pendingTimer != nil {
		c.pendingTimer.Stop()
		c.pendingTimer = nil
	}
}

// resolve fires when the debounce elapses. A stale sequence number means the
// slot was superseded after this timer was armed but before it ran.
func (c *Controller) resolve(text string, seq uint64) {
	c.mu.Lock()
	if seq != c.pendingSeq {
		c.mu.Unlock()
		return
	}
	c.pendingTimer = nil
	c.mu.Unlock()

	c.runSearch(text, false)
}

// runSearch executes the full pipeline: search → facet narrowing → sort →
// presentation, then records the query in history.
func (c *Controller) runSearch(text string, direct bool) {
	lang := c.searcher.Language()
	q, err := domquery.New(text, lang)
	if err != nil {
		c.logger.Warn("rejected query", zap.Error(err))
		return
	}

	results, err := c.searcher.Search(q)
	if err != nil {
		c.logger.Warn("search refused", zap.Error(err))
		return
	}

	c.mu.Lock()
	c.state = StateResolved
	filtered := c.filters.Apply(results, c.facets, lang, c.catalog.FallbackLanguage())
	var snapshot []string
	persist := false
	if !q.IsBlank() {
		c.pushHistoryLocked(strings.TrimSpace(text))
		snapshot = append([]string(nil), c.history...)
		persist = c.histStore != nil
	}
	store := c.histStore
	c.mu.Unlock()

	if persist {
		store.Save(context.Background(), snapshot)
	}
	c.presenter.Apply(filtered, text, direct)
}

// pushHistoryLocked prepends an executed query, promoting duplicates to the
// front rather than double-listing them. Callers must hold c.mu.
func (c *Controller) pushHistoryLocked(entry string) {
	kept := make([]string, 0, len(c.history)+1)
	kept = append(kept, entry)
	for _, h := range c.history {
		if h != entry {
			kept = append(kept, h)
		}
	}
	if len(kept) > c.cfg.HistoryCapacity {
		kept = kept[:c.cfg.HistoryCapacity]
	}
	c.history = kept
}

// activate performs the action carried by a chosen suggestion.
func (c *Controller) activate(s suggest.Suggestion) {
	switch s.Kind() {
	case suggest.KindHistory:
		c.mu.Lock()
		c.text = s.Query()
		c.mu.Unlock()
		c.runSearch(s.Query(), false)

	case suggest.KindRecord:
		c.presenter.SelectRecord(s.RecordID())

	case suggest.KindCategory:
		c.mu.Lock()
		c.facets = c.facets.WithCategory(s.CategoryID())
		text := c.text
		c.mu.Unlock()
		c.runSearch(text, false)
	}
}
