package showdex

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
	filteruc "github.com/kinetic-pages/showdex/internal/usecase/filter"
	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
)

// Client is the embedded showdex entry point. It is safe for concurrent use.
type Client struct {
	store   *catalogrepo.Store
	engine  *searchuc.Engine
	filters *filteruc.Service
	caps    queryuc.Caps
}

// New creates a Client and loads the catalog synchronously. A catalog source
// is required (use WithCatalogFile or WithCatalogJSON).
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		fallbackLanguage: "en",
		weights:          searchuc.DefaultWeights(),
		caps:             queryuc.DefaultCaps(),
		logger:           zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.defaultLanguage == "" {
		cfg.defaultLanguage = cfg.fallbackLanguage
	}

	var (
		store *catalogrepo.Store
		err   error
	)
	switch {
	case len(cfg.catalogData) > 0:
		store, err = catalogrepo.Parse(cfg.catalogData, cfg.fallbackLanguage)
	case cfg.catalogPath != "":
		store, err = catalogrepo.Load(cfg.catalogPath, cfg.fallbackLanguage)
	default:
		return nil, errors.New("showdex: catalog source required (use WithCatalogFile or WithCatalogJSON)")
	}
	if err != nil {
		return nil, fmt.Errorf("showdex: load catalog: %w", err)
	}

	engine := searchuc.New(searchuc.NewScorer(cfg.weights), cfg.defaultLanguage, cfg.logger)
	engine.Bind(store)

	return &Client{
		store:   store,
		engine:  engine,
		filters: filteruc.New(),
		caps:    cfg.caps,
	}, nil
}

// Search starts a fluent search for the given text. A blank text returns the
// whole catalog in load order.
func (c *Client) Search(text string) *SearchBuilder {
	return &SearchBuilder{client: c, text: text}
}

// Suggest builds typeahead suggestions for the given input. history is the
// caller's recent query list, most-recent-first; pass nil for none.
func (c *Client) Suggest(text string, history []string) []Suggestion {
	list := queryuc.NewSuggester(c.store, c.caps).Build(text, c.engine.Language(), history)
	out := make([]Suggestion, len(list))
	for i, s := range list {
		out[i] = suggestionFromDomain(s)
	}
	return out
}

// Language returns the active language.
func (c *Client) Language() string {
	return c.engine.Language()
}

// SetLanguage switches the active language and invalidates cached rankings.
func (c *Client) SetLanguage(lang string) {
	c.engine.SetLanguage(lang)
}

// Records returns every catalog record resolved in the active language.
func (c *Client) Records() []Record {
	lang := c.engine.Language()
	out := make([]Record, 0, c.store.Len())
	for _, rec := range c.store.Records() {
		out = append(out, recordFromDomain(rec, lang, c.store.FallbackLanguage()))
	}
	return out
}

// Record returns one record by ID.
func (c *Client) Record(id string) (Record, error) {
	rec, err := c.store.Record(id)
	if err != nil {
		return Record{}, err
	}
	return recordFromDomain(rec, c.engine.Language(), c.store.FallbackLanguage()), nil
}

// Categories returns the catalog categories in display order.
func (c *Client) Categories() []Category {
	lang := c.engine.Language()
	fallback := c.store.FallbackLanguage()
	out := make([]Category, 0, len(c.store.Categories()))
	for _, cat := range c.store.Categories() {
		out = append(out, Category{
			ID:          cat.ID(),
			Name:        cat.Name().Resolve(lang, fallback),
			Icon:        cat.Icon(),
			Order:       cat.Order(),
			RecordCount: len(c.store.RecordIDsByCategory(cat.ID())),
		})
	}
	return out
}
