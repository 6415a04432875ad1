package showdex

import (
	"go.uber.org/zap"

	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	catalogPath      string
	catalogData      []byte
	fallbackLanguage string
	defaultLanguage  string
	weights          searchuc.Weights
	caps             queryuc.Caps
	logger           *zap.Logger
}

// WithCatalogFile loads the catalog from a JSON file on disk.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithCatalogJSON loads the catalog from in-memory JSON. Takes precedence
// over WithCatalogFile.
func WithCatalogJSON(data []byte) Option {
	return func(c *clientConfig) {
		c.catalogData = data
	}
}

// WithFallbackLanguage sets the language that localized fields resolve to
// when the active language has no translation. Defaults to "en".
func WithFallbackLanguage(lang string) Option {
	return func(c *clientConfig) {
		c.fallbackLanguage = lang
	}
}

// WithDefaultLanguage sets the initial active language. Defaults to the
// fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *clientConfig) {
		c.defaultLanguage = lang
	}
}

// WithWeights overrides the relevance heuristic. Zero fields keep their
// default values.
func WithWeights(w Weights) Option {
	return func(c *clientConfig) {
		merged := searchuc.DefaultWeights()
		if w.TitleSubstring > 0 {
			merged.TitleSubstring = w.TitleSubstring
		}
		if w.TitleExactBonus > 0 {
			merged.TitleExactBonus = w.TitleExactBonus
		}
		if w.Description > 0 {
			merged.Description = w.Description
		}
		if w.Tag > 0 {
			merged.Tag = w.Tag
		}
		if w.TagExactBonus > 0 {
			merged.TagExactBonus = w.TagExactBonus
		}
		if w.Example > 0 {
			merged.Example = w.Example
		}
		if w.CategoryName > 0 {
			merged.CategoryName = w.CategoryName
		}
		if w.FuzzyScale > 0 {
			merged.FuzzyScale = w.FuzzyScale
		}
		if w.FuzzyThreshold > 0 {
			merged.FuzzyThreshold = w.FuzzyThreshold
		}
		c.weights = merged
	}
}

// WithSuggestionCaps bounds the typeahead list per source and in total.
func WithSuggestionCaps(history, records, categories, total int) Option {
	return func(c *clientConfig) {
		c.caps = queryuc.Caps{
			History:    history,
			Records:    records,
			Categories: categories,
			Total:      total,
		}
	}
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
