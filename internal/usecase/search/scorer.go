package search

import (
	"strings"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
)

// Weights holds the relevance heuristic constants. The values were tuned by
// trial; they are configurable rather than derived, and changing them changes
// ranking behavior.
type Weights struct {
	TitleSubstring  float64
	TitleExactBonus float64
	Description     float64
	Tag             float64
	TagExactBonus   float64
	Example         float64
	CategoryName    float64

	// FuzzyScale discounts subsequence matches relative to substring matches
	// for the same field. Must stay below 1 so an exact or substring match
	// always outscores a pure subsequence match.
	FuzzyScale float64
	// FuzzyThreshold discards subsequence matches whose coverage ratio is
	// too small to be a meaningful near-miss signal.
	FuzzyThreshold float64
}

// DefaultWeights returns the stock heuristic.
func DefaultWeights() Weights {
	return Weights{
		TitleSubstring:  100,
		TitleExactBonus: 50,
		Description:     60,
		Tag:             40,
		TagExactBonus:   20,
		Example:         20,
		CategoryName:    10,
		FuzzyScale:      0.5,
		FuzzyThreshold:  0.25,
	}
}

// Scorer computes a non-negative relevance score for one record against one
// query term. A score of 0 means "no match, exclude".
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score rates a record against a normalized (lowercased, trimmed) term in
// the given language. Field contributions are additive: a record earns
// credit from every field that matches. Missing localized fields fall back
// to the fallback language before scoring; absent either way they score 0.
func (sc *Scorer) Score(rec domcat.Record, categoryName, term, lang, fallback string) float64 {
	if term == "" {
		return 0
	}

	var total float64

	title := strings.ToLower(rec.Title().Resolve(lang, fallback))
	if title != "" {
		if strings.Contains(title, term) {
			total += sc.weights.TitleSubstring
			if title == term {
				total += sc.weights.TitleExactBonus
			}
		} else {
			total += sc.fuzzy(term, title, sc.weights.TitleSubstring)
		}
	}

	desc := strings.ToLower(rec.Description().Resolve(lang, fallback))
	total += sc.channel(term, desc, sc.weights.Description)

	total += sc.scoreTags(rec.Tags(), term)
	total += sc.scoreBody(rec, term, lang, fallback)
	total += sc.channel(term, strings.ToLower(categoryName), sc.weights.CategoryName)

	return total
}

// scoreTags takes the best contribution across tags rather than summing,
// so a record with many overlapping tags does not drown out title matches.
func (sc *Scorer) scoreTags(tags []string, term string) float64 {
	var best float64
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		var c float64
		if strings.Contains(tag, term) {
			c = sc.weights.Tag
			if tag == term {
				c += sc.weights.TagExactBonus
			}
		} else {
			c = sc.fuzzy(term, tag, sc.weights.Tag)
		}
		if c > best {
			best = c
		}
	}
	return best
}

// scoreBody rates the free-text channel: localized details plus literal
// usage examples, credited once at the example weight.
func (sc *Scorer) scoreBody(rec domcat.Record, term, lang, fallback string) float64 {
	best := sc.channel(term, strings.ToLower(rec.Details().Resolve(lang, fallback)), sc.weights.Example)
	for _, ex := range rec.Examples() {
		if c := sc.channel(term, strings.ToLower(ex), sc.weights.Example); c > best {
			best = c
		}
	}
	return best
}

// channel scores one candidate field: full weight for a substring match,
// discounted subsequence credit otherwise.
func (sc *Scorer) channel(term, text string, weight float64) float64 {
	if text == "" {
		return 0
	}
	if strings.Contains(text, term) {
		return weight
	}
	return sc.fuzzy(term, text, weight)
}

func (sc *Scorer) fuzzy(term, text string, weight float64) float64 {
	ratio := subsequenceRatio(term, text)
	if ratio < sc.weights.FuzzyThreshold {
		return 0
	}
	return weight * sc.weights.FuzzyScale * ratio
}
