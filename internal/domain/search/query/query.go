package query

import (
	"fmt"
	"strings"
)

// Search input limits.
const (
	// MaxLength is the maximum allowed search query length.
	MaxLength = 256
	// MinSuggestLength is the minimum input length before suggestions fire.
	MinSuggestLength = 2
)

// Query is a validated search input: the raw text plus the language the
// relevance text is resolved in. Together they form the result cache key.
type Query struct {
	text     string
	language string
}

// New validates and creates a Query. Blank text is allowed (it selects the
// unranked full catalog); a missing language is not.
func New(text, language string) (Query, error) {
	if language == "" {
		return Query{}, fmt.Errorf("language is required")
	}
	if len(text) > MaxLength {
		return Query{}, fmt.Errorf("query too long (max %d chars)", MaxLength)
	}
	return Query{text: text, language: language}, nil
}

// Text returns the raw query text.
func (q Query) Text() string { return q.text }

// Language returns the language code.
func (q Query) Language() string { return q.language }

// IsBlank reports whether the text is empty or whitespace-only.
func (q Query) IsBlank() bool { return strings.TrimSpace(q.text) == "" }

// Normalized returns the text lowercased and trimmed for matching.
func (q Query) Normalized() string {
	return strings.ToLower(strings.TrimSpace(q.text))
}

// Key is the composite result-cache key. A struct key avoids the collision
// ambiguity of concatenated strings.
type Key struct {
	Text     string
	Language string
}

// Key returns the cache key for this query.
func (q Query) Key() Key {
	return Key{Text: q.Normalized(), Language: q.language}
}
