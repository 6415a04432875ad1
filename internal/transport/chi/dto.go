package chi

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecordItem is the wire form of a catalog record. Details and Examples are
// only populated on the single-record endpoint.
type RecordItem struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	CategoryName string   `json:"category_name,omitempty"`
	Status       string   `json:"status"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Version      string   `json:"version,omitempty"`
	Details      string   `json:"details,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// SearchResultItem is a record with its relevance score.
type SearchResultItem struct {
	RecordItem
	Score float64 `json:"score"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query    string             `json:"query"`
	Language string             `json:"language"`
	Total    int                `json:"total"`
	Results  []SearchResultItem `json:"results"`
}

// SuggestionItem is one typeahead entry.
type SuggestionItem struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	Query      string `json:"query,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// SuggestResponse is the body of GET /api/suggest.
type SuggestResponse struct {
	Suggestions []SuggestionItem `json:"suggestions"`
}

// RecordListResponse is the body of GET /api/records.
type RecordListResponse struct {
	Total   int          `json:"total"`
	Records []RecordItem `json:"records"`
}

// CategoryItem is the wire form of a category.
type CategoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
	RecordCount int    `json:"record_count"`
}

// CategoryListResponse is the body of GET /api/categories.
type CategoryListResponse struct {
	Categories []CategoryItem `json:"categories"`
}

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	Entries []string `json:"entries"`
}

// SetLanguageRequest is the body of PUT /api/language.
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
