package sdk

// Record is a catalog entry as served by the API. Details and Examples are
// only populated by the single-record endpoint.
type Record struct {
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

// SearchResult is a record with its relevance score.
type SearchResult struct {
	Record
	Score float64 `json:"score"`
}

// SearchResponse is the result of one search call.
type SearchResponse struct {
	Query    string         `json:"query"`
	Language string         `json:"language"`
	Total    int            `json:"total"`
	Results  []SearchResult `json:"results"`
}

// SearchOptions narrows and orders a search. Zero values mean "no
// narrowing": all categories, all statuses, relevance order.
type SearchOptions struct {
	Category string
	Status   string
	Sort     string
	Language string
}

// Suggestion is one typeahead entry.
type Suggestion struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	Query      string `json:"query,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
}

// Category is a catalog grouping node.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
	RecordCount int    `json:"record_count"`
}

type suggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type recordListResponse struct {
	Total   int      `json:"total"`
	Records []Record `json:"records"`
}

type categoryListResponse struct {
	Categories []Category `json:"categories"`
}

type historyResponse struct {
	Entries []string `json:"entries"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
