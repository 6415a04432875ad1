package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to a showdex server over its JSON API. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = d
	}
}

// New creates a client for the given base URL (scheme and host, no path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a ranked, faceted search. A nil opts searches everything in
// relevance order.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	if opts != nil {
		setIfPresent(q, "category", opts.Category)
		setIfPresent(q, "status", opts.Status)
		setIfPresent(q, "sort", opts.Sort)
		setIfPresent(q, "lang", opts.Language)
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/search", q, &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return &resp, nil
}

// Suggest returns typeahead suggestions for the given input.
func (c *Client) Suggest(ctx context.Context, text string) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("q", text)

	var resp suggestResponse
	if err := c.get(ctx, "/api/suggest", q, &resp); err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return resp.Suggestions, nil
}

// Records lists catalog records, optionally narrowed to one category.
func (c *Client) Records(ctx context.Context, category string) ([]Record, error) {
	q := url.Values{}
	setIfPresent(q, "category", category)

	var resp recordListResponse
	if err := c.get(ctx, "/api/records", q, &resp); err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	return resp.Records, nil
}

// Record fetches one record by ID, including details and examples.
func (c *Client) Record(ctx context.Context, id string) (Record, error) {
	var rec Record
	if err := c.get(ctx, "/api/records/"+url.PathEscape(id), nil, &rec); err != nil {
		return Record{}, fmt.Errorf("record %q: %w", id, err)
	}
	return rec, nil
}

// Categories lists the catalog categories in display order.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp categoryListResponse
	if err := c.get(ctx, "/api/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return resp.Categories, nil
}

// History returns the persisted query history, most-recent-first.
func (c *Client) History(ctx context.Context) ([]string, error) {
	var resp historyResponse
	if err := c.get(ctx, "/api/history", nil, &resp); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return resp.Entries, nil
}

// SetLanguage switches the server's active language.
func (c *Client) SetLanguage(ctx context.Context, lang string) error {
	body, err := json.Marshal(map[string]string{"language": lang})
	if err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	if err := c.do(ctx, http.MethodPut, "/api/language", nil, bytes.NewReader(body), nil); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

// Health reports nil once the server has its catalog loaded.
func (c *Client) Health(ctx context.Context) error {
	if err := c.get(ctx, "/healthz", nil, nil); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(
	ctx context.Context, method, path string, query url.Values, body io.Reader, out any,
) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	return apiErr
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
