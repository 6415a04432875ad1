package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestSearch_BuildsQueryString(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{
			Query: "deploy", Language: "en", Total: 1,
			Results: []SearchResult{{Record: Record{ID: "hooks"}, Score: 40}},
		})
	})

	resp, err := client.Search(context.Background(), "deploy", &SearchOptions{
		Category: "workflow",
		Status:   "beta",
		Sort:     "name",
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotPath != "/api/search" {
		t.Errorf("path = %q", gotPath)
	}
	want := map[string]string{"q": "deploy", "category": "workflow", "status": "beta", "sort": "name"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query[%s] = %q, want %q", k, gotQuery[k], v)
		}
	}
	if _, ok := gotQuery["lang"]; ok {
		t.Error("empty language must not be sent")
	}
	if resp.Total != 1 || resp.Results[0].ID != "hooks" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSearch_NotReadyMapsToSentinel(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(errorResponse{Code: "catalog_not_ready", Message: "not ready"})
	})

	_, err := client.Search(context.Background(), "x", nil)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d", apiErr.Status)
	}
}

func TestRecord_NotFoundMapsToSentinel(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(errorResponse{Code: "record_not_found", Message: "record not found"})
	})

	_, err := client.Record(context.Background(), "nope")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestSetLanguage_SendsJSONBody(t *testing.T) {
	var gotMethod, gotLang string

	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotLang = body["language"]
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.SetLanguage(context.Background(), "de"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if gotLang != "de" {
		t.Errorf("language = %q, want de", gotLang)
	}
}

func TestHistoryAndCategories(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/history":
			_ = json.NewEncoder(w).Encode(historyResponse{Entries: []string{"b", "a"}})
		case "/api/categories":
			_ = json.NewEncoder(w).Encode(categoryListResponse{
				Categories: []Category{{ID: "workflow", Name: "Workflow", RecordCount: 2}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	entries, err := client.History(context.Background())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 || entries[0] != "b" {
		t.Errorf("entries = %v", entries)
	}

	cats, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].RecordCount != 2 {
		t.Errorf("categories = %+v", cats)
	}
}
