package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
	filteruc "github.com/kinetic-pages/showdex/internal/usecase/filter"
	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
)

func testStore(t *testing.T) *catalogrepo.Store {
	t.Helper()

	categories := []domcat.Category{
		domcat.ReconstructCategory("workflow", domcat.LocalizedText{"en": "Workflow"}, 1, ""),
		domcat.ReconstructCategory("tooling", domcat.LocalizedText{"en": "Tooling"}, 2, ""),
	}
	records := []domcat.Record{
		domcat.ReconstructRecord(domcat.RecordParams{
			ID: "slash-commands", CategoryID: "workflow", Status: domcat.StatusStable,
			Title: domcat.LocalizedText{"en": "Slash Commands"},
		}),
		domcat.ReconstructRecord(domcat.RecordParams{
			ID: "hooks", CategoryID: "tooling", Status: domcat.StatusBeta,
			Title: domcat.LocalizedText{"en": "Hooks"},
		}),
	}

	store, err := catalogrepo.FromRecords(categories, records, "en")
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	return store
}

func newTestHandler(t *testing.T, ready bool) *Handler {
	t.Helper()

	engine := searchuc.New(searchuc.NewScorer(searchuc.DefaultWeights()), "en", zap.NewNop())
	provider := &catalogrepo.Provider{}
	if ready {
		store := testStore(t)
		engine.Bind(store)
		provider.Set(store)
	}

	cfg := queryuc.DefaultConfig()
	cfg.DebounceDelay = 20 * time.Millisecond

	return NewHandler(engine, filteruc.New(), provider, nil, cfg, zap.NewNop())
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) directiveFrame {
	t.Helper()
	var frame directiveFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

func TestSession_NotReady_503(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, false))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("got %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestSession_InputFlow(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, true))
	defer srv.Close()
	conn := dial(t, srv)

	if err := conn.WriteJSON(inboundMessage{Type: messageInput, Text: "hooks"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Suggestions arrive before the debounce elapses.
	frame := readFrame(t, conn)
	if frame.Type != "suggestions" {
		t.Fatalf("first frame = %q, want suggestions", frame.Type)
	}
	if len(frame.Suggestions) != 1 || frame.Suggestions[0].RecordID != "hooks" {
		t.Fatalf("suggestions = %+v, want record hooks", frame.Suggestions)
	}

	// The debounced search resolves into a results frame.
	frame = readFrame(t, conn)
	if frame.Type != "results" {
		t.Fatalf("second frame = %q, want results", frame.Type)
	}
	if len(frame.IDs) != 1 || frame.IDs[0] != "hooks" {
		t.Errorf("ids = %v, want [hooks]", frame.IDs)
	}
	if len(frame.HiddenRecords) != 1 || frame.HiddenRecords[0] != "slash-commands" {
		t.Errorf("hidden records = %v, want [slash-commands]", frame.HiddenRecords)
	}
	if len(frame.HiddenCategories) != 1 || frame.HiddenCategories[0] != "workflow" {
		t.Errorf("hidden categories = %v, want [workflow]", frame.HiddenCategories)
	}
}

func TestSession_EmptyState(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, true))
	defer srv.Close()
	conn := dial(t, srv)

	if err := conn.WriteJSON(inboundMessage{Type: messageInput, Text: "zzzz"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	frame := readFrame(t, conn) // suggestions (empty)
	if frame.Type != "suggestions" {
		t.Fatalf("first frame = %q, want suggestions", frame.Type)
	}
	frame = readFrame(t, conn)
	if frame.Type != "empty" {
		t.Fatalf("second frame = %q, want empty", frame.Type)
	}
	if frame.Query != "zzzz" {
		t.Errorf("query = %q, want the unmatched text", frame.Query)
	}
}

func TestSession_ClearResetsSuggestions(t *testing.T) {
	srv := httptest.NewServer(newTestHandler(t, true))
	defer srv.Close()
	conn := dial(t, srv)

	if err := conn.WriteJSON(inboundMessage{Type: messageInput, Text: "ho"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	frame := readFrame(t, conn)
	if frame.Type != "suggestions" || len(frame.Suggestions) == 0 {
		t.Fatalf("frame = %+v, want populated suggestions", frame)
	}

	if err := conn.WriteJSON(inboundMessage{Type: messageClear}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for {
		frame = readFrame(t, conn)
		if frame.Type == "suggestions" && len(frame.Suggestions) == 0 {
			return
		}
	}
}
