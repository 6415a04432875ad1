package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/domain"
	domcat "github.com/kinetic-pages/showdex/internal/domain/catalog"
	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	domquery "github.com/kinetic-pages/showdex/internal/domain/search/query"
	"github.com/kinetic-pages/showdex/internal/domain/search/result"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
	"github.com/kinetic-pages/showdex/internal/domain/search/suggest"
	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
	filteruc "github.com/kinetic-pages/showdex/internal/usecase/filter"
	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
)

// Error codes returned to clients.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotReady         = "catalog_not_ready"
	codeRecordNotFound   = "record_not_found"
	codeCategoryNotFound = "category_not_found"
	codeInternalError    = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the catalog search API over chi routes.
type Server struct {
	engine        *searchuc.Engine
	filters       *filteruc.Service
	provider      *catalogrepo.Provider
	history       queryuc.HistoryStore
	caps          queryuc.Caps
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	engine *searchuc.Engine,
	filters *filteruc.Service,
	provider *catalogrepo.Provider,
	history queryuc.HistoryStore,
	caps queryuc.Caps,
	logger *zap.Logger,
) *Server {
	s := &Server{
		engine:   engine,
		filters:  filters,
		provider: provider,
		history:  history,
		caps:     caps,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotReady, http.StatusServiceUnavailable, codeNotReady),
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, codeRecordNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, codeCategoryNotFound),
	}
	return s
}

// Routes mounts the API on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/search", s.HandleSearch)
	r.Get("/api/suggest", s.HandleSuggest)
	r.Get("/api/records", s.HandleListRecords)
	r.Get("/api/records/{id}", s.HandleGetRecord)
	r.Get("/api/categories", s.HandleListCategories)
	r.Get("/api/history", s.HandleHistory)
	r.Put("/api/language", s.HandleSetLanguage)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// HandleSearch handles GET /api/search.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(r)

	q, err := domquery.New(r.URL.Query().Get("q"), lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	sort := sortkey.Key(r.URL.Query().Get("sort"))
	if !sort.IsValid() {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			"sort must be one of: name, category, status, version")
		return
	}

	results, err := s.engine.Search(q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	store, ok := s.provider.Get()
	if !ok {
		s.handleDomainError(w, domain.ErrNotReady)
		return
	}

	state := facet.New(r.URL.Query().Get("category"), r.URL.Query().Get("status"), sort)
	filtered := s.filters.Apply(results, state, lang, store.FallbackLanguage())

	items := make([]SearchResultItem, len(filtered))
	for i := range filtered {
		items[i] = searchResultToDTO(&filtered[i], store, lang)
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Query:    q.Text(),
		Language: lang,
		Total:    len(items),
		Results:  items,
	})
}

// HandleSuggest handles GET /api/suggest.
func (s *Server) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	store, ok := s.provider.Get()
	if !ok {
		s.handleDomainError(w, domain.ErrNotReady)
		return
	}

	lang := s.resolveLang(r)
	var history []string
	if s.history != nil {
		history = s.history.Load(r.Context())
	}

	list := queryuc.NewSuggester(store, s.caps).Build(r.URL.Query().Get("q"), lang, history)

	items := make([]SuggestionItem, len(list))
	for i, sg := range list {
		items[i] = suggestionToDTO(sg)
	}

	writeJSON(w, http.StatusOK, SuggestResponse{Suggestions: items})
}

// HandleListRecords handles GET /api/records.
func (s *Server) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	store, ok := s.provider.Get()
	if !ok {
		s.handleDomainError(w, domain.ErrNotReady)
		return
	}

	lang := s.resolveLang(r)
	category := r.URL.Query().Get("category")
	if category != "" && category != facet.Wildcard {
		if _, err := store.Category(category); err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	items := make([]RecordItem, 0, store.Len())
	for _, rec := range store.Records() {
		if category != "" && category != facet.Wildcard && rec.CategoryID() != category {
			continue
		}
		items = append(items, recordToDTO(rec, store, lang))
	}

	writeJSON(w, http.StatusOK, RecordListResponse{Total: len(items), Records: items})
}

// HandleGetRecord handles GET /api/records/{id}.
func (s *Server) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	store, ok := s.provider.Get()
	if !ok {
		s.handleDomainError(w, domain.ErrNotReady)
		return
	}

	rec, err := store.Record(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	lang := s.resolveLang(r)
	item := recordToDTO(rec, store, lang)
	item.Details = rec.Details().Resolve(lang, store.FallbackLanguage())
	item.Examples = rec.Examples()

	writeJSON(w, http.StatusOK, item)
}

// HandleListCategories handles GET /api/categories.
func (s *Server) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	store, ok := s.provider.Get()
	if !ok {
		s.handleDomainError(w, domain.ErrNotReady)
		return
	}

	lang := s.resolveLang(r)
	fallback := store.FallbackLanguage()

	items := make([]CategoryItem, 0, len(store.Categories()))
	for _, cat := range store.Categories() {
		items = append(items, CategoryItem{
			ID:          cat.ID(),
			Name:        cat.Name().Resolve(lang, fallback),
			Icon:        cat.Icon(),
			Order:       cat.Order(),
			RecordCount: len(store.RecordIDsByCategory(cat.ID())),
		})
	}

	writeJSON(w, http.StatusOK, CategoryListResponse{Categories: items})
}

// HandleHistory handles GET /api/history.
func (s *Server) HandleHistory(w http.ResponseWriter, r *http.Request) {
	var entries []string
	if s.history != nil {
		entries = s.history.Load(r.Context())
	}
	if entries == nil {
		entries = []string{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
}

// HandleSetLanguage handles PUT /api/language.
func (s *Server) HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Language == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "language is required")
		return
	}

	s.engine.SetLanguage(req.Language)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /healthz. The service is healthy once the catalog
// has been loaded and bound to the engine.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	catalogCheck := "up"
	httpStatus := http.StatusOK
	if !s.engine.Ready() {
		status = "unavailable"
		catalogCheck = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: status,
		Checks: map[string]string{"catalog": catalogCheck},
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) resolveLang(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return s.engine.Language()
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func searchResultToDTO(r *result.Result, store *catalogrepo.Store, lang string) SearchResultItem {
	return SearchResultItem{
		RecordItem: recordToDTO(r.Record(), store, lang),
		Score:      r.Score(),
	}
}

func recordToDTO(rec domcat.Record, store *catalogrepo.Store, lang string) RecordItem {
	fallback := store.FallbackLanguage()
	categoryName := ""
	if cat, err := store.Category(rec.CategoryID()); err == nil {
		categoryName = cat.Name().Resolve(lang, fallback)
	}
	return RecordItem{
		ID:           rec.ID(),
		Category:     rec.CategoryID(),
		CategoryName: categoryName,
		Status:       string(rec.Status()),
		Title:        rec.Title().Resolve(lang, fallback),
		Description:  rec.Description().Resolve(lang, fallback),
		Tags:         rec.Tags(),
		Version:      rec.Version(),
	}
}

func suggestionToDTO(s suggest.Suggestion) SuggestionItem {
	item := SuggestionItem{
		Kind:  string(s.Kind()),
		Label: s.Label(),
	}
	switch s.Kind() {
	case suggest.KindHistory:
		item.Query = s.Query()
	case suggest.KindRecord:
		item.RecordID = s.RecordID()
	case suggest.KindCategory:
		item.CategoryID = s.CategoryID()
	}
	return item
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotReady,
		domain.ErrRecordNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrInvalidCatalog,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}
