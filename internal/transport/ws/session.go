package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/domain/search/facet"
	"github.com/kinetic-pages/showdex/internal/domain/search/sortkey"
	catalogrepo "github.com/kinetic-pages/showdex/internal/repository/catalog"
	filteruc "github.com/kinetic-pages/showdex/internal/usecase/filter"
	queryuc "github.com/kinetic-pages/showdex/internal/usecase/query"
	searchuc "github.com/kinetic-pages/showdex/internal/usecase/search"
	viewuc "github.com/kinetic-pages/showdex/internal/usecase/view"
)

// outboundBuffer bounds per-session directive queueing. A session that stops
// reading loses directives rather than blocking the controller.
const outboundBuffer = 32

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades HTTP requests to live typeahead sessions. Each connection
// gets its own query controller and view synchronizer; the shared search
// engine and catalog sit behind them.
type Handler struct {
	engine   *searchuc.Engine
	filters  *filteruc.Service
	provider *catalogrepo.Provider
	history  queryuc.HistoryStore
	cfg      queryuc.Config
	logger   *zap.Logger
}

// NewHandler creates a WebSocket session handler.
func NewHandler(
	engine *searchuc.Engine,
	filters *filteruc.Service,
	provider *catalogrepo.Provider,
	history queryuc.HistoryStore,
	cfg queryuc.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		engine:   engine,
		filters:  filters,
		provider: provider,
		history:  history,
		cfg:      cfg,
		logger:   logger,
	}
}

// ServeHTTP handles GET /ws.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	store, ok := h.provider.Get()
	if !ok {
		http.Error(w, "catalog not ready", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sess := newSession(conn, h.logger)

	sync := viewuc.New(store)
	sync.Subscribe(sess)

	ctrl := queryuc.New(h.engine, h.filters, store, sync, h.cfg, h.logger)
	if h.history != nil {
		ctrl.WithHistory(r.Context(), h.history)
	}

	go sess.writeLoop()
	sess.readLoop(ctrl)
}

// session is one live connection. It implements view.Listener: directives
// published by the synchronizer are serialized onto the outbound queue and
// written by a single goroutine.
type session struct {
	conn   *websocket.Conn
	out    chan directiveFrame
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

func newSession(conn *websocket.Conn, logger *zap.Logger) *session {
	return &session{
		conn:   conn,
		out:    make(chan directiveFrame, outboundBuffer),
		logger: logger,
	}
}

// OnDirective queues one projection frame. Drops the frame if the session is
// gone or the writer has fallen behind.
func (s *session) OnDirective(d viewuc.Directive) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.out <- frameFromDirective(d):
	default:
		s.logger.Warn("session outbound queue full, dropping directive",
			zap.String("kind", string(d.Kind())))
	}
}

func (s *session) close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.out)
	}
	s.mu.Unlock()
	_ = s.conn.Close()
}

func (s *session) writeLoop() {
	for frame := range s.out {
		if err := s.conn.WriteJSON(frame); err != nil {
			s.logger.Info("session write failed", zap.Error(err))
			_ = s.conn.Close()
			return
		}
	}
}

func (s *session) readLoop(ctrl *queryuc.Controller) {
	defer func() {
		ctrl.Close()
		s.close()
	}()

	for {
		var msg inboundMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			s.logger.Info("session closed", zap.Error(err))
			return
		}
		s.dispatch(ctrl, msg)
	}
}

func (s *session) dispatch(ctrl *queryuc.Controller, msg inboundMessage) {
	switch msg.Type {
	case messageInput:
		ctrl.OnInput(msg.Text)

	case messageKey:
		ctrl.OnKey(queryuc.Key(msg.Key))

	case messageClear:
		ctrl.Clear()

	case messageFilters:
		sort := sortkey.Key(msg.Sort)
		if !sort.IsValid() {
			s.logger.Warn("ignoring unknown sort key", zap.String("sort", msg.Sort))
			sort = sortkey.None
		}
		ctrl.SetFilters(facet.New(msg.Category, msg.Status, sort))

	default:
		s.logger.Warn("unknown session message", zap.String("type", msg.Type))
	}
}
