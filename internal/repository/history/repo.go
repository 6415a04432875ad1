package history

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/kinetic-pages/showdex/internal/db"
	"github.com/kinetic-pages/showdex/internal/metrics"
)

// store is the consumer interface for history persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo persists the bounded query history as a JSON array under a fixed key.
// Storage failures never propagate: reads degrade to an empty list and
// writes become no-ops, surfaced only via logs and a counter.
type Repo struct {
	store    store
	key      string
	capacity int
	logger   *zap.Logger
}

// New creates a history repository.
func New(s store, keyPrefix string, capacity int, logger *zap.Logger) *Repo {
	return &Repo{store: s, key: keyPrefix + "history", capacity: capacity, logger: logger}
}

// Load reads the saved history, most-recent-first. Missing or corrupt data
// yields an empty list.
func (r *Repo) Load(ctx context.Context) []string {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			r.logger.Warn("history load failed", zap.Error(err))
			metrics.HistoryStoreErrorsTotal.WithLabelValues("load").Inc()
		}
		return nil
	}

	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("history corrupt, resetting", zap.Error(err))
		metrics.HistoryStoreErrorsTotal.WithLabelValues("load").Inc()
		return nil
	}
	if len(entries) > r.capacity {
		entries = entries[:r.capacity]
	}
	return entries
}

// Save writes the history. Entries beyond the capacity are dropped.
func (r *Repo) Save(ctx context.Context, entries []string) {
	if len(entries) > r.capacity {
		entries = entries[:r.capacity]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		r.logger.Warn("history marshal failed", zap.Error(err))
		metrics.HistoryStoreErrorsTotal.WithLabelValues("save").Inc()
		return
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		r.logger.Warn("history save failed", zap.Error(err))
		metrics.HistoryStoreErrorsTotal.WithLabelValues("save").Inc()
	}
}
