package repository

import (
	"context"
	"sync/atomic"
	"time"

	"gasthof/internal/domain"
	"gasthof/internal/models"

	"github.com/rs/zerolog"
)

// FailoverResultCache serves from the primary cache until it errors,
// then switches to the fallback and probes the primary again after a
// minute.
type FailoverResultCache struct {
	primary   domain.ResultCache
	fallback  domain.ResultCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverResultCache(primary, fallback domain.ResultCache, logger *zerolog.Logger) *FailoverResultCache {
	return &FailoverResultCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverResultCache) Get(ctx context.Context, query string) ([]models.SearchResult, bool, error) {
	if !r.isDown.Load() {
		results, found, err := r.primary.Get(ctx, query)
		if err == nil {
			return results, found, nil
		}
		r.logger.Error().Err(err).Msg("Primary result cache failed, falling back to memory")
		r.isDown.Store(true)
		r.lastCheck = time.Now()
	}

	// Try to recover after 1 minute
	if r.isDown.Load() && time.Since(r.lastCheck) > time.Minute {
		results, found, err := r.primary.Get(ctx, query)
		if err == nil {
			r.isDown.Store(false)
			return results, found, nil
		}
		r.lastCheck = time.Now()
	}

	return r.fallback.Get(ctx, query)
}

func (r *FailoverResultCache) Set(ctx context.Context, query string, results []models.SearchResult) error {
	if !r.isDown.Load() {
		err := r.primary.Set(ctx, query, results)
		if err == nil {
			return nil
		}
		r.logger.Error().Err(err).Msg("Primary result cache failed, falling back to memory")
		r.isDown.Store(true)
		r.lastCheck = time.Now()
	}

	return r.fallback.Set(ctx, query, results)
}
