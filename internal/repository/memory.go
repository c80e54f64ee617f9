package repository

import (
	"context"
	"sync"
	"time"

	"gasthof/internal/models"
)

type memoryEntry struct {
	results   []models.SearchResult
	expiresAt time.Time
}

// MemoryResultCache keeps cached search results in-process. It serves
// as the fallback when redis is unreachable.
type MemoryResultCache struct {
	entries sync.Map
	ttl     time.Duration
}

func NewMemoryResultCache(ttl time.Duration) *MemoryResultCache {
	return &MemoryResultCache{
		ttl: ttl,
	}
}

func (r *MemoryResultCache) Get(_ context.Context, query string) ([]models.SearchResult, bool, error) {
	val, ok := r.entries.Load(cacheKey(query))
	if !ok {
		return nil, false, nil
	}
	entry := val.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		r.entries.Delete(cacheKey(query))
		return nil, false, nil
	}
	return entry.results, true, nil
}

func (r *MemoryResultCache) Set(_ context.Context, query string, results []models.SearchResult) error {
	r.entries.Store(cacheKey(query), &memoryEntry{
		results:   results,
		expiresAt: time.Now().Add(r.ttl),
	})
	return nil
}
