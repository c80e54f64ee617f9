package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gasthof/internal/config"
	"gasthof/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	return redis.NewClient(options)
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisResultCache) Get(ctx context.Context, query string) ([]models.SearchResult, bool, error) {
	if r.client == nil {
		return nil, false, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, cacheKey(query)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get results from redis: %w", err)
	}

	var results []models.SearchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached results: %w", err)
	}
	return results, true, nil
}

func (r *RedisResultCache) Set(ctx context.Context, query string, results []models.SearchResult) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := r.client.Set(ctx, cacheKey(query), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set results in redis: %w", err)
	}
	return nil
}

// cacheKey normalizes the query so casing and stray whitespace do
// not split the cache.
func cacheKey(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return "search_results:" + normalized
}

func Ping(ctx context.Context, client *redis.Client) error {
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
