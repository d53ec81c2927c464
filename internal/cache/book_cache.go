package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookhub/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

const featuredKey = "books:featured"

// BookCache is a redis-backed read cache for hot catalog shelves. All
// methods are nil-safe: without a reachable redis the cache quietly reports
// misses so requests fall through to the store.
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache connects to redis and verifies the connection.
func NewBookCache(redisAddr, password string, ttl time.Duration) (*BookCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &BookCache{client: rdb, ttl: ttl}, nil
}

// GetFeatured returns the cached featured shelf, reporting a miss on any
// redis or decode failure.
func (c *BookCache) GetFeatured(ctx context.Context) ([]models.Book, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, featuredKey).Bytes()
	if err != nil {
		return nil, false
	}

	var books []models.Book
	if err := json.Unmarshal(payload, &books); err != nil {
		return nil, false
	}
	return books, true
}

// SetFeatured stores the shelf with the configured TTL, best effort.
func (c *BookCache) SetFeatured(ctx context.Context, books []models.Book) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(books)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, featuredKey, payload, c.ttl).Err()
}

// InvalidateFeatured drops the cached shelf after a write that can reorder
// it (new book, new review).
func (c *BookCache) InvalidateFeatured(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, featuredKey).Err()
}

// Close releases the redis connection.
func (c *BookCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
