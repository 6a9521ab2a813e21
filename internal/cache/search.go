package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// SearchCache is a short-TTL cache of deduplicated search results keyed by
// normalized query. A nil *SearchCache is valid and always misses, so the
// pipeline needs no cache-configured branch. Cache errors are logged and
// treated as misses.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached sources for a query, or nil on miss.
func (c *SearchCache) Get(ctx context.Context, query string) []models.Source {
	if c == nil || c.rdb == nil {
		return nil
	}
	val, err := c.rdb.Get(ctx, cacheKey(query)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		logger.Log.WithError(err).Warn("search cache: get")
		return nil
	}

	var entry cachedEntry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		logger.Log.WithError(err).Warn("search cache: decode")
		return nil
	}
	return entry.toSources()
}

// Set stores sources under the query's key. Failures are logged only.
func (c *SearchCache) Set(ctx context.Context, query string, sources []models.Source) {
	if c == nil || c.rdb == nil || len(sources) == 0 {
		return
	}
	data, err := json.Marshal(newCachedEntry(sources))
	if err != nil {
		logger.Log.WithError(err).Warn("search cache: encode")
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(query), data, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("search cache: set")
	}
}

func cacheKey(query string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(norm))
	return "search:" + hex.EncodeToString(sum[:])
}

// cachedEntry carries the snippet explicitly since models.Source omits it
// from JSON.
type cachedEntry struct {
	Sources []cachedSource `json:"sources"`
}

type cachedSource struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

func newCachedEntry(sources []models.Source) cachedEntry {
	e := cachedEntry{Sources: make([]cachedSource, len(sources))}
	for i, s := range sources {
		e.Sources[i] = cachedSource{ID: s.ID, Title: s.Title, URL: s.URL, Snippet: s.Snippet}
	}
	return e
}

func (e cachedEntry) toSources() []models.Source {
	out := make([]models.Source, len(e.Sources))
	for i, s := range e.Sources {
		out[i] = models.Source{ID: s.ID, Title: s.Title, URL: s.URL, Snippet: s.Snippet}
	}
	return out
}
