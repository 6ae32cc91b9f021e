// Package taxonomycache stores the activity taxonomy snapshot in Redis.
// The whole activities table is kept under one key and dropped on every
// activity write. Every drop also bumps a generation counter; a snapshot
// is stored only if the generation it was read under is still current, so
// a reader that loaded rows before a write cannot put them back afterwards.
package taxonomycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/company-directory/internal/domain"
)

const (
	// Key is the Redis key holding the snapshot.
	Key = "company-directory:taxonomy:v1"
	// GenerationKey counts invalidations.
	GenerationKey = "company-directory:taxonomy:v1:gen"
)

// setIfCurrent writes ARGV[2] to KEYS[2] only while KEYS[1] equals ARGV[1].
// A missing counter reads as 0. ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfCurrent = redis.NewScript(`
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
	return 0
end
if ARGV[3] == '0' then
	redis.call('SET', KEYS[2], ARGV[2])
else
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
end
return 1
`)

type entry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// Cache implements the taxonomy snapshot cache.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New creates a snapshot cache. A zero ttl keeps the snapshot until the next write.
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached snapshot. ok is false on a miss.
func (c *Cache) Get(ctx context.Context) ([]domain.Activity, bool, error) {
	data, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get taxonomy snapshot: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("decode taxonomy snapshot: %w", err)
	}

	activities := make([]domain.Activity, len(entries))
	for i, e := range entries {
		activities[i] = domain.Activity{ID: e.ID, Name: e.Name, ParentID: e.ParentID}
	}
	return activities, true, nil
}

// Generation returns the current invalidation counter. Read it before
// loading the rows passed to Set.
func (c *Cache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get taxonomy generation: %w", err)
	}
	return gen, nil
}

// Set stores the snapshot if no invalidation happened since gen was read.
// A stale snapshot is dropped silently.
func (c *Cache) Set(ctx context.Context, gen int64, activities []domain.Activity) error {
	entries := make([]entry, len(activities))
	for i, a := range activities {
		entries[i] = entry{ID: a.ID, Name: a.Name, ParentID: a.ParentID}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode taxonomy snapshot: %w", err)
	}

	keys := []string{GenerationKey, Key}
	args := []any{strconv.FormatInt(gen, 10), data, strconv.FormatInt(c.ttl.Milliseconds(), 10)}
	if err := setIfCurrent.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return fmt.Errorf("set taxonomy snapshot: %w", err)
	}
	return nil
}

// Invalidate bumps the generation and drops the snapshot in one transaction.
func (c *Cache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, Key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate taxonomy snapshot: %w", err)
	}
	return nil
}

// Ping reports whether the cache backend is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
