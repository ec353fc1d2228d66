package suggest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached wraps a Suggester with a redis cache keyed by a hash of the
// text, so identical descriptions do not re-hit the collaborator.
// Redis errors fall through to the inner suggester.
type Cached struct {
	inner Suggester
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCached(inner Suggester, rdb *redis.Client, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cached{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "reqwise:suggest:" + hex.EncodeToString(sum[:])
}

func (c *Cached) SuggestTags(ctx context.Context, text string) ([]string, error) {
	key := cacheKey(text)

	if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var tags []string
		if err := json.Unmarshal([]byte(cached), &tags); err == nil {
			return tags, nil
		}
	}

	tags, err := c.inner.SuggestTags(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tags); err == nil {
		c.rdb.Set(ctx, key, string(data), c.ttl)
	}
	return tags, nil
}

var _ Suggester = (*Cached)(nil)
