package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/prism-backend/internal/platform/logger"
	"github.com/yungbote/prism-backend/internal/quiz"
)

// ResultCache fronts the result table for completed assessments. Results are
// immutable once written, so cache entries never need invalidation beyond
// session deletion and TTL expiry.
type ResultCache interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*quiz.Result, error)
	Set(ctx context.Context, sessionID uuid.UUID, result *quiz.Result) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
	Close() error
}

type resultCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewResultCache(log *logger.Logger, addr string, ttl time.Duration) (ResultCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &resultCache{
		log: log.With("client", "ResultCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func cacheKey(sessionID uuid.UUID) string {
	return "prism:result:" + sessionID.String()
}

func (c *resultCache) Get(ctx context.Context, sessionID uuid.UUID) (*quiz.Result, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result quiz.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is dropped, not surfaced.
		c.log.Warn("dropping unreadable cache entry", "session_id", sessionID, "error", err)
		_ = c.rdb.Del(ctx, cacheKey(sessionID)).Err()
		return nil, nil
	}
	return &result, nil
}

func (c *resultCache) Set(ctx context.Context, sessionID uuid.UUID, result *quiz.Result) error {
	if result == nil {
		return nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(sessionID), raw, c.ttl).Err()
}

func (c *resultCache) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return c.rdb.Del(ctx, cacheKey(sessionID)).Err()
}

func (c *resultCache) Close() error {
	return c.rdb.Close()
}
