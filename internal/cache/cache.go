package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

const keyPrefix = "settlement"

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("can't ping redis: %w", err)
	}
	return client, nil
}

// SummaryCache keeps computed summaries in Redis. Every scope has its own
// version counter and keys embed it, so bumping the counter drops all cached
// summaries of the scope at once. A nil *SummaryCache is a valid no-op cache.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

func versionKey(scope domain.Scope) string {
	return strings.Join([]string{keyPrefix, "scope", scope.Key(), "version"}, ":")
}

func (c *SummaryCache) version(ctx context.Context, scope domain.Scope) (int64, error) {
	ver, err := c.client.Get(ctx, versionKey(scope)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return ver, err
}

// Key builds the versioned cache key of a summary read.
func (c *SummaryCache) Key(ctx context.Context, scope domain.Scope, parts ...string) (string, error) {
	base := strings.Join(append([]string{keyPrefix, "summary", scope.Key()}, parts...), ":")
	if c == nil || c.client == nil {
		return base, nil
	}
	ver, err := c.version(ctx, scope)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d", base, ver), nil
}

// Get loads key into dest and reports whether it was there.
func (c *SummaryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		zap.L().Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (c *SummaryCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the scope version.
func (c *SummaryCache) Invalidate(ctx context.Context, scope domain.Scope) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Incr(ctx, versionKey(scope)).Err()
}
