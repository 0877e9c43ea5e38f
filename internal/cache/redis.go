package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/princesinghgemini-dotcom/veto/internal/observability/logger"
)

// Redis is a Cache backed by a shared Redis instance. Keys are prefixed so
// the admin cache can coexist with the rate-limit strike counters.
type Redis struct {
	rdb    *redis.Client
	ctx    context.Context
	ttl    time.Duration
	prefix string
}

func NewRedis(rdb *redis.Client, ctx context.Context, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ctx: ctx, ttl: ttl, prefix: "admin:lists:"}
}

func (r *Redis) Get(key string) ([]byte, bool) {
	b, err := r.rdb.Get(r.ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.L().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(key string, value []byte) {
	if err := r.rdb.Set(r.ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		logger.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(key string) {
	if err := r.rdb.Del(r.ctx, r.prefix+key).Err(); err != nil {
		logger.L().Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
