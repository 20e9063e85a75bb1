package lock

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	appconfig "gestao_comercial/pkg/config"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryInterval = 100 * time.Millisecond
	maxRetries    = 50
)

// RedisLocker serialises work across replicas with redislock.
type RedisLocker struct {
	locker  *redislock.Client
	backoff time.Duration
	retries int
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

// ConnectRedis pings the server and returns a ready client.
func ConnectRedis(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}
	log.Info().Str("component", "lock").Str("addr", cfg.Address).Msg("connected to redis")
	return rdb, nil
}

func NewRedisLocker(rdb redis.UniversalClient) *RedisLocker {
	return &RedisLocker{locker: redislock.New(rdb), backoff: retryInterval, retries: maxRetries}
}

// Obtain retries for a few seconds before giving up with ErrLockNotObtained.
func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lk, err := l.locker.Obtain(ctx, "lock:"+key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.backoff), l.retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%s: %w", key, interfaces.ErrLockNotObtained)
	}
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		err := lk.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			// expired before release
			return nil
		}
		return err
	}, nil
}
