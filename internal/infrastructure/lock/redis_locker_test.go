package lock

import (
	"context"
	"gestao_comercial/internal/usecase/interfaces"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T, retries int) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLocker(rdb)
	l.backoff = 10 * time.Millisecond
	l.retries = retries
	return l, mr
}

func TestRedisLocker_ObtainAndRelease(t *testing.T) {
	l, mr := newTestRedisLocker(t, 0)
	ctx := context.Background()

	release, err := l.Obtain(ctx, "invoice:emp-1:2026-01", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:invoice:emp-1:2026-01"))

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists("lock:invoice:emp-1:2026-01"))

	release, err = l.Obtain(ctx, "invoice:emp-1:2026-01", time.Minute)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}

func TestRedisLocker_BusyKey(t *testing.T) {
	l, _ := newTestRedisLocker(t, 3)
	ctx := context.Background()

	release, err := l.Obtain(ctx, "costcenter:CC-IPE", time.Minute)
	require.NoError(t, err)
	defer release(ctx)

	_, err = l.Obtain(ctx, "costcenter:CC-IPE", time.Minute)
	require.ErrorIs(t, err, interfaces.ErrLockNotObtained)
	assert.Contains(t, err.Error(), "costcenter:CC-IPE")

	other, err := l.Obtain(ctx, "costcenter:CC-OUTRO", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other(ctx))
}

func TestRedisLocker_RetriesUntilReleased(t *testing.T) {
	l, _ := newTestRedisLocker(t, 50)
	ctx := context.Background()

	release, err := l.Obtain(ctx, "invoice:emp-1:2026-02", time.Minute)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = release(ctx)
	}()

	second, err := l.Obtain(ctx, "invoice:emp-1:2026-02", time.Minute)
	require.NoError(t, err)
	require.NoError(t, second(ctx))
}

func TestRedisLocker_ReleaseAfterExpiry(t *testing.T) {
	l, mr := newTestRedisLocker(t, 0)
	ctx := context.Background()

	release, err := l.Obtain(ctx, "invoice:emp-1:2026-03", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	assert.False(t, mr.Exists("lock:invoice:emp-1:2026-03"))
	assert.NoError(t, release(ctx))
}
