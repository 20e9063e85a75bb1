package lock

import (
	"context"
	"gestao_comercial/internal/usecase/interfaces"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var mu sync.Mutex
	inside, maxInside := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Obtain(ctx, "invoice:co:2026-01", time.Second)
			require.NoError(t, err)
			mu.Lock()
			inside++
			if inside > maxInside {
				maxInside = inside
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			_ = release(ctx)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInside)
}

func TestLocalLocker_TimesOut(t *testing.T) {
	l := NewLocalLocker()
	l.wait = 20 * time.Millisecond
	ctx := context.Background()

	release, err := l.Obtain(ctx, "k", time.Second)
	require.NoError(t, err)

	_, err = l.Obtain(ctx, "k", time.Second)
	assert.ErrorIs(t, err, interfaces.ErrLockNotObtained)

	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))

	other, err := l.Obtain(ctx, "k", time.Second)
	require.NoError(t, err)
	_ = other(ctx)
}
