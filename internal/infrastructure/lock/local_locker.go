package lock

import (
	"context"
	"fmt"
	"gestao_comercial/internal/usecase/interfaces"
	"sync"
	"time"
)

// LocalLocker is the single-process fallback used when Redis is not configured.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	wait  time.Duration
}

var _ interfaces.ILocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: map[string]chan struct{}{}, wait: retryInterval * maxRetries}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

// Obtain blocks until the key is free, ctx ends or the wait times out.
// ttl is not enforced in-process; the holder must release.
func (l *LocalLocker) Obtain(ctx context.Context, key string, _ time.Duration) (func(context.Context) error, error) {
	ch := l.slot(key)
	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("%s: %w", key, interfaces.ErrLockNotObtained)
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() { <-ch })
		return nil
	}, nil
}
