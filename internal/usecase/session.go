package usecase

import (
	"context"
	"errors"
	"fmt"
	"gestao_comercial/internal/domain/entities"
	"gestao_comercial/internal/usecase/interfaces"
	"time"
)

var ErrInvalidSession = errors.New("invalid session: missing company")

func checkSession(s entities.Session) error {
	if !s.Valid() {
		return ErrInvalidSession
	}
	return nil
}

// withLock runs fn holding key when a locker is configured.
func withLock(ctx context.Context, locker interfaces.ILocker, key string, ttl time.Duration, fn func() error) error {
	if locker == nil {
		return fn()
	}
	release, err := locker.Obtain(ctx, key, ttl)
	if err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}
	defer func() { _ = release(context.WithoutCancel(ctx)) }()
	return fn()
}
