package interfaces

import (
	"context"
	"time"
)

// ILocker serialises critical sections across api replicas.
// Obtain returns ErrLockNotObtained when the key stays busy.
type ILocker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
