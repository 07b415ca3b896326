package ports

import (
	"context"
	"time"
)

// SessionCachePort caches token-id → user-id lookups so the auth middleware does
// not hit the sessions table on every request. The database stays the source of
// truth: a cache miss falls back to the store, a cache error is treated as a miss.
type SessionCachePort interface {
	GetUserID(ctx context.Context, tokenID string) (string, error)
	SetUserID(ctx context.Context, tokenID, userID string, ttl time.Duration) error
	Delete(ctx context.Context, tokenID string) error
}
