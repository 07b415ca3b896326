package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tasklist-api/domain/ports"
)

const sessionKeyPrefix = "session:"

// SessionCache implements ports.SessionCachePort on top of Redis.
type SessionCache struct {
	client *Client
}

func NewSessionCache(client *Client) ports.SessionCachePort {
	return &SessionCache{client: client}
}

// GetUserID returns the cached owner of the session, or "" on a miss.
func (s *SessionCache) GetUserID(ctx context.Context, tokenID string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

func (s *SessionCache) SetUserID(ctx context.Context, tokenID, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, sessionKeyPrefix+tokenID, userID, ttl)
}

func (s *SessionCache) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+tokenID)
}
