package cache

import (
	"context"
	"fmt"
	"time"

	"medical-directory-admin/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// consumeScript deletes a key and returns 1 when it existed. Two concurrent
// refreshes with the same token cannot both succeed.
var consumeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		redis.call('DEL', KEYS[1])
		return 1
	end
	return 0
`)

const scanCount = 100

// TokenStore keeps sessions under "<kind>:<user id>:<token id>" keys.
type TokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTokenStore(client *redis.Client, log *logrus.Logger) service.SessionStore {
	return &TokenStore{client: client, log: log}
}

func tokenKey(kind service.TokenKind, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
}

func (s *TokenStore) Save(ctx context.Context, kind service.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *TokenStore) Exists(ctx context.Context, kind service.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TokenStore) Consume(ctx context.Context, kind service.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := consumeScript.Run(ctx, s.client, []string{tokenKey(kind, userID, tokenID)}).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *TokenStore) Revoke(ctx context.Context, kind service.TokenKind, tokenID string) error {
	return s.deleteMatching(ctx, fmt.Sprintf("%s:*:%s", kind, tokenID))
}

func (s *TokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for _, kind := range []service.TokenKind{service.AccessTokenKind, service.RefreshTokenKind} {
		if err := s.deleteMatching(ctx, fmt.Sprintf("%s:%s:*", kind, userID.String())); err != nil {
			return err
		}
	}
	return nil
}

func (s *TokenStore) deleteMatching(ctx context.Context, pattern string) error {
	iter := s.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Failed to scan token keys: %+v", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
