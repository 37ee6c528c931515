package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
)

const keyPrefix = "session"

// SessionStore keeps every session key under one hash so the whole session
// expires together.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, sessionID)
}

func (s *SessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("reading session key: %w", err)
	}
	return value, nil
}

func (s *SessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	hashKey := sessionKey(sessionID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hashKey, key, value)
	pipe.Expire(ctx, hashKey, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing session key: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, sessionKey(sessionID), keys...).Err(); err != nil {
		return fmt.Errorf("deleting session keys: %w", err)
	}
	return nil
}
