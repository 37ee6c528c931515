package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
)

// SessionStore is an in-process session scope. All keys of a session live
// in one cache entry, so they expire together ttl after the session's last
// write.
type SessionStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionStore(ttl, cleanupInterval time.Duration) *SessionStore {
	return &SessionStore{cache: cache.New(ttl, cleanupInterval)}
}

// bucket must be called with s.mu held.
func (s *SessionStore) bucket(sessionID string) (map[string]string, bool) {
	v, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	return v.(map[string]string), true
}

func (s *SessionStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.bucket(sessionID)
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	value, ok := values[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

// Set writes the key and pushes back the expiry of the whole session.
func (s *SessionStore) Set(_ context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.bucket(sessionID)
	if !ok {
		values = make(map[string]string)
	}
	values[key] = value
	s.cache.SetDefault(sessionID, values)
	return nil
}

func (s *SessionStore) Delete(_ context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, ok := s.bucket(sessionID)
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(values, key)
	}
	return nil
}
