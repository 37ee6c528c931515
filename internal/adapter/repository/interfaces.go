package repository

import (
	"context"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// SessionStore holds values that live only as long as a browser session.
// Get returns domain.ErrKeyNotFound when the key is absent.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

// SettingsRepository holds durable per-profile settings.
// Get returns domain.ErrKeyNotFound when the key is absent.
type SettingsRepository interface {
	Get(ctx context.Context, profileID, key string) (*entity.ProfileSetting, error)
	Upsert(ctx context.Context, setting *entity.ProfileSetting) error
	Delete(ctx context.Context, profileID, key string) error
}
