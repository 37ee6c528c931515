package memory

import (
	"context"
	"sync"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
)

type settingKey struct {
	profileID string
	key       string
}

type SettingsRepo struct {
	mu       sync.RWMutex
	settings map[settingKey]entity.ProfileSetting
}

func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{settings: make(map[settingKey]entity.ProfileSetting)}
}

func (r *SettingsRepo) Get(_ context.Context, profileID, key string) (*entity.ProfileSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	setting, ok := r.settings[settingKey{profileID, key}]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return &setting, nil
}

func (r *SettingsRepo) Upsert(_ context.Context, setting *entity.ProfileSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings[settingKey{setting.ProfileID, setting.Key}] = *setting
	return nil
}

func (r *SettingsRepo) Delete(_ context.Context, profileID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.settings, settingKey{profileID, key})
	return nil
}
