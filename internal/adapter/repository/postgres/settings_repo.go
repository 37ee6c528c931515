package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
)

type SettingsRepo struct {
	pool *pgxpool.Pool
}

func NewSettingsRepo(pool *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

func (r *SettingsRepo) Get(ctx context.Context, profileID, key string) (*entity.ProfileSetting, error) {
	query := `
		SELECT profile_id, key, value, updated_at
		FROM profile_settings
		WHERE profile_id = $1 AND key = $2
	`
	var setting entity.ProfileSetting
	err := r.pool.QueryRow(ctx, query, profileID, key).Scan(
		&setting.ProfileID, &setting.Key, &setting.Value, &setting.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("querying setting: %w", err)
	}
	return &setting, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, setting *entity.ProfileSetting) error {
	query := `
		INSERT INTO profile_settings (profile_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (profile_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query, setting.ProfileID, setting.Key, setting.Value, setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting setting: %w", err)
	}
	return nil
}

func (r *SettingsRepo) Delete(ctx context.Context, profileID, key string) error {
	query := `DELETE FROM profile_settings WHERE profile_id = $1 AND key = $2`
	if _, err := r.pool.Exec(ctx, query, profileID, key); err != nil {
		return fmt.Errorf("deleting setting: %w", err)
	}
	return nil
}
