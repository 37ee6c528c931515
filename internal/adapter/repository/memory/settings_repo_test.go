package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
)

func TestSettingsRepo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepo()

	_, err := repo.Get(ctx, "p-1", "mockLocationEnabled")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, repo.Upsert(ctx, entity.NewProfileSetting("p-1", "mockLocationEnabled", "false")))
	require.NoError(t, repo.Upsert(ctx, entity.NewProfileSetting("p-1", "mockLocationEnabled", "true")))

	got, err := repo.Get(ctx, "p-1", "mockLocationEnabled")
	require.NoError(t, err)
	assert.Equal(t, "true", got.Value)

	got.Value = "mutated"
	again, err := repo.Get(ctx, "p-1", "mockLocationEnabled")
	require.NoError(t, err)
	assert.Equal(t, "true", again.Value)

	require.NoError(t, repo.Delete(ctx, "p-1", "mockLocationEnabled"))
	_, err = repo.Get(ctx, "p-1", "mockLocationEnabled")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
