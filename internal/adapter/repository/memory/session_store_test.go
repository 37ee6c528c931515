package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ErrKeyNotFound for missing key", func(t *testing.T) {
		store := memory.NewSessionStore(time.Hour, time.Minute)
		_, err := store.Get(ctx, "s-1", "usingMockLocation")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("keeps sessions apart", func(t *testing.T) {
		store := memory.NewSessionStore(time.Hour, time.Minute)
		require.NoError(t, store.Set(ctx, "s-1", "usingMockLocation", "true"))

		value, err := store.Get(ctx, "s-1", "usingMockLocation")
		require.NoError(t, err)
		assert.Equal(t, "true", value)

		_, err = store.Get(ctx, "s-2", "usingMockLocation")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("deletes only the named keys", func(t *testing.T) {
		store := memory.NewSessionStore(time.Hour, time.Minute)
		require.NoError(t, store.Set(ctx, "s-1", "a", "1"))
		require.NoError(t, store.Set(ctx, "s-1", "b", "2"))
		require.NoError(t, store.Set(ctx, "s-1", "c", "3"))

		require.NoError(t, store.Delete(ctx, "s-1", "a", "b"))

		_, err := store.Get(ctx, "s-1", "a")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		value, err := store.Get(ctx, "s-1", "c")
		require.NoError(t, err)
		assert.Equal(t, "3", value)
	})

	t.Run("entries expire", func(t *testing.T) {
		store := memory.NewSessionStore(20*time.Millisecond, time.Minute)
		require.NoError(t, store.Set(ctx, "s-1", "a", "1"))

		time.Sleep(40 * time.Millisecond)
		_, err := store.Get(ctx, "s-1", "a")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("a write keeps every key of the session alive", func(t *testing.T) {
		store := memory.NewSessionStore(150*time.Millisecond, time.Minute)
		require.NoError(t, store.Set(ctx, "s-1", "map-location-prompt-shown", "true"))

		time.Sleep(100 * time.Millisecond)
		require.NoError(t, store.Set(ctx, "s-1", "usingMockLocation", "true"))

		time.Sleep(100 * time.Millisecond)
		value, err := store.Get(ctx, "s-1", "map-location-prompt-shown")
		require.NoError(t, err, "earlier keys share the session expiry")
		assert.Equal(t, "true", value)

		time.Sleep(200 * time.Millisecond)
		_, err = store.Get(ctx, "s-1", "map-location-prompt-shown")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
		_, err = store.Get(ctx, "s-1", "usingMockLocation")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}
