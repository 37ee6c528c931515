package postgres_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/database"
)

// setupSettingsDB starts a throwaway Postgres and opens it through the same
// pool constructor the API uses, so migrations run exactly as in production.
func setupSettingsDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("relief_map_test"),
		postgres.WithUsername("relief"),
		postgres.WithPassword("relief"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "starting postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := database.NewPostgresPool(ctx, config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "relief",
		Password:        "relief",
		Name:            "relief_map_test",
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		MigrationsPath:  migrationsPath(),
	})
	require.NoError(t, err, "opening settings pool")
	t.Cleanup(pool.Close)

	return pool
}

func resetSettings(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "DELETE FROM profile_settings")
	require.NoError(t, err)
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}
