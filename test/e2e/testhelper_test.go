package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/memory"
	pgRepo "github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geolocation"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	apiBasePath    = "/api/v1"

	domesticIP = "14.161.1.1"
	foreignIP  = "85.214.1.1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Locating   *locating.Service
	BaseURL    string
	httpClient *http.Client
}

// stubDetector classifies the two fixed test addresses without a network call.
type stubDetector struct{}

func (stubDetector) Detect(_ context.Context, ip string) (*valueobject.Locale, error) {
	switch ip {
	case domesticIP:
		return &valueobject.Locale{Country: "Vietnam", CountryCode: "VN", IsDomestic: true}, nil
	case foreignIP:
		return &valueobject.Locale{Country: "Germany", CountryCode: "DE"}, nil
	}
	return nil, domain.ErrLocaleLookup
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	// Durable settings in postgres, session scope in memory
	mockSvc := mocklocation.NewService(
		memory.NewSessionStore(time.Hour, time.Minute),
		pgRepo.NewSettingsRepo(pool),
		nil,
	)

	cfg := locating.DefaultConfig()
	cfg.CurrentOptions.Timeout = 2 * time.Second
	cfg.WatchStartDelay = 0
	cfg.LocaleCheckDelay = 0

	locatingSvc := locating.NewService(locating.ServiceParams{
		Mock:    mockSvc,
		Hub:     geolocation.NewHub(),
		Locale:  stubDetector{},
		Config:  cfg,
		Logger:  logger,
		IdleTTL: time.Hour,
		Cleanup: time.Minute,
	})

	router := server.NewRouter(server.RouterConfig{
		MapHandler:      handler.NewMapHandler(locatingSvc),
		SettingsHandler: handler.NewSettingsHandler(locatingSvc),
		CatalogHandler:  handler.NewCatalogHandler(valueobject.ServiceRegion),
		Logger:          logger,
		Environment:     "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Locating:  locatingSvc,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Locating.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

// sessionHeaders identifies a browser session. X-Forwarded-For is honoured by
// gin for loopback peers, which lets tests pick the client locale.
func sessionHeaders(sessionID, profileID, clientIP string) map[string]string {
	return map[string]string{
		middleware.SessionHeader: sessionID,
		middleware.ProfileHeader: profileID,
		"X-Forwarded-For":        clientIP,
	}
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
