package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/memory"
	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/postgres"
	redisRepo "github.com/marcos-nsantos/relief-map-backend/internal/adapter/repository/redis"
	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geoip"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/geolocation"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/locating"
	"github.com/marcos-nsantos/relief-map-backend/internal/usecase/mocklocation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var redisClient *goredis.Client
	if cfg.Session.Backend == "redis" || cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			if cfg.Session.Backend == "redis" {
				logger.Fatal("failed to connect to redis", zap.Error(err))
			}
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	// Storage scopes
	var sessionStore repository.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		sessionStore = redisRepo.NewSessionStore(redisClient, cfg.Session.TTL)
	default:
		sessionStore = memory.NewSessionStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	}

	var settingsRepo repository.SettingsRepository
	switch cfg.Settings.Backend {
	case "postgres":
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		settingsRepo = postgres.NewSettingsRepo(pool)
	default:
		settingsRepo = memory.NewSettingsRepo()
	}

	// Infrastructure services
	hub := geolocation.NewHub()
	detector := geoip.NewCachedDetector(geoip.NewClient(geoip.ClientConfig{
		BaseURL:      cfg.Locale.BaseURL,
		DomesticCode: cfg.Locale.DomesticCode,
		Timeout:      cfg.Locale.Timeout,
	}), cfg.Locale.CacheTTL)

	// Use cases
	mockSvc := mocklocation.NewService(sessionStore, settingsRepo, mocklocation.NewGenerator(nil))
	locatingSvc := locating.NewService(locating.ServiceParams{
		Mock:    mockSvc,
		Hub:     hub,
		Locale:  detector,
		Config:  locatingConfig(cfg.Geolocation),
		Logger:  logger,
		IdleTTL: cfg.Session.IdleTimeout,
		Cleanup: cfg.Session.CleanupInterval,
	})
	defer locatingSvc.Close()

	// Handlers
	mapHandler := handler.NewMapHandler(locatingSvc)
	settingsHandler := handler.NewSettingsHandler(locatingSvc)
	catalogHandler := handler.NewCatalogHandler(valueobject.ServiceRegion)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		MapHandler:      mapHandler,
		SettingsHandler: settingsHandler,
		CatalogHandler:  catalogHandler,
		RateLimiter:     rateLimiter,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
		OnShutdown:   []func(){locatingSvc.Close},
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func locatingConfig(cfg config.GeolocationConfig) locating.Config {
	lc := locating.DefaultConfig()
	lc.CurrentOptions.Timeout = cfg.CurrentTimeout
	lc.CurrentOptions.MaximumAge = cfg.CurrentMaxAge
	lc.WatchOptions.Timeout = cfg.WatchTimeout
	lc.WatchOptions.MaximumAge = cfg.WatchMaxAge
	lc.WatchStartDelay = cfg.WatchStartDelay
	lc.LocaleCheckDelay = cfg.LocaleCheckDelay
	lc.MinDistance = cfg.MinDistance
	lc.MinInterval = cfg.MinInterval
	return lc
}
