package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/relief-map-backend/internal/infrastructure/middleware"
)

const healthPath = "/health"

type Router struct {
	engine          *gin.Engine
	mapHandler      *handler.MapHandler
	settingsHandler *handler.SettingsHandler
	catalogHandler  *handler.CatalogHandler
	rateLimiter     *middleware.RateLimiter
	logger          *zap.Logger
}

type RouterConfig struct {
	MapHandler      *handler.MapHandler
	SettingsHandler *handler.SettingsHandler
	CatalogHandler  *handler.CatalogHandler
	// RateLimiter is optional; nil disables limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		mapHandler:      cfg.MapHandler,
		settingsHandler: cfg.SettingsHandler,
		catalogHandler:  cfg.CatalogHandler,
		rateLimiter:     cfg.RateLimiter,
		logger:          cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, healthPath))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET(healthPath, func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	sessioned := []gin.HandlerFunc{middleware.Session()}
	if r.rateLimiter != nil {
		sessioned = append(sessioned, r.rateLimiter.Limit())
	}
	{
		mapGroup := api.Group("/map", sessioned...)
		{
			mapGroup.POST("/session", r.mapHandler.Mount)
			mapGroup.DELETE("/session", r.mapHandler.Unmount)
			mapGroup.GET("/location", r.mapHandler.Location)
			mapGroup.POST("/positions", r.mapHandler.ReportPosition)
			mapGroup.POST("/mock-location/accept", r.mapHandler.AcceptMockLocation)
			mapGroup.POST("/mock-location/decline", r.mapHandler.DeclineMockLocation)
		}

		settings := api.Group("/settings", sessioned...)
		{
			settings.GET("/mock-location", r.settingsHandler.GetMockLocation)
			settings.PUT("/mock-location", r.settingsHandler.SetMockLocation)
		}

		catalog := api.Group("")
		if r.rateLimiter != nil {
			catalog.Use(r.rateLimiter.Limit())
		}
		{
			catalog.GET("/locations", r.catalogHandler.List)
			catalog.GET("/region/contains", r.catalogHandler.Contains)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
