package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/shopstack/storefront-media/internal/adapter/handler"
	"github.com/shopstack/storefront-media/internal/infrastructure/middleware"
)

type Router struct {
	engine       *gin.Engine
	mediaHandler *handler.MediaHandler
	logger       *zap.Logger
}

type RouterConfig struct {
	MediaHandler *handler.MediaHandler
	Logger       *zap.Logger
	Environment  string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:       engine,
		mediaHandler: cfg.MediaHandler,
		logger:       cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		images := api.Group("/media/images")
		{
			images.POST("", r.mediaHandler.Upload)
			images.POST("/batch", r.mediaHandler.BatchUpload)
			images.DELETE("", r.mediaHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
