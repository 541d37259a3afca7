package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mgrunewald/giftvault/internal/api/middleware"
	"github.com/mgrunewald/giftvault/internal/services"
)

// RouterConfig holds the collaborators the router needs.
type RouterConfig struct {
	Facade         services.Facade
	Logger         *slog.Logger
	AllowedOrigins []string
	Production     bool
}

// NewRouter assembles the gin engine: middleware chain, health
// endpoints and the versioned API over the facade.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.DefaultLoggingMiddleware(cfg.Logger))
	router.Use(middleware.RecoveryMiddleware(cfg.Logger))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	NewHealthHandler().RegisterRoutes(router)

	responder := NewErrorResponder(cfg.Logger)
	v1 := router.Group("/api/v1")
	NewAuthHandler(cfg.Facade, responder).RegisterRoutes(v1)
	NewCardHandler(cfg.Facade, responder).RegisterRoutes(v1)
	NewMerchantHandler(cfg.Facade, responder).RegisterRoutes(v1)

	return router
}
