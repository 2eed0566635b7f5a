package app

import (
	"context"
	"fmt"

	"jobdeck_gateway/internal/backend"
	"jobdeck_gateway/internal/cache"
	"jobdeck_gateway/internal/cart"
	"jobdeck_gateway/internal/config"
	"jobdeck_gateway/internal/handlers"
	"jobdeck_gateway/internal/logger"
	"jobdeck_gateway/internal/middleware"
	"jobdeck_gateway/internal/routes"
	"jobdeck_gateway/internal/services"
	"jobdeck_gateway/internal/session"
	"jobdeck_gateway/internal/state"
	"jobdeck_gateway/internal/validator"
	"jobdeck_gateway/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		// .env is optional; real deployments set variables directly.
		logger.Debug("no .env file loaded", "error", err)
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	store, err := state.Open(cfg.State.Path)
	if err != nil {
		logger.Fatal("failed to open profile state store", "path", cfg.State.Path, "error", err)
	}
	logger.Info("profile state store opened", "path", cfg.State.Path)

	ctx := context.Background()
	catalogCache, err := cache.NewCatalog(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB, cfg.CacheTTL())
	if err != nil {
		logger.Fatal("failed to connect to cache", "addr", cfg.Cache.Addr, "error", err)
	}
	if catalogCache != nil {
		logger.Info("catalogue cache connected", "addr", cfg.Cache.Addr)
	}

	client := backend.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout())

	stateWorker := workers.NewStateWorker(store, cfg.ProfileTTL())
	stateWorker.Start(ctx)

	ginRouter := SetupRouter(cfg, store, client, catalogCache)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address, "upstream", cfg.Upstream.BaseURL)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call it directly with
// their own store and upstream client.
func SetupRouter(cfg *config.Config, store *state.Store, client *backend.Client, catalogCache *cache.Catalog) *gin.Engine {
	serviceContainer := services.NewServiceContainer(client, catalogCache)

	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	sessions := session.NewManager(store)
	carts := cart.NewManager(store)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.SessionMiddleware(sessions, carts, cfg.Session.CookieName, cfg.Session.Secure))

	routes.RegisterRoutes(ginRouter, appHandlers, client)

	return ginRouter
}
