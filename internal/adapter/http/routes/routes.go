package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "taller_jaison/docs"
	"taller_jaison/internal/adapter/http/handlers"
	"taller_jaison/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Entry    *handlers.EntryHandler
	Catalog  *handlers.CatalogHandler
	Clients  *handlers.ClientHandler
	Orders   *handlers.OrderHandler
	Receipts *handlers.ReceiptHandler
}

func NewRouter(h Handlers, store Flusher, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.Entry.Entry)

	v1 := router.Group("/v1")
	v1.Use(flushAfterMutation(store, logger))
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addClientRoutes(v1, h.Clients)
	addOrderRoutes(v1, h.Orders, h.Receipts)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(recovery(logger))
}

// Run wires the application and serves until ctx is canceled, then shuts
// down the server, the background workers and flushes the collections.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	app.start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(app.handlers, app.registry, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("[http] shutdown requested")
	case err := <-serveErr:
		if err != nil {
			logger.Error("[http] server failed", zap.Error(err))
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
			defer cancel()
			return errors.Join(err, app.shutdown(shutdownCtx))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[http] graceful shutdown failed", zap.Error(err))
	}
	return app.shutdown(shutdownCtx)
}
