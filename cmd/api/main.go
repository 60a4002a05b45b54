package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/qrmenu/app"
	"github.com/joefazee/qrmenu/internal/logger"
)

// @title QR Menu API
// @version 1.0
// @description Trilingual restaurant menu: public menu, catalogue administration and image uploads.

// @contact.name API Support Team

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		logger.NewZeroLogger(os.Stderr, logger.LevelInfo, nil).Fatal(err, map[string]interface{}{"stage": "config"})
	}

	log := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "qrmenu-api",
		"env":     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := app.OpenBackends(ctx, cfg)
	if err != nil {
		log.Fatal(err, map[string]interface{}{"stage": "backends", "store": cfg.Store.Backend})
	}
	defer func() {
		if err := backends.Close(); err != nil {
			log.Error(err, map[string]interface{}{"stage": "shutdown"})
		}
	}()

	container, err := app.NewContainer(cfg, backends, log)
	if err != nil {
		log.Fatal(err, map[string]interface{}{"stage": "container"})
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := app.NewRouter(gin.Default(), cfg, container)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(err, map[string]interface{}{"stage": "shutdown"})
		}
	}()

	log.Info("starting QR menu API", map[string]interface{}{
		"addr":  cfg.Address(),
		"store": cfg.Store.Backend,
		"blobs": cfg.Blob.Backend,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err, map[string]interface{}{"stage": "serve"})
	}
	log.Info("server stopped", nil)
}
