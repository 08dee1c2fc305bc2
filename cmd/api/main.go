package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/availability"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/config"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/loader"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/logging"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/query"
	"github.com/aidan-labs/UST-Dining-Hall-Menus/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	config.LoadEnv()

	path := os.Getenv("DINING_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	// ───────────────────────── LOGGER ─────────────────────────
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Logger init failed: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── STORAGE ─────────────────────────
	store, err := cfg.OpenStore(ctx)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	// ───────────────────────── MENUS ─────────────────────────
	menus := loader.New(store, cfg.Documents(), logger)
	if _, err := menus.Load(ctx); err != nil {
		// keep serving; /menus answers 503 until a reload succeeds
		logger.Warn("initial menu load failed", zap.Error(err))
	}

	go menus.RunRefresher(ctx, cfg.Menus.Refresh)

	if cfg.Menus.Watch {
		go func() {
			if err := menus.WatchDir(ctx, cfg.Menus.Dir, 0); err != nil {
				logger.Error("menu watcher failed", zap.Error(err))
			}
		}()
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	r := router.NewRouter(logger, cfg.CORSOrigins, router.Handlers{
		Availability: availability.NewHandler(),
		Menus:        query.NewHandler(menus, query.NewCache()),
		Loader:       loader.NewHandler(menus),
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("api running", zap.String("addr", srv.Addr), zap.String("source", cfg.Menus.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
