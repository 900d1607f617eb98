package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/JustinWhittecar/mekcore/internal/config"
	"github.com/JustinWhittecar/mekcore/internal/db"
	"github.com/JustinWhittecar/mekcore/internal/handlers"
	"github.com/JustinWhittecar/mekcore/internal/logging"
	"github.com/JustinWhittecar/mekcore/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		// the logger is not configured yet
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return err
	}
	defer logger.Sync()

	shutdownTracing, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Error("Failed to set up tracing", zap.Error(err))
		return err
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("Tracing shutdown", zap.Error(err))
		}
	}()

	catalog, err := db.OpenCatalog(cfg.DBPath, true)
	if err != nil {
		logger.Error("Failed to open catalog", zap.String("path", cfg.DBPath), zap.Error(err))
		return err
	}
	defer catalog.Close()

	edb, err := catalog.LoadEquipment(ctx)
	if err != nil {
		logger.Error("Failed to load equipment", zap.Error(err))
		return err
	}
	logger.Info("Equipment loaded", zap.Int("items", len(edb.ByInternalName)))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	origins := handlers.DefaultOrigins
	if v := os.Getenv("MEKCORE_CORS_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(handlers.RouterConfig{
			Catalog:   catalog,
			Equipment: edb,
			Options:   cfg.Options,
			Logger:    logger,
			Registry:  reg,
			Origins:   origins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("mekcore server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		logger.Error("Server error", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
