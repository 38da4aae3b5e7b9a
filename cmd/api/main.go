package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/config"
	dbpkg "github.com/manicurestudiolite-bot/manicurestudiolite/internal/db"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/logger"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/metrics"
	"github.com/manicurestudiolite-bot/manicurestudiolite/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	appLog := logger.New(cfg)
	log.Logger = appLog

	// ======================================================
	// SENTRY
	// ======================================================
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			appLog.Error().Err(err).Msg("sentry init failed")
		}
	}

	// ======================================================
	// INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to start database")
	}

	rdb, err := dbpkg.NewRedis(context.Background(), cfg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect redis")
	}
	if rdb == nil {
		appLog.Info().Msg("REDIS_URL not set, using in-memory reminder ledger")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	bg, err := routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Redis:    rdb,
		Cfg:      cfg,
		Log:      appLog,
		Registry: registry,
		Metrics:  m,
	})
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to register routes")
	}

	if bg.Scheduler != nil {
		bg.Scheduler.Start()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// ======================================================
	// SHUTDOWN
	// ======================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("http shutdown")
	}

	// Ciclo de lembretes em andamento termina antes de fechar o audit,
	// senão os eventos de envio se perdem.
	if bg.Scheduler != nil {
		if err := bg.Scheduler.Stop(ctx); err != nil {
			appLog.Error().Err(err).Msg("scheduler stop")
		}
	}

	if err := bg.Dispatcher.Close(ctx); err != nil {
		appLog.Error().Err(err).Msg("audit drain")
	}

	sentry.Flush(2 * time.Second)

	if rdb != nil {
		_ = rdb.Close()
	}
	if err := dbpkg.Close(db); err != nil {
		appLog.Error().Err(err).Msg("database close")
	}

	appLog.Info().Msg("bye")
}
