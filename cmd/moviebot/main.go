// Command moviebot runs the movie catalog bot backend: the ingestion,
// search, entitlement, and feedback core behind the chat transport, plus
// the keep-alive/admin HTTP server.
//
// @title       Movie Catalog Bot API
// @version     1.0
// @description Admin and search API for the movie catalog bot backend.
// @BasePath    /api/v1
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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-moviebot-backend/internal/bot"
	"github.com/tbourn/go-moviebot-backend/internal/config"
	httpapi "github.com/tbourn/go-moviebot-backend/internal/http"
	"github.com/tbourn/go-moviebot-backend/internal/observability"
	"github.com/tbourn/go-moviebot-backend/internal/repo"
	"github.com/tbourn/go-moviebot-backend/internal/services"
	"github.com/tbourn/go-moviebot-backend/internal/sysutil"

	_ "github.com/tbourn/go-moviebot-backend/docs"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Best-effort .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op unless enabled)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown failed")
		}
	}()

	// Storage
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin failed")
		}
	}

	// Core wiring: services ← repo/db, dispatcher ← services
	notifier := bot.LogNotifier{}
	entSvc := services.NewEntitlementService(db)
	searchSvc := services.NewSearchService(db, entSvc)
	searchSvc.ResultCap = cfg.ResultCap
	searchSvc.FreeResultCap = cfg.FreeResultCap

	disp := &bot.Dispatcher{
		DB:             db,
		Catalog:        &services.CatalogService{DB: db, ChannelID: cfg.ChannelID},
		Search:         searchSvc,
		Entitlements:   entSvc,
		Feedback:       services.NewFeedbackService(db, cfg.OperatorID, notifier),
		Notifier:       notifier,
		OperatorID:     cfg.OperatorID,
		PaymentAddress: cfg.PaymentAddress,
	}

	// HTTP surface (keep-alive, metrics, admin API)
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, disp, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
