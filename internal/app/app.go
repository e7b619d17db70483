package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/prism-backend/internal/clients/redis"
	"github.com/yungbote/prism-backend/internal/config"
	"github.com/yungbote/prism-backend/internal/data/repos/assessment"
	"github.com/yungbote/prism-backend/internal/db"
	"github.com/yungbote/prism-backend/internal/http/handlers"
	"github.com/yungbote/prism-backend/internal/http/middleware"
	"github.com/yungbote/prism-backend/internal/observability"
	"github.com/yungbote/prism-backend/internal/platform/logger"
	"github.com/yungbote/prism-backend/internal/server"
	"github.com/yungbote/prism-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Cfg    *config.Config
	DB     *gorm.DB
	Router *gin.Engine

	cache        redis.ResultCache
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "prism",
		Environment: cfg.Env,
	})

	gdb, err := db.Open(cfg.Database, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Result cache is strictly optional: no addr, no cache.
	var cache redis.ResultCache
	if cfg.Cache.RedisAddr != "" {
		cache, err = redis.NewResultCache(log, cfg.Cache.RedisAddr, cfg.Cache.ResultTTL.Duration)
		if err != nil {
			log.Warn("result cache unavailable (continuing without)", "error", err)
			cache = nil
		}
	}

	sessionRepo := assessment.NewSessionRepo(gdb, log)
	resultRepo := assessment.NewResultRepo(gdb, log)

	tokenService := services.NewTokenService(log, cfg.Auth.JWTSecretKey, cfg.Auth.SessionTokenTTL.Duration)
	assessmentService := services.NewAssessmentService(gdb, log, sessionRepo, resultRepo, cache)

	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		Env:               cfg.Env,
		AssessmentHandler: handlers.NewAssessmentHandler(log, assessmentService, tokenService),
		CatalogHandler:    handlers.NewCatalogHandler(),
		SessionMiddleware: middleware.NewSessionMiddleware(log, tokenService),
	})

	return &App{
		Log:          log,
		Cfg:          cfg,
		DB:           gdb,
		Router:       router,
		cache:        cache,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is cancelled, then drains within the configured
// shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Cfg.HTTP.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: a.Cfg.HTTP.ReadHeaderTimeout.Duration,
		IdleTimeout:       a.Cfg.HTTP.IdleTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("server listening", "addr", a.Cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout.Duration)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.Log.Warn("closing result cache", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown", "error", err)
		}
	}
	a.Log.Sync()
}
