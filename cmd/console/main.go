// Package main starts the community admin console.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/infrastructure/db/redis"
	"github.com/devhub/admin-console/internal/infrastructure/http/handlers"
	"github.com/devhub/admin-console/internal/pkg/config"
	"github.com/devhub/admin-console/internal/web"
	"github.com/devhub/admin-console/internal/web/state"
	"github.com/devhub/admin-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := map[string]handlers.Check{
		"backend": handlers.HTTPCheck(&http.Client{Timeout: cfg.Console.BackendTimeout}, cfg.Console.BackendURL+"/health"),
	}

	var store scs.Store
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close failed")
			}
		}()
		store = redis.NewSessionStore(rdb, cfg.Redis.KeyPrefix)
		checks["redis"] = handlers.RedisCheck(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	}

	sessions := web.NewSessionManager(web.SessionConfig{
		Lifetime:    cfg.Console.SessionLifetime,
		IdleTimeout: cfg.Console.IdleTimeout,
		Secure:      cfg.Console.CookieSecure,
		Store:       store,
	})

	registry := state.NewRegistry(sessions, client.Config{
		BaseURL: cfg.Console.BackendURL,
		Timeout: cfg.Console.BackendTimeout,
		Logger:  logger.For("client"),
	}, cfg.Console.IdleTimeout, logger.For("workspaces"))
	go registry.Run(ctx)

	e, err := web.NewRouter(web.Dependencies{
		Sessions: sessions,
		Registry: registry,
		Logger:   logger.For("http"),
		Checks:   checks,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Console.Port).
			Str("backend", cfg.Console.BackendURL).
			Msg("console listening")
		if err := e.Start(":" + cfg.Console.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
