// Package main starts the mock community backend consumed by the admin
// console.
//
// @title                       Community Admin mock API
// @version                     1.0
// @description                 Mock backend for the community admin console. Every response uses the {success, data, message} envelope.
// @host                        localhost:8082
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/devhub/admin-console/internal/api"
	"github.com/devhub/admin-console/internal/api/metrics"
	"github.com/devhub/admin-console/internal/core/ports"
	"github.com/devhub/admin-console/internal/core/service"
	"github.com/devhub/admin-console/internal/infrastructure/db/memory"
	"github.com/devhub/admin-console/internal/infrastructure/db/mongo"
	"github.com/devhub/admin-console/internal/infrastructure/http/handlers"
	"github.com/devhub/admin-console/internal/infrastructure/queue"
	"github.com/devhub/admin-console/internal/pkg/config"
	"github.com/devhub/admin-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	admins     ports.AdminRepository
	categories ports.CategoryRepository
	posts      ports.PostRepository
	accounts   ports.AccountRepository
	audit      ports.AuditRepository
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "mockapi",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("mock backend stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	repos, checks, cleanup, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	auditService := service.NewAuditService(repos.audit, logger.For("audit"))
	dispatcher := queue.NewDispatcher(cfg.MockAPI.AuditWorkers, auditService, metrics.AuditObserver{}, logger.For("dispatcher"))
	// Workers outlive the signal so Close can drain pending entries.
	dispatcher.Start(context.WithoutCancel(ctx))
	defer dispatcher.Close()

	authService := service.NewAuthService(repos.admins, cfg.MockAPI.JWTSecret, cfg.MockAPI.TokenTTL)
	if err := authService.EnsureAdmin(ctx, cfg.MockAPI.AdminUsername, cfg.MockAPI.AdminPassword); err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Auth:       authService,
		Categories: service.NewCategoryService(repos.categories, dispatcher, logger.For("categories")),
		Posts:      service.NewPostService(repos.posts, dispatcher, logger.For("posts")),
		Accounts:   service.NewAccountService(repos.accounts, dispatcher, logger.For("accounts")),
		Audit:      auditService,
		JWTSecret:  cfg.MockAPI.JWTSecret,
		Latency:    cfg.MockAPI.Latency,
		Logger:     logger.For("http"),
		Checks:     checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.MockAPI.Port).
			Str("storage", cfg.MockAPI.Storage).
			Dur("latency", cfg.MockAPI.Latency).
			Msg("mock backend listening")
		if err := e.Start(":" + cfg.MockAPI.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// openStorage returns the repositories selected by STORAGE together with the
// readiness checks they need.
func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, map[string]handlers.Check, func(), error) {
	if cfg.MockAPI.Storage != config.StorageMongo {
		r := memory.NewSeeded()
		return repositories{
			admins:     r.Admins,
			categories: r.Categories,
			posts:      r.Posts,
			accounts:   r.Accounts,
			audit:      r.Audit,
		}, nil, func() {}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return repositories{}, nil, nil, err
	}
	cleanup := func() { disconnect(client, log) }

	r := mongo.NewRepositories(db)
	if err := r.EnsureIndexes(ctx); err != nil {
		cleanup()
		return repositories{}, nil, nil, err
	}
	if err := mongo.Seed(ctx, db); err != nil {
		cleanup()
		return repositories{}, nil, nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo storage ready")

	return repositories{
		admins:     r.Admins,
		categories: r.Categories,
		posts:      r.Posts,
		accounts:   r.Accounts,
		audit:      r.Audit,
	}, map[string]handlers.Check{"mongo": handlers.MongoCheck(db)}, cleanup, nil
}

func disconnect(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect failed")
	}
}
