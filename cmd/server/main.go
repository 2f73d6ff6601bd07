// @title                       Content Admin API
// @version                     1.0
// @description                 Role-gated admin backend of the AI content platform.
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

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/contentforge/admin-api/internal/api"
	"github.com/contentforge/admin-api/internal/api/handler"
	"github.com/contentforge/admin-api/internal/core/ports"
	"github.com/contentforge/admin-api/internal/core/service"
	"github.com/contentforge/admin-api/internal/infrastructure/db/memory"
	"github.com/contentforge/admin-api/internal/infrastructure/db/mongo"
	"github.com/contentforge/admin-api/internal/infrastructure/db/redis"
	"github.com/contentforge/admin-api/internal/infrastructure/queue"
	"github.com/contentforge/admin-api/internal/infrastructure/schema"
	"github.com/contentforge/admin-api/internal/infrastructure/seed"
	"github.com/contentforge/admin-api/internal/pkg/config"
	"github.com/contentforge/admin-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "content-admin-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	data, err := seed.Load(seed.Options{Password: cfg.Mock.Password})
	if err != nil {
		return err
	}

	store, cleanup, err := openStores(ctx, cfg, data, log)
	if err != nil {
		return err
	}
	defer cleanup()

	validator, err := schema.NewSettingsValidator()
	if err != nil {
		return err
	}

	// --- Activity pipeline ---
	activityService := service.NewActivityService(store.activity, logger.Component("activity"))
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activityService, logger.Component("dispatcher"))
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// --- Services ---
	authService := service.NewAuthService(store.users, store.sessions, dispatcher, service.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Latency:   cfg.Mock.Latency,
	}, logger.Component("auth"))

	services := api.Services{
		Auth:       authService,
		Navigation: service.NewNavigationService(),
		Users:      service.NewUserService(store.users, dispatcher, logger.Component("users")),
		Prompts:    service.NewPromptService(store.prompts, dispatcher, logger.Component("prompts")),
		Catalog:    service.NewCatalogService(store.products, store.keywords, store.blog, dispatcher, logger.Component("catalog")),
		Tasks:      service.NewTaskService(store.tasks),
		Overview:   service.NewOverviewService(store.users, store.tasks, store.blog, store.keywords),
		Settings:   service.NewSettingsService(store.settings, validator, dispatcher, logger.Component("settings")),
		Activity:   activityService,
	}

	e := api.NewRouter(services, store.checks, api.Metrics{
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	}, log)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("storage", cfg.Storage.Driver).
			Str("sessions", cfg.Storage.SessionDriver).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stopWorkers()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)

	stopWorkers()
	dispatcher.Wait()
	return err
}

// stores holds the repositories selected by the configured drivers.
type stores struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	settings ports.SettingsStore
	prompts  ports.PromptRepository
	activity ports.ActivityRepository
	products ports.ProductRepository
	keywords ports.KeywordRepository
	blog     ports.BlogRepository
	tasks    ports.TaskRepository
	checks   map[string]handler.Check
}

func openStores(ctx context.Context, cfg *config.Config, data *seed.Data, log zerolog.Logger) (*stores, func(), error) {
	s := &stores{
		users:    memory.NewUserRepository(data.Users),
		sessions: memory.NewSessionStore(),
		settings: memory.NewSettingsStore(),
		prompts:  memory.NewPromptRepository(data.Prompts),
		activity: memory.NewActivityRepository(0),
		products: memory.NewProductRepository(data.Products),
		keywords: memory.NewKeywordRepository(data.Keywords),
		blog:     memory.NewBlogRepository(data.BlogPosts),
		tasks:    memory.NewTaskRepository(data.Tasks),
		checks:   map[string]handler.Check{},
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Storage.Driver == config.DriverMongo {
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { disconnectMongo(client, log) })

		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		if err := mongo.SeedIfEmpty(ctx, db, data.Users, data.Prompts); err != nil {
			cleanup()
			return nil, func() {}, err
		}
		s.users = mongo.NewUserRepository(db)
		s.prompts = mongo.NewPromptRepository(db)
		s.activity = mongo.NewActivityRepository(db)
		s.checks["mongodb"] = handler.MongoCheck(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo storage enabled")
	}

	if cfg.Storage.SessionDriver == config.DriverRedis {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		closers = append(closers, func() { closeRedis(rdb, log) })

		s.sessions = redis.NewSessionStore(rdb)
		s.settings = redis.NewSettingsStore(rdb)
		s.checks["redis"] = func(ctx context.Context) error { return redis.Ping(ctx, rdb) }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis session store enabled")
	}

	return s, cleanup, nil
}

func disconnectMongo(client *gomongo.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("mongo disconnect failed")
	}
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close failed")
	}
}
