package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkforge/linkforge-api/internal/api"
	"github.com/linkforge/linkforge-api/internal/core/service"
	"github.com/linkforge/linkforge-api/internal/infrastructure/queue"
	"github.com/linkforge/linkforge-api/internal/pkg/config"
	"github.com/linkforge/linkforge-api/pkg/logger"

	mongodb "github.com/linkforge/linkforge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/linkforge/linkforge-api/internal/infrastructure/db/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("service exited")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Get()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	if err := ensureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("failed to create indexes")
	}

	// Activity pipeline: services enqueue, sharded workers persist.
	activityRepo := mongodb.NewActivityRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	activityService := service.NewActivityService(activityRepo, dedup, logger.Component("activity"))
	dispatcher := queue.NewDispatcher(cfg.Workers, activityService, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// ensureIndexes creates the collection indexes each repository relies on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewPlanRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewTeamRepository(db).EnsureIndexes(ctx)
}
