package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/basketmanager/stats-api/internal/config"
	"github.com/basketmanager/stats-api/internal/database"
	"github.com/basketmanager/stats-api/internal/directory"
	_ "github.com/basketmanager/stats-api/internal/docs"
	"github.com/basketmanager/stats-api/internal/handlers"
	"github.com/basketmanager/stats-api/internal/logic"
	"github.com/basketmanager/stats-api/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pg, err := database.ConnectPostgres(ctx, cfg.PostgresURL, sugar)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := database.MigratePostgres(pg, sugar); err != nil {
		return err
	}

	checks := map[string]handlers.Check{
		"postgres": pg.Ping,
	}

	poolCfg := worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Logger:        logger,
	}

	if cfg.ClickHouseURL != "" {
		ch, err := database.ConnectClickHouse(ctx, cfg.ClickHouseURL, sugar)
		if err != nil {
			return err
		}
		defer ch.Close()
		if err := database.EnsureClickHouseSchema(ctx, ch); err != nil {
			return err
		}
		poolCfg.ClickHouse = ch
		checks["clickhouse"] = ch.Ping
	} else {
		sugar.Warn("CLICKHOUSE_URL not set, analytics export disabled")
	}

	if cfg.RedisURL != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL, sugar)
		if err != nil {
			return err
		}
		defer rdb.Close()
		poolCfg.Snapshots = worker.NewRedisSnapshotStore(rdb, cfg.BoxScoreTTL)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		sugar.Warn("REDIS_URL not set, live box scores disabled")
	}

	pool := worker.NewPool(poolCfg)
	pool.Start(ctx)
	defer pool.Stop()

	eventLog := logic.NewEventLog(logic.EventLogConfig{
		Sink:   pool,
		Logger: logger,
	})
	tracker := logic.NewTrackerService(directory.NewPostgresDirectory(pg), eventLog, logic.TrackerConfig{
		EnforceRoster: cfg.EnforceRoster,
		Logger:        logger,
	})

	h := handlers.New(handlers.Config{
		Tracker: tracker,
		Queue:   pool,
		Checks:  checks,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
