// Package database opens the external stores: PostgreSQL for the directory,
// ClickHouse for the analytics export and Redis for live snapshots.
package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed clickhouse/*.sql
var clickhouseSchema embed.FS

const connectTimeout = 10 * time.Second

// ConnectPostgres opens a pgx pool and checks it with a ping.
func ConnectPostgres(ctx context.Context, url string, logger *zap.SugaredLogger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Infow("Connected to PostgreSQL", "maxConns", pool.Config().MaxConns)
	return pool, nil
}

// MigratePostgres applies the embedded directory migrations.
func MigratePostgres(pool *pgxpool.Pool, logger *zap.SugaredLogger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	logger.Info("Directory migrations completed")
	return nil
}

// ConnectClickHouse opens a ClickHouse connection from a DSN such as
// clickhouse://localhost:9000/basket_stats.
func ConnectClickHouse(ctx context.Context, dsn string, logger *zap.SugaredLogger) (driver.Conn, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open clickhouse: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	logger.Infow("Connected to ClickHouse", "addr", opts.Addr)
	return conn, nil
}

// EnsureClickHouseSchema runs the embedded DDL files in name order. Every
// statement is idempotent.
func EnsureClickHouseSchema(ctx context.Context, conn driver.Conn) error {
	stmts, err := clickhouseStatements()
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("clickhouse schema: %w", err)
		}
	}
	return nil
}

// clickhouseStatements splits the embedded DDL on semicolons.
func clickhouseStatements() ([]string, error) {
	names, err := fs.Glob(clickhouseSchema, "clickhouse/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var stmts []string
	for _, name := range names {
		data, err := clickhouseSchema.ReadFile(name)
		if err != nil {
			return nil, err
		}
		for _, stmt := range strings.Split(string(data), ";") {
			if stmt = strings.TrimSpace(stmt); stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
	}
	return stmts, nil
}

// ConnectRedis builds a client from a redis:// URL and pings it.
func ConnectRedis(ctx context.Context, url string, logger *zap.SugaredLogger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Infow("Connected to Redis", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}
