// Package postgres provides PostgreSQL infrastructure components.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"imaut/internal/config"
)

// connectBackoff is the first wait between startup pings; it doubles per attempt.
const connectBackoff = 500 * time.Millisecond

// PoolConfig is the pool shape of one resource service.
type PoolConfig struct {
	DSN             string
	Service         string // reported as application_name in pg_stat_activity
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	ConnectAttempts int
}

// NewPoolConfig takes the DB_* settings of cfg for service.
func NewPoolConfig(cfg config.Config, service string) PoolConfig {
	attempts := cfg.DBConnectAttempts
	if attempts < 1 {
		attempts = 1
	}
	return PoolConfig{
		DSN:             cfg.DatabaseURL,
		Service:         service,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		ConnectAttempts: attempts,
	}
}

func (c PoolConfig) pgxConfig() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if c.MaxConns > 0 {
		pc.MaxConns = c.MaxConns
	}
	if c.MinConns > 0 {
		pc.MinConns = c.MinConns
	}
	if c.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = c.MaxConnLifetime
	}
	if c.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdleTime
	}
	if c.Service != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = c.Service
	}
	return pc, nil
}

// Pool is the connection pool behind TxManager.
type Pool struct {
	*pgxpool.Pool
}

// Close closes all connections in the pool.
func (p *Pool) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}

// NewPool opens the pool and pings until the database answers or
// ConnectAttempts is exhausted. The database container usually starts
// alongside the services.
func NewPool(ctx context.Context, cfg PoolConfig) (*Pool, error) {
	pc, err := cfg.pgxConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool.Ping, cfg.ConnectAttempts, connectBackoff); err != nil {
		pool.Close()
		return nil, err
	}
	return &Pool{Pool: pool}, nil
}

func pingWithRetry(ctx context.Context, ping func(context.Context) error, attempts int, backoff time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = ping(ctx); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("ping database after %d attempts: %w", attempts, err)
}

// PoolStats is the part of pgxpool.Stat exported as metrics.
type PoolStats struct {
	TotalConns    int32
	AcquiredConns int32
	IdleConns     int32
	MaxConns      int32
}

// Stats snapshots pool usage.
func (p *Pool) Stats() PoolStats {
	stat := p.Pool.Stat()
	return PoolStats{
		TotalConns:    stat.TotalConns(),
		AcquiredConns: stat.AcquiredConns(),
		IdleConns:     stat.IdleConns(),
		MaxConns:      stat.MaxConns(),
	}
}
