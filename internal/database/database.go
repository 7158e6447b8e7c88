// Package database manages the optional PostgreSQL connection pool probed by
// the database diagnostics.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JaimeStill/diagnostics-lab/internal/config"
	"github.com/JaimeStill/diagnostics-lab/internal/lifecycle"
)

// System exposes the pool and its health.
type System interface {
	Pool() *pgxpool.Pool
	Ping(ctx context.Context) error
	Stats() Stats
	Start(lc *lifecycle.Coordinator) error
}

// Stats is a serializable snapshot of pool statistics.
type Stats struct {
	TotalConns        int32         `json:"total_conns" yaml:"total_conns"`
	IdleConns         int32         `json:"idle_conns" yaml:"idle_conns"`
	AcquiredConns     int32         `json:"acquired_conns" yaml:"acquired_conns"`
	ConstructingConns int32         `json:"constructing_conns" yaml:"constructing_conns"`
	MaxConns          int32         `json:"max_conns" yaml:"max_conns"`
	AcquireCount      int64         `json:"acquire_count" yaml:"acquire_count"`
	AcquireDuration   time.Duration `json:"acquire_duration" yaml:"acquire_duration"`
	EmptyAcquireCount int64         `json:"empty_acquire_count" yaml:"empty_acquire_count"`
}

type database struct {
	pool        *pgxpool.Pool
	logger      *slog.Logger
	connTimeout time.Duration
}

// New parses the configuration and creates a lazily connecting pool.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetimeDuration()
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnTimeoutDuration()

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &database{
		pool:        pool,
		logger:      logger,
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping verifies connectivity within the configured connection timeout.
func (d *database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()
	return d.pool.Ping(ctx)
}

// Stats returns a snapshot of the pool statistics.
func (d *database) Stats() Stats {
	s := d.pool.Stat()
	return Stats{
		TotalConns:        s.TotalConns(),
		IdleConns:         s.IdleConns(),
		AcquiredConns:     s.AcquiredConns(),
		ConstructingConns: s.ConstructingConns(),
		MaxConns:          s.MaxConns(),
		AcquireCount:      s.AcquireCount(),
		AcquireDuration:   s.AcquireDuration(),
		EmptyAcquireCount: s.EmptyAcquireCount(),
	}
}

// Start pings the database during startup and closes the pool on shutdown.
// A failed ping is logged, not fatal: diagnostics report the outage instead.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := d.Ping(lc.Context()); err != nil {
			d.logger.Warn("database unreachable", "error", err)
			return
		}
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database pool")
		d.pool.Close()
	})

	return nil
}
