package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"katalog/internal/domain/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool    *pgxpool.Pool
	Catalog catalog.Store
}

// NewContainer wires the repositories onto the pool. A non-positive
// queryTimeout keeps catalog.QueryTimeoutDuration.
func NewContainer(db *pgxpool.Pool, queryTimeout time.Duration) *Container {
	return &Container{
		pool:    db,
		Catalog: catalog.NewRepositoryWithTimeout(db, queryTimeout),
	}
}

// Ping reports whether the database answers within ctx.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return errors.New("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}
	if err := c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", catalog.ErrStoreUnavailable, err)
	}
	return nil
}

// Stats is published on /debug/vars.
func (c *Container) Stats() any {
	if c.pool == nil {
		return nil
	}
	s := c.pool.Stat()
	return map[string]any{
		"total_conns":    s.TotalConns(),
		"idle_conns":     s.IdleConns(),
		"acquired_conns": s.AcquiredConns(),
		"max_conns":      s.MaxConns(),
		"acquire_count":  s.AcquireCount(),
	}
}
