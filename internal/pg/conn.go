package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

// Pool bounds the connections migrate holds against Postgres.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	PingTimeout time.Duration
}

// DefaultPool suits a one-shot CLI run: few connections, a quick ping.
func DefaultPool() Pool {
	return Pool{
		MaxOpen:     10,
		MaxIdle:     5,
		MaxLifetime: 30 * time.Minute,
		PingTimeout: 5 * time.Second,
	}
}

func (p Pool) apply(db *sql.DB) {
	db.SetConnMaxLifetime(p.MaxLifetime)
	db.SetMaxOpenConns(p.MaxOpen)
	db.SetMaxIdleConns(p.MaxIdle)
}

// Open connects with DefaultPool.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	return DefaultPool().Open(ctx, url)
}

// Open connects through the pgx stdlib driver and fails unless the server
// answers a ping within PingTimeout.
func (p Pool) Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	p.apply(db)

	if p.PingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.PingTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
