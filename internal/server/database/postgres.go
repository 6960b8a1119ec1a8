// Package database opens the shared PostgreSQL connection pool.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open creates the pool with the configured bounds and pings it once. Any
// failure closes the pool and is returned; the caller should abort startup.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sqlOpen(DriverName, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}
