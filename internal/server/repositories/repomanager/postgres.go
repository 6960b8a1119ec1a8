// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/migrations"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/interactions"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/newcontacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/savedcontacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories. The same
// manager serves the pool and open transactions alike.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) NewContacts(db dbx.DBTX) newcontacts.Repository {
	return newcontacts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) SavedContacts(db dbx.DBTX) savedcontacts.Repository {
	return savedcontacts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Interactions(db dbx.DBTX) interactions.Repository {
	return interactions.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
