// Package users provides the PostgreSQL-backed operator credential store.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByCredentials matches username and secret exactly. An unknown user and
// a wrong secret both yield common.ErrorNotFound.
func (r *PostgresRepository) GetByCredentials(ctx context.Context, userName, password string) (*models.User, error) {
	query :=
		`SELECT id, username, COALESCE(nome_completo, '') FROM usuarios
		 WHERE username = $1 AND password = $2
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName, password).Scan(&user.ID, &user.UserName, &user.DisplayName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) TouchLastAccess(ctx context.Context, id int64) error {
	query := `UPDATE usuarios SET ultimo_acesso = CURRENT_TIMESTAMP WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO usuarios (username, password, nome_completo)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, user.UserName, user.Password, user.DisplayName).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// SetPassword replaces the stored secret; common.ErrorNotFound when no such user.
func (r *PostgresRepository) SetPassword(ctx context.Context, userName, password string) error {
	query := `UPDATE usuarios SET password = $2 WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, userName, password)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
