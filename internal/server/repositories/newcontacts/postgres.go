// Package newcontacts stores incoming contact submissions (contatos_novos).
package newcontacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

const columns = `id, nome, COALESCE(email, ''), COALESCE(telefone, ''), COALESCE(mensagem, ''), usuario_id, data_recebimento`

// PostgresRepository works over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*models.NewContact, error) {
	var (
		item   models.NewContact
		userID sql.NullInt64
	)
	if err := s.Scan(&item.ID, &item.Name, &item.Email, &item.Phone, &item.Message, &userID, &item.ReceivedAt); err != nil {
		return nil, err
	}
	item.UserID = dbx.Int64Ptr(userID)
	return &item, nil
}

// List returns every new contact, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.NewContact, error) {
	query := `SELECT ` + columns + ` FROM contatos_novos ORDER BY data_recebimento DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.NewContact, 0)
	for rows.Next() {
		item, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Create inserts the contact; id and received timestamp are assigned by the
// database and filled in on the returned value.
func (r *PostgresRepository) Create(ctx context.Context, contact *models.NewContact) (*models.NewContact, error) {
	query :=
		`INSERT INTO contatos_novos (nome, email, telefone, mensagem, usuario_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, data_recebimento
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.Name, contact.Email, contact.Phone, contact.Message, dbx.NullInt64(contact.UserID),
	).Scan(&contact.ID, &contact.ReceivedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return contact, nil
}

// GetForUpdate reads one row and locks it until the surrounding transaction
// ends. A concurrent caller blocks and then sees the row gone if the first
// transaction deleted it.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.NewContact, error) {
	query := `SELECT ` + columns + ` FROM contatos_novos WHERE id = $1 FOR UPDATE`

	item, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Delete removes the row if present; a missing row is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contatos_novos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
