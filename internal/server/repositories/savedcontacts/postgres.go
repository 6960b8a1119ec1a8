// Package savedcontacts stores promoted contacts (contatos_salvos). Rows are
// only created by the promotion workflow.
package savedcontacts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every saved contact, most recently saved first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.SavedContact, error) {
	query :=
		`SELECT id, nome, COALESCE(email, ''), COALESCE(telefone, ''), COALESCE(mensagem, ''),
		        observacoes, usuario_id, data_original, data_salvo
		 FROM contatos_salvos
		 ORDER BY data_salvo DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.SavedContact, 0)
	for rows.Next() {
		var (
			item   models.SavedContact
			notes  sql.NullString
			userID sql.NullInt64
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.Phone, &item.Message,
			&notes, &userID, &item.OriginalReceivedAt, &item.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		item.Notes = dbx.StringPtr(notes)
		item.UserID = dbx.Int64Ptr(userID)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Create inserts a saved contact and fills in its id and saved-at time.
func (r *PostgresRepository) Create(ctx context.Context, contact *models.SavedContact) (*models.SavedContact, error) {
	query :=
		`INSERT INTO contatos_salvos (nome, email, telefone, mensagem, data_original, usuario_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, data_salvo
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.Name, contact.Email, contact.Phone, contact.Message,
		contact.OriginalReceivedAt, dbx.NullInt64(contact.UserID),
	).Scan(&contact.ID, &contact.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return contact, nil
}

// Delete removes the row if present; a missing row is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contatos_salvos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
