// Package interactions appends to the contact history log
// (historico_interacoes). Rows are never updated or deleted here.
package interactions

import (
	"context"
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

// Create appends one record. The referenced contact is not checked.
func (r *PostgresRepository) Create(ctx context.Context, item *models.Interaction) (*models.Interaction, error) {
	query :=
		`INSERT INTO historico_interacoes (contato_id, tipo_contato, tipo_interacao, usuario_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, data_interacao
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.ContactID, item.ContactKind, item.Kind, dbx.NullInt64(item.UserID),
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) CountByContact(ctx context.Context, contactKind string, contactID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM historico_interacoes WHERE tipo_contato = $1 AND contato_id = $2`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, contactKind, contactID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
