package newcontacts

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.NewContact, error)
	Create(ctx context.Context, contact *models.NewContact) (*models.NewContact, error)
	GetForUpdate(ctx context.Context, id int64) (*models.NewContact, error)
	Delete(ctx context.Context, id int64) error
}
