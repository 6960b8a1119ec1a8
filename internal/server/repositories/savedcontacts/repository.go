package savedcontacts

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.SavedContact, error)
	Create(ctx context.Context, contact *models.SavedContact) (*models.SavedContact, error)
	Delete(ctx context.Context, id int64) error
}
