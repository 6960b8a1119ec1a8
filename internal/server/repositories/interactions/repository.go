package interactions

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Interaction) (*models.Interaction, error)
	CountByContact(ctx context.Context, contactKind string, contactID int64) (int64, error)
}
