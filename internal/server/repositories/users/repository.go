package users

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

// Repository is the credential store.
type Repository interface {
	GetByCredentials(ctx context.Context, userName, password string) (*models.User, error)
	TouchLastAccess(ctx context.Context, id int64) error
	Create(ctx context.Context, user *models.User) (*models.User, error)
	SetPassword(ctx context.Context, userName, password string) error
}
