// Package services contains server-side business logic. This file implements
// AuthService, which checks operator credentials and provisions operators.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
)

// AuthService verifies operator credentials. Secrets are stored and compared
// verbatim.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, logger: logger.With("module", "auth")}
}

// Login returns the matching user and stamps its last access time.
// No match yields common.ErrorUnauthorized; storage faults yield
// common.ErrorInternal.
func (s *AuthService) Login(ctx context.Context, userName, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByCredentials(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "login rejected", "username", userName)
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "credential lookup failed", "error", err)
		return nil, fmt.Errorf("login: %w: %w", common.ErrorInternal, err)
	}

	if err := repo.TouchLastAccess(ctx, user.ID); err != nil {
		s.logger.Error(ctx, "last access update failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("login: %w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "login succeeded", "user_id", user.ID)
	return user, nil
}

// SetPassword replaces the secret of an existing operator.
func (s *AuthService) SetPassword(ctx context.Context, userName, password string) error {
	if strings.TrimSpace(userName) == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}
	if err := s.repomanager.Users(s.db).SetPassword(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("set password: %w: %w", common.ErrorInternal, err)
	}
	return nil
}

// AddOperator inserts a new credential row.
func (s *AuthService) AddOperator(ctx context.Context, userName, displayName, password string) (*models.User, error) {
	if strings.TrimSpace(userName) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}
	user := &models.User{UserName: userName, Password: password, DisplayName: displayName}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("add operator: %w: %w", common.ErrorInternal, err)
	}
	return u, nil
}
