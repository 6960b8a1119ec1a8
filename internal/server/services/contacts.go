package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/metrics"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
)

// NewContactInput is a submission for the new-contacts inbox.
type NewContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
	UserID  *int64
}

// ContactService manages the new and saved contact stores and the
// promotion between them.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ContactService {
	return &ContactService{db: db, repomanager: m, logger: logger.With("module", "contacts")}
}

// optionalUserID treats a zero id like an absent one.
func optionalUserID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func (s *ContactService) ListNew(ctx context.Context) ([]*models.NewContact, error) {
	items, err := s.repomanager.NewContacts(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list new contacts: %w: %w", common.ErrorInternal, err)
	}
	return items, nil
}

// AddNew stores a submission; a name is the only required field.
func (s *ContactService) AddNew(ctx context.Context, in NewContactInput) (*models.NewContact, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nome is required", common.ErrorValidation)
	}

	c := &models.NewContact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		UserID:  optionalUserID(in.UserID),
	}
	created, err := s.repomanager.NewContacts(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("add new contact: %w: %w", common.ErrorInternal, err)
	}
	return created, nil
}

// DeleteNew is idempotent.
func (s *ContactService) DeleteNew(ctx context.Context, id int64) error {
	if err := s.repomanager.NewContacts(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete new contact: %w: %w", common.ErrorInternal, err)
	}
	return nil
}

func (s *ContactService) ListSaved(ctx context.Context) ([]*models.SavedContact, error) {
	items, err := s.repomanager.SavedContacts(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved contacts: %w: %w", common.ErrorInternal, err)
	}
	return items, nil
}

// DeleteSaved is idempotent.
func (s *ContactService) DeleteSaved(ctx context.Context, id int64) error {
	if err := s.repomanager.SavedContacts(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete saved contact: %w: %w", common.ErrorInternal, err)
	}
	return nil
}

// Promote moves new contact id into the saved store and logs one "salvo"
// interaction for the saved row, all in one transaction. The source row is
// locked for the duration, so of two concurrent promotions of the same id
// one succeeds and the other gets common.ErrorNotFound.
func (s *ContactService) Promote(ctx context.Context, id int64, userID *int64) (*models.SavedContact, error) {
	userID = optionalUserID(userID)

	var saved *models.SavedContact
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		src, err := s.repomanager.NewContacts(tx).GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		saved, err = s.repomanager.SavedContacts(tx).Create(ctx, &models.SavedContact{
			Name:               src.Name,
			Email:              src.Email,
			Phone:              src.Phone,
			Message:            src.Message,
			UserID:             userID,
			OriginalReceivedAt: src.ReceivedAt,
		})
		if err != nil {
			return fmt.Errorf("insert saved contact: %w", err)
		}

		if err := s.repomanager.NewContacts(tx).Delete(ctx, id); err != nil {
			return fmt.Errorf("delete new contact: %w", err)
		}

		_, err = s.repomanager.Interactions(tx).Create(ctx, &models.Interaction{
			ContactID:   saved.ID,
			ContactKind: models.ContactKindSaved,
			Kind:        models.InteractionSaved,
			UserID:      userID,
		})
		if err != nil {
			return fmt.Errorf("insert interaction: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			metrics.PromotionsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
			return nil, common.ErrorNotFound
		}
		metrics.PromotionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Error(ctx, "promotion failed", "id", id, "error", err)
		return nil, fmt.Errorf("promote contact %d: %w: %w", id, common.ErrorInternal, err)
	}

	metrics.PromotionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	s.logger.Info(ctx, "contact promoted", "id", id, "saved_id", saved.ID)
	return saved, nil
}
