package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/repomanager"
)

type InteractionInput struct {
	ContactID   int64
	ContactKind string
	Kind        string
	UserID      *int64
}

// InteractionService appends to the contact history. The referenced contact
// is not looked up.
type InteractionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewInteractionService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *InteractionService {
	return &InteractionService{db: db, repomanager: m, logger: logger.With("module", "interactions")}
}

func (s *InteractionService) Record(ctx context.Context, in InteractionInput) (*models.Interaction, error) {
	if in.ContactID <= 0 {
		return nil, fmt.Errorf("%w: contato_id must be positive", common.ErrorValidation)
	}
	if strings.TrimSpace(in.ContactKind) == "" || strings.TrimSpace(in.Kind) == "" {
		return nil, fmt.Errorf("%w: tipo_contato and tipo_interacao are required", common.ErrorValidation)
	}

	item, err := s.repomanager.Interactions(s.db).Create(ctx, &models.Interaction{
		ContactID:   in.ContactID,
		ContactKind: in.ContactKind,
		Kind:        in.Kind,
		UserID:      optionalUserID(in.UserID),
	})
	if err != nil {
		return nil, fmt.Errorf("record interaction: %w: %w", common.ErrorInternal, err)
	}
	s.logger.Debug(ctx, "interaction recorded", "id", item.ID, "contact_id", in.ContactID, "kind", in.Kind)
	return item, nil
}
