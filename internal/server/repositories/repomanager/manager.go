package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactdesk/internal/dbx"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/interactions"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/newcontacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/savedcontacts"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	NewContacts(db dbx.DBTX) newcontacts.Repository
	SavedContacts(db dbx.DBTX) savedcontacts.Repository
	Interactions(db dbx.DBTX) interactions.Repository
}
