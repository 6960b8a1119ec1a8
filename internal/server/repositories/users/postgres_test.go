package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const credentialsQuery = `(?s)^SELECT\s+id,\s*username,\s*COALESCE\(nome_completo,\s*''\)\s+FROM\s+usuarios\s+WHERE\s+username\s*=\s*\$1\s+AND\s+password\s*=\s*\$2\s*$`

func TestGetByCredentials_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "nome_completo"}).AddRow(int64(1), "admin", "Administrador")
	mock.ExpectQuery(credentialsQuery).WithArgs("admin", "s3cret").WillReturnRows(rows)

	got, err := repo.GetByCredentials(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("GetByCredentials error: %v", err)
	}
	if got.ID != 1 || got.UserName != "admin" || got.DisplayName != "Administrador" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByCredentials_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(credentialsQuery).WithArgs("admin", "wrong").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCredentials(context.Background(), "admin", "wrong")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetByCredentials_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(credentialsQuery).WithArgs("admin", "x").WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByCredentials(context.Background(), "admin", "x")
	if err == nil || !regexp.MustCompile(`db error: .*conn reset`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestTouchLastAccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+usuarios\s+SET\s+ultimo_acesso\s*=\s*CURRENT_TIMESTAMP\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchLastAccess(context.Background(), 7); err != nil {
		t.Fatalf("TouchLastAccess error: %v", err)
	}

	mock.ExpectExec(q).WithArgs(int64(7)).WillReturnError(errors.New("boom"))
	if err := repo.TouchLastAccess(context.Background(), 7); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+usuarios\s*\(username,\s*password,\s*nome_completo\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id\s*$`
	mock.ExpectQuery(q).WithArgs("op", "pw", "Operator").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	got, err := repo.Create(context.Background(), &models.User{UserName: "op", Password: "pw", DisplayName: "Operator"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected id %d", got.ID)
	}
}

func TestSetPassword(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+usuarios\s+SET\s+password\s*=\s*\$2\s+WHERE\s+username\s*=\s*\$1$`

	mock.ExpectExec(q).WithArgs("admin", "new").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.SetPassword(context.Background(), "admin", "new"); err != nil {
		t.Fatalf("SetPassword error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("ghost", "new").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.SetPassword(context.Background(), "ghost", "new"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}

	mock.ExpectExec(q).WithArgs("admin", "new").WillReturnResult(sqlmock.NewErrorResult(errors.New("nope")))
	if err := repo.SetPassword(context.Background(), "admin", "new"); err == nil {
		t.Fatal("expected rows affected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
