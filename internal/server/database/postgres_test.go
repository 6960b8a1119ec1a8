package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/contactdesk/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MaxOpenConns = 3
	return cfg
}

func stubOpen(t *testing.T, db *sql.DB, openErr error) *string {
	t.Helper()
	var gotDriver string
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		gotDriver = driver
		return db, openErr
	}
	t.Cleanup(func() { sqlOpen = orig })
	return &gotDriver
}

func TestOpen_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	driver := stubOpen(t, db, nil)

	got, err := Open(context.Background(), testConfig())
	require.NoError(t, err)
	defer got.Close()

	assert.Equal(t, "pgx", *driver)
	assert.Equal(t, 3, got.Stats().MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_PingFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	stubOpen(t, db, nil)

	_, err = Open(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_OpenFails(t *testing.T) {
	stubOpen(t, nil, errors.New("bad dsn"))

	_, err := Open(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open error")
}

func TestOpen_RespectsContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillDelayFor(time.Second)
	mock.ExpectClose()

	stubOpen(t, db, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = Open(ctx, testConfig())
	require.Error(t, err)
}
