package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	err = Migrate(context.Background(), New(mock))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").
		WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), New(mock))
	assert.ErrorContains(t, err, "apply schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_DeclaresTables(t *testing.T) {
	for _, table := range []string{"accounts", "auth_sessions", "users", "attendance", "leave_requests", "laporan"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	assert.Contains(t, schema, "UNIQUE (user_id, date)")
}

func TestBeginTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	db := New(mock)
	tx, err := db.BeginTx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
