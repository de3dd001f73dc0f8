package postgresql

import (
	"testing"

	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return database.New(mock), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "constraint violation"}
}

func strPtr(s string) *string { return &s }
