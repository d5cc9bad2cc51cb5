package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2020, time.November, 3, 9, 12, 0, 0, time.UTC)

// newMockDB returns an sqlx handle backed by sqlmock. Expectations are
// verified when the test finishes.
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return sqlx.NewDb(db, "pgx"), mock
}

// newPgErrorCode builds the error pgx returns for a failed statement.
func newPgErrorCode(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: "error message", ConstraintName: "test_constraint"}
}
