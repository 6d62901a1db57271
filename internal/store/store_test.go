package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Theworld7/VisiFind/internal/logger"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB (for tests).
func newDBFromSQL(db *sql.DB, spec DomainSpec) *DB {
	return &DB{
		DB:     db,
		spec:   spec,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// openTestDomain opens a real, migrated domain database in a temp dir.
func openTestDomain(t *testing.T, dir string, spec DomainSpec) *DB {
	t.Helper()
	db, err := OpenDomain(testContext(), dir, spec, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
