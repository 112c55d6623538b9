// Package databasetest provides an in-memory SQLite database with the schema applied.
package databasetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cardledger/internal/database"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

// New returns a fresh database that is closed when the test ends.
func New(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.New(database.DriverSQLite, memoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(context.Background(), db, database.DriverSQLite))

	return db
}
