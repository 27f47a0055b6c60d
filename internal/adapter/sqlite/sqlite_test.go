package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"ansuads/internal/config/configs"
	"ansuads/internal/db"
)

// testDB opens a fresh in-memory database with the full schema applied.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(configs.SQLite{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(database))
	return database
}
