package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesPreferencesTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "preferences", name)

	cols := map[string]bool{}
	rows, err := db.Query(`SELECT name FROM pragma_table_info('preferences')`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var c string
		require.NoError(t, rows.Scan(&c))
		cols[c] = true
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, map[string]bool{"key": true, "value": true, "updated_at": true}, cols)
}

func TestMigrate_UpgradesLegacyTable(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	_, err = raw.Exec(`CREATE TABLE preferences (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO preferences (key, value) VALUES ('portfolio:dark', 'true')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(raw))

	var value, updatedAt string
	err = raw.QueryRow(`SELECT value, updated_at FROM preferences WHERE key = 'portfolio:dark'`).Scan(&value, &updatedAt)
	require.NoError(t, err)
	assert.Equal(t, "true", value)
	assert.Equal(t, "", updatedAt)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
