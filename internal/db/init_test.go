package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSQLite_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")

	conn, err := InitSQLite(path)
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"users", "categories", "transactions"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
			table,
		).Scan(&name)
		require.NoErrorf(t, err, "table %s should exist", table)
	}
}

func TestInitSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finance.db")

	conn, err := InitSQLite(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	// A second init against the same file is a no-op for the schema.
	conn, err = InitSQLite(path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO categories (name) VALUES ('Makanan')`)
	require.NoError(t, err)
}
