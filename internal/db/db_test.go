package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/drawerfinder/internal/dbx"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "drawers.db")

	db, err := Open(ctx, dbx.DialectSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "items"} {
		var n int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s", table)
	}
}

func TestOpen_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "drawers.db")

	first, err := Open(ctx, dbx.DialectSQLite, dsn)
	require.NoError(t, err)
	_, err = first.ExecContext(ctx, `INSERT INTO items (item, drawer) VALUES ('Tape', 2)`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, dbx.DialectSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	var n int
	require.NoError(t, second.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), dbx.Dialect("oracle"), "x")
	require.Error(t, err)
}

func TestGooseDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", gooseDialect(dbx.DialectSQLite))
	assert.Equal(t, "postgres", gooseDialect(dbx.DialectPostgres))
}
