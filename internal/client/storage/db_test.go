package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('token', 'tok')`)
	require.NoError(t, err)

	var value []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = 'token'`).Scan(&value))
	require.Equal(t, []byte("tok"), value)
}

func TestOpen_IsIdempotentAcrossRestarts(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('token', 'tok')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-run migrations destructively.
	db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	var value []byte
	require.NoError(t, db2.QueryRow(`SELECT value FROM metadata WHERE key = 'token'`).Scan(&value))
	require.Equal(t, []byte("tok"), value)
}
