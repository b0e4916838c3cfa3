package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"portfolio-api/internal/database"
	"portfolio-api/internal/database/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) database.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunner_EmbeddedSQLiteIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	r := Runner{Dialect: database.DialectSQLite}
	ctx := context.Background()

	require.NoError(t, r.Run(ctx, db.SQLDB()))
	require.NoError(t, r.Run(ctx, db.SQLDB()))

	var n int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)

	_, err := db.Exec(ctx, `SELECT id, name, email, subject, message, submitted_at FROM contact_submissions`)
	assert.NoError(t, err)
}

func TestRunner_ChecksumMismatch(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	first := fstest.MapFS{"V1__t.sql": {Data: []byte("CREATE TABLE t (id INTEGER)")}}
	require.NoError(t, Runner{Dialect: database.DialectSQLite, FS: first}.Run(ctx, db.SQLDB()))

	edited := fstest.MapFS{"V1__t.sql": {Data: []byte("CREATE TABLE t (id TEXT)")}}
	err := Runner{Dialect: database.DialectSQLite, FS: edited}.Run(ctx, db.SQLDB())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestLoadMigrations(t *testing.T) {
	migs, err := loadMigrations(fstest.MapFS{
		"V2__second.sql": {Data: []byte("SELECT 2")},
		"V1__first.sql":  {Data: []byte("SELECT 1")},
		"README.md":      {Data: []byte("ignored")},
	})
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "second", migs[1].Name)

	_, err = loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1")},
		"V01__b.sql": {Data: []byte("SELECT 1")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")

	_, err = loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("  ")}})
	assert.ErrorContains(t, err, "empty migration file")
}
