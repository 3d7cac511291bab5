package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func journalDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(Config{Path: filepath.Join(t.TempDir(), "journal.db")}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrator_RunMigrations(t *testing.T) {
	db := journalDB(t)
	m := NewMigrator(db, zap.NewNop())

	require.NoError(t, m.RunMigrations("../../migrations"))

	// The journal is usable once migrated.
	_, err := db.Exec(`
		INSERT INTO submissions (form_id, title, vertical, payload, submitted_at)
		VALUES ('quotation', 'Quotation', 'wholesale', '{}', CURRENT_TIMESTAMP)
	`)
	require.NoError(t, err)

	var version int
	var name string
	require.NoError(t, db.QueryRow("SELECT version, name FROM schema_migrations").Scan(&version, &name))
	assert.Equal(t, 1, version)
	assert.Equal(t, "create_submissions", name)

	t.Run("re-run is a no-op", func(t *testing.T) {
		require.NoError(t, m.RunMigrations("../../migrations"))

		var applied int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
		assert.Equal(t, 1, applied)
	})

	t.Run("missing directory errors", func(t *testing.T) {
		assert.Error(t, m.RunMigrations(filepath.Join(t.TempDir(), "absent")))
	})
}
