package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		assert.ErrorIs(t, err, ErrDisabled)
		assert.Nil(t, db)
	})

	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Enabled:        true,
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "journal",
			TimeoutSeconds: 2,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Enabled: true, Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite", func(t *testing.T) {
		db, err := Connect(Config{
			Enabled: true,
			Driver:  DriverSQLite,
			Name:    filepath.Join(t.TempDir(), "journal.db"),
		})
		require.NoError(t, err)
		require.NotNil(t, db)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.NoError(t, sqlDB.Close())
	})
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close(nil))

	db, err := Connect(Config{
		Enabled: true,
		Driver:  DriverSQLite,
		Name:    filepath.Join(t.TempDir(), "journal.db"),
	})
	require.NoError(t, err)
	require.NoError(t, Close(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}
