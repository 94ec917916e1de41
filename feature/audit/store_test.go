package audit

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_Record(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `audit_entries`").
			WithArgs(sqlmock.AnyArg(), "make_bucket", "assets", "", true, "").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := store.Record(context.Background(), "make_bucket", "assets", "", nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FailedOperation", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `audit_entries`").
			WithArgs(sqlmock.AnyArg(), "remove_object", "assets", "a.txt", false, "access denied").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := store.Record(context.Background(), "remove_object", "assets", "a.txt", errors.New("access denied"))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFails", func(t *testing.T) {
		db, mock := setupMockDB(t)
		store := NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `audit_entries`").WillReturnError(errors.New("table is read only"))
		mock.ExpectRollback()

		err := store.Record(context.Background(), "make_bucket", "assets", "", nil)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "created_at", "operation", "bucket", "object", "success", "error"}).
		AddRow(2, now, "remove_object", "assets", "a.txt", true, "").
		AddRow(1, now, "make_bucket", "assets", "", true, "")
	mock.ExpectQuery("SELECT (.+) FROM `audit_entries` ORDER BY id desc").WillReturnRows(rows)

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(2), entries[0].ID)
	assert.Equal(t, "make_bucket", entries[1].Operation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, "make_bucket", "assets", "", nil))
	require.NoError(t, store.Record(ctx, "upload_stream", "assets", "a.txt", nil))
	require.NoError(t, store.Record(ctx, "remove_object", "assets", "b.txt", errors.New("boom")))

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "remove_object", entries[0].Operation)
	assert.False(t, entries[0].Success)
	assert.Equal(t, "boom", entries[0].Error)
	assert.Equal(t, "upload_stream", entries[1].Operation)

	entries, err = store.Recent(ctx, MaxLimit+100)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
