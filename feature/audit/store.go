package audit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	// DefaultLimit is the number of entries Recent returns when no limit is given.
	DefaultLimit = 50
	// MaxLimit caps the number of entries returned by Recent.
	MaxLimit = 500
)

// Store persists journal entries through gorm.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new journal store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the journal table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Record inserts one entry. A non-nil opErr marks the entry as failed.
func (s *Store) Record(ctx context.Context, op, bucket, object string, opErr error) error {
	entry := Entry{
		Operation: op,
		Bucket:    bucket,
		Object:    object,
		Success:   opErr == nil,
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record %s on %s: %w", op, bucket, err)
	}
	return nil
}

// Recent returns the newest entries first. limit is clamped to 1..MaxLimit,
// with DefaultLimit used for non-positive values.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	var entries []Entry
	if err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TableName, err)
	}
	return entries, nil
}
