package integrity

import (
	"context"

	"bucket-manager/core/storage"
	"bucket-manager/feature/audit"
	"bucket-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil when the journal is disabled.
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		region: region,
		logger: logger,
		db:     db,
	}
}

// Bucket returns the bucket being checked.
func (s *Service) Bucket() string {
	return s.bucket
}

// CheckBucket reports whether the default bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the default bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	return checks.FixBucket(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckDatabase checks the journal database and its table.
func (s *Service) CheckDatabase(ctx context.Context) (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(ctx, s.db, audit.TableName)
}
