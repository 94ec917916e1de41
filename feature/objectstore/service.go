package objectstore

import (
	"context"
	"fmt"

	"bucket-manager/core/storage"

	"go.uber.org/zap"
)

// Operation names written to the journal.
const (
	OpMakeBucket    = "make_bucket"
	OpRemoveBucket  = "remove_bucket"
	OpUploadFile    = "upload_file"
	OpUploadStream  = "upload_stream"
	OpRemoveObject  = "remove_object"
	OpRemoveObjects = "remove_objects"
)

// Journal records mutating operations. Implementations must be safe for concurrent use.
type Journal interface {
	Record(ctx context.Context, op, bucket, object string, opErr error) error
}

// Service is the storage facade. Every operation checks its precondition against
// the remote store before delegating to the client.
type Service struct {
	client  storage.Client
	logger  *zap.Logger
	journal Journal
	buckets *keyedMutex
}

// NewService creates a new storage facade. journal may be nil.
func NewService(client storage.Client, logger *zap.Logger, journal Journal) *Service {
	return &Service{
		client:  client,
		logger:  logger,
		journal: journal,
		buckets: newKeyedMutex(),
	}
}

// requireBucket returns ErrBucketNotFound when the bucket is missing.
func (s *Service) requireBucket(ctx context.Context, bucket string) error {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	return nil
}

func (s *Service) record(ctx context.Context, op, bucket, object string, opErr error) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, op, bucket, object, opErr); err != nil {
		s.logger.Warn("Failed to record operation",
			zap.String("op", op),
			zap.String("bucket", bucket),
			zap.String("object", object),
			zap.Error(err))
	}
}
