package objectstore

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketExists checks if a bucket exists.
func (s *Service) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	return exists, nil
}

// MakeBucket creates a bucket. It returns false if the bucket already existed.
func (s *Service) MakeBucket(ctx context.Context, bucket string) (bool, error) {
	unlock := s.buckets.Lock(bucket)
	defer unlock()

	exists, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	if err != nil {
		// Another process created it between our check and the call.
		if hasCode(err, "BucketAlreadyOwnedByYou") {
			return false, nil
		}
		s.record(ctx, OpMakeBucket, bucket, "", err)
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	s.record(ctx, OpMakeBucket, bucket, "", nil)
	s.logger.Info("Created bucket", zap.String("bucket", bucket))
	return true, nil
}

// ListBuckets returns every bucket visible to the configured credentials.
func (s *Service) ListBuckets(ctx context.Context) ([]minio.BucketInfo, error) {
	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}
	return buckets, nil
}

// ListBucketNames returns bucket names in the order the store lists them.
func (s *Service) ListBucketNames(ctx context.Context) ([]string, error) {
	buckets, err := s.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names, nil
}

// RemoveBucket deletes a bucket that holds no object with content.
// It returns false when the bucket is missing or still holds data.
func (s *Service) RemoveBucket(ctx context.Context, bucket string) (bool, error) {
	unlock := s.buckets.Lock(bucket)
	defer unlock()

	exists, err := s.BucketExists(ctx, bucket)
	if err != nil || !exists {
		return false, err
	}

	hasData, err := s.hasContent(ctx, bucket)
	if err != nil {
		return false, err
	}
	if hasData {
		s.logger.Debug("Refusing to remove non-empty bucket", zap.String("bucket", bucket))
		return false, nil
	}

	if err := s.client.RemoveBucket(ctx, bucket); err != nil {
		s.record(ctx, OpRemoveBucket, bucket, "", err)
		return false, fmt.Errorf("failed to remove bucket %s: %w", bucket, err)
	}
	s.record(ctx, OpRemoveBucket, bucket, "", nil)

	exists, err = s.BucketExists(ctx, bucket)
	if err != nil {
		return false, err
	}
	if !exists {
		s.logger.Info("Removed bucket", zap.String("bucket", bucket))
	}
	return !exists, nil
}

// hasContent reports whether any object in the bucket has a non-zero size.
func (s *Service) hasContent(ctx context.Context, bucket string) (bool, error) {
	// Cancel the listing when we stop reading early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		if obj.Size > 0 {
			return true, nil
		}
	}
	return false, nil
}
