package checks

import (
	"context"
	"fmt"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketReport is the result of a bucket check.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
	Status string `json:"status"` // "ok", "missing"
}

// CheckBucket reports whether the bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	report := &BucketReport{Bucket: bucket, Exists: exists, Status: "ok"}
	if !exists {
		report.Status = "missing"
	}
	return report, nil
}

// FixBucket creates the bucket.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
