package objectstore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	// MaxExpiry is the longest lifetime S3 accepts for a presigned URL.
	MaxExpiry = 7 * 24 * time.Hour
	// MaxExpirySeconds is MaxExpiry in seconds, kept untyped.
	MaxExpirySeconds = 7 * 24 * 60 * 60
	// DefaultExpirySeconds is used by callers that do not choose an expiry.
	DefaultExpirySeconds = MaxExpirySeconds
)

// PresignedGetURL returns a download URL valid for expirySeconds (1 to 604800).
// The expiry is validated before the store is contacted.
func (s *Service) PresignedGetURL(ctx context.Context, bucket, object string, expirySeconds int) (string, error) {
	if expirySeconds < 1 || expirySeconds > MaxExpirySeconds {
		return "", fmt.Errorf("%w: %ds must be in range of 1 to %d", ErrExpiryOutOfRange, expirySeconds, MaxExpirySeconds)
	}
	if err := s.requireBucket(ctx, bucket); err != nil {
		return "", err
	}

	u, err := s.client.PresignedGetObject(ctx, bucket, object, time.Duration(expirySeconds)*time.Second, nil)
	if err != nil {
		s.logger.Error("Failed to presign GET URL",
			zap.String("bucket", bucket), zap.String("object", object), zap.Error(err))
		return "", fmt.Errorf("failed to presign GET for %s/%s: %w", bucket, object, err)
	}
	return u.String(), nil
}

// PresignedPutURL returns an upload URL valid for expiry units of unit,
// e.g. (2, time.Hour). The total must fall between one second and seven days.
func (s *Service) PresignedPutURL(ctx context.Context, bucket, object string, expiry int, unit time.Duration) (string, error) {
	d, err := expiryDuration(expiry, unit)
	if err != nil {
		return "", err
	}
	if err := s.requireBucket(ctx, bucket); err != nil {
		return "", err
	}

	u, err := s.client.PresignedPutObject(ctx, bucket, object, d)
	if err != nil {
		s.logger.Error("Failed to presign PUT URL",
			zap.String("bucket", bucket), zap.String("object", object), zap.Error(err))
		return "", fmt.Errorf("failed to presign PUT for %s/%s: %w", bucket, object, err)
	}
	return u.String(), nil
}

// expiryDuration multiplies without overflowing and checks the presign bounds.
func expiryDuration(expiry int, unit time.Duration) (time.Duration, error) {
	if expiry < 1 || unit <= 0 || int64(expiry) > int64(MaxExpiry/unit) {
		return 0, fmt.Errorf("%w: %d x %s is outside 1s to %s", ErrExpiryOutOfRange, expiry, unit, MaxExpiry)
	}
	d := time.Duration(expiry) * unit
	if d < time.Second {
		return 0, fmt.Errorf("%w: %s is shorter than 1s", ErrExpiryOutOfRange, d)
	}
	return d, nil
}
