package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/s3utils"
	"go.uber.org/zap"
)

// StreamPartSize is the multipart part size used for uploads of unknown length.
const StreamPartSize = 10 * 1024 * 1024

// ListObjects returns every object in the bucket, or nothing if the bucket is absent.
func (s *Service) ListObjects(ctx context.Context, bucket string) ([]minio.ObjectInfo, error) {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []minio.ObjectInfo{}, nil
	}

	objects := []minio.ObjectInfo{}
	for obj := range s.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, obj.Err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// ListObjectNames returns the keys of every object in the bucket.
func (s *Service) ListObjectNames(ctx context.Context, bucket string) ([]string, error) {
	objects, err := s.ListObjects(ctx, bucket)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.Key)
	}
	return names, nil
}

// UploadFile uploads a local file. It returns true only if the stored object is non-empty.
func (s *Service) UploadFile(ctx context.Context, bucket, object, filePath string) (bool, error) {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil || !exists {
		return false, err
	}

	_, err = s.client.FPutObject(ctx, bucket, object, filePath, minio.PutObjectOptions{})
	s.record(ctx, OpUploadFile, bucket, object, err)
	if err != nil {
		return false, fmt.Errorf("failed to upload %s to %s/%s: %w", filePath, bucket, object, err)
	}
	return s.stored(ctx, bucket, object)
}

// UploadStream uploads a stream of unknown length. It returns true only if the
// stored object is non-empty.
func (s *Service) UploadStream(ctx context.Context, bucket, object string, reader io.Reader, contentType string) (bool, error) {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil || !exists {
		return false, err
	}

	_, err = s.client.PutObject(ctx, bucket, object, reader, -1, minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    StreamPartSize,
	})
	s.record(ctx, OpUploadStream, bucket, object, err)
	if err != nil {
		return false, fmt.Errorf("failed to upload %s/%s: %w", bucket, object, err)
	}
	return s.stored(ctx, bucket, object)
}

// stored verifies an upload by checking the object has content.
func (s *Service) stored(ctx context.Context, bucket, object string) (bool, error) {
	info, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to verify upload of %s/%s: %w", bucket, object, err)
	}
	return info.Size > 0, nil
}

// Download opens a stream over a non-empty object. The caller must close it.
func (s *Service) Download(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	if _, err := s.requireContent(ctx, bucket, object); err != nil {
		return nil, err
	}

	reader, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}
	return reader, nil
}

// DownloadRange opens a stream over length bytes starting at offset.
// A nil length reads to the end of the object.
func (s *Service) DownloadRange(ctx context.Context, bucket, object string, offset int64, length *int64) (io.ReadCloser, error) {
	if offset < 0 || (length != nil && *length <= 0) {
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidRange, offset)
	}

	info, err := s.requireContent(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	if offset >= info.Size {
		return nil, fmt.Errorf("%w: offset %d beyond size %d", ErrInvalidRange, offset, info.Size)
	}

	opts := minio.GetObjectOptions{}
	switch {
	case length != nil:
		end := info.Size - 1
		if *length <= end-offset {
			end = offset + *length - 1
		}
		err = opts.SetRange(offset, end)
	case offset > 0:
		err = opts.SetRange(offset, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	reader, err := s.client.GetObject(ctx, bucket, object, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}
	return reader, nil
}

// DownloadFile writes a non-empty object to a local file.
// It returns false when the bucket or object is missing or the object is empty.
func (s *Service) DownloadFile(ctx context.Context, bucket, object, filePath string) (bool, error) {
	if _, err := s.requireContent(ctx, bucket, object); err != nil {
		if Classify(err) == KindNotFound {
			return false, nil
		}
		return false, err
	}

	if err := s.client.FGetObject(ctx, bucket, object, filePath, minio.GetObjectOptions{}); err != nil {
		return false, fmt.Errorf("failed to download %s/%s to %s: %w", bucket, object, filePath, err)
	}
	return true, nil
}

// RemoveObject deletes one object. It returns false if the bucket is missing.
func (s *Service) RemoveObject(ctx context.Context, bucket, object string) (bool, error) {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil || !exists {
		return false, err
	}

	err = s.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{})
	s.record(ctx, OpRemoveObject, bucket, object, err)
	if err != nil {
		return false, fmt.Errorf("failed to remove %s/%s: %w", bucket, object, err)
	}
	return true, nil
}

// RemoveObjects deletes several objects and returns the keys that could not be
// deleted. Keys that do not exist are reported as failures. An empty result means
// every key was deleted.
func (s *Service) RemoveObjects(ctx context.Context, bucket string, objects []string) ([]string, error) {
	exists, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return append([]string(nil), objects...), nil
	}

	failed := []string{}
	present := make([]string, 0, len(objects))
	for _, object := range objects {
		_, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
		switch {
		case err == nil:
			present = append(present, object)
		case hasCode(err, "NoSuchKey", "NotFound"):
			failed = append(failed, object)
		default:
			s.logger.Error("Failed to stat object before delete",
				zap.String("bucket", bucket), zap.String("object", object), zap.Error(err))
			failed = append(failed, object)
		}
	}
	if len(present) == 0 {
		return failed, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(present))
	for _, object := range present {
		objectsCh <- minio.ObjectInfo{Key: object}
	}
	close(objectsCh)

	rejected := make(map[string]error)
	for rErr := range s.client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		s.logger.Error("Failed to remove object",
			zap.String("bucket", bucket), zap.String("object", rErr.ObjectName), zap.Error(rErr.Err))
		rejected[rErr.ObjectName] = rErr.Err
	}

	for _, object := range present {
		rErr, ok := rejected[object]
		s.record(ctx, OpRemoveObjects, bucket, object, rErr)
		if ok {
			failed = append(failed, object)
		}
	}
	return failed, nil
}

// StatObject returns object metadata.
func (s *Service) StatObject(ctx context.Context, bucket, object string) (*minio.ObjectInfo, error) {
	if err := s.requireBucket(ctx, bucket); err != nil {
		return nil, err
	}

	info, err := s.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		if hasCode(err, "NoSuchKey", "NotFound") {
			return nil, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, object)
		}
		s.logger.Error("Failed to stat object",
			zap.String("bucket", bucket), zap.String("object", object), zap.Error(err))
		return nil, fmt.Errorf("failed to stat %s/%s: %w", bucket, object, err)
	}
	return &info, nil
}

// ObjectURL returns the direct, non-expiring URL of an object.
func (s *Service) ObjectURL(ctx context.Context, bucket, object string) (string, error) {
	if err := s.requireBucket(ctx, bucket); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(s.client.EndpointURL().String(), "/")
	return base + "/" + bucket + "/" + s3utils.EncodePath(object), nil
}

// requireContent checks the bucket and returns the metadata of a non-empty object.
func (s *Service) requireContent(ctx context.Context, bucket, object string) (*minio.ObjectInfo, error) {
	info, err := s.StatObject(ctx, bucket, object)
	if err != nil {
		return nil, err
	}
	if info.Size <= 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrEmptyObject, bucket, object)
	}
	return info, nil
}
