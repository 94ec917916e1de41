package objectstore

import (
	"context"
	"errors"
	"net"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrBucketNotFound is returned when the target bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrObjectNotFound is returned when the target object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrEmptyObject is returned when a download targets a zero-byte object.
	ErrEmptyObject = errors.New("object is empty")
	// ErrExpiryOutOfRange is returned for presigned URL expiries outside 1s-7d.
	ErrExpiryOutOfRange = errors.New("expiry out of range")
	// ErrInvalidRange is returned for a negative offset or a non-positive length.
	ErrInvalidRange = errors.New("invalid byte range")
)

// Kind groups errors by what the caller can do about them.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindInvalidArgument
	KindAuth
	KindConnectivity
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindAuth:
		return "auth"
	case KindConnectivity:
		return "connectivity"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Classify maps an error returned by the Service to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrBucketNotFound), errors.Is(err, ErrObjectNotFound), errors.Is(err, ErrEmptyObject):
		return KindNotFound
	case errors.Is(err, ErrExpiryOutOfRange), errors.Is(err, ErrInvalidRange):
		return KindInvalidArgument
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindConnectivity
	}

	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "NoSuchBucket", "NoSuchKey", "NotFound":
			return KindNotFound
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return KindAuth
		case "InvalidBucketName", "XMinioInvalidObjectName", "InvalidArgument", "InvalidRange", "EntityTooLarge":
			return KindInvalidArgument
		case "BucketNotEmpty", "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
			return KindConflict
		}
		switch resp.StatusCode {
		case 401, 403:
			return KindAuth
		case 404:
			return KindNotFound
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnectivity
	}
	return KindInternal
}

// hasCode reports whether err carries one of the given S3 error codes.
func hasCode(err error, codes ...string) bool {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	for _, code := range codes {
		if resp.Code == code {
			return true
		}
	}
	return false
}

var errMissingKey = errors.New("missing object key")
