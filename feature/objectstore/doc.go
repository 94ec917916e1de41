// Package objectstore is the storage facade over an S3-compatible object store.
//
// Every operation validates its precondition (bucket exists, object has content,
// expiry in range) before delegating to the injected storage.Client, so callers
// get a boolean or a classified error instead of a raw library failure.
//
// # Error policy
//
// Operations that answer yes/no (MakeBucket, RemoveBucket, UploadFile, UploadStream,
// RemoveObject, DownloadFile) return false with a nil error when a guard fails.
// Operations that return a stream, URL or metadata fail with ErrBucketNotFound,
// ErrObjectNotFound or ErrEmptyObject instead. Classify maps any returned error to
// a Kind, and StatusFor maps a Kind to an HTTP status.
//
// # HTTP Endpoints
//
//   - GET /buckets, GET /buckets/names
//   - GET /buckets/:bucket/exists, PUT /buckets/:bucket, DELETE /buckets/:bucket
//   - GET /buckets/:bucket/objects
//   - PUT, GET, DELETE /buckets/:bucket/objects/*key (GET supports ?offset=&length=&filename=)
//   - POST /buckets/:bucket/delete with {"keys": [...]}
//   - GET /buckets/:bucket/stat/*key, GET /buckets/:bucket/url/*key
//   - GET /buckets/:bucket/presign/get/*key?expires=SECONDS
//   - GET /buckets/:bucket/presign/put/*key?expires=N&unit=s|m|h|d
package objectstore
