// Package storage builds the shared connection to the object store.
//
// It wraps the MinIO Go client behind the Client interface so that the rest of the
// service depends on an injected handle instead of a concrete *minio.Client. The
// same client works against AWS S3 and self-hosted MinIO instances.
//
// # Configuration
//
// Config carries the connection settings (endpoint, port, access key, secret key,
// TLS flag and the default bucket). Validate rejects a port outside 0-65535, a
// missing endpoint, and a key pair with only one half set. NewClient validates
// before building anything, so callers can treat its error as fatal at startup.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err != nil {
//	    logg.Fatal("Failed to create storage client", zap.Error(err))
//	}
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
