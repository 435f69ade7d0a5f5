// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the cache can read raw JSON:API pages from a bucket
// and archive merged updates next to them. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// ListKeys, ReadObject and WriteObject build on these for whole-object access.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	keys, err := storage.ListKeys(ctx, client, config.Bucket, "documents/contents/", ".json")
package storage
