// Package blobstore provides the storage abstraction behind dataset inputs
// and clustering outputs.
//
// BlobStore is the interface for reading and writing whole blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with mmap reads and atomic writes
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)  // Open for reading
//	    Put(ctx, name, data) error     // Atomic write
//	}
//
// Remote backends should implement Ranger so NewReader can stream a blob in a
// single request:
//
//	type Ranger interface {
//	    ReadRange(off, length int64) (io.ReadCloser, error)
//	}
package blobstore
