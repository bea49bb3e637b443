// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	data, err := blobstore.ReadAll(ctx, store, "points.txt")
//
// # Features
//
//   - Range reads for streaming and partial fetches
//   - Multipart uploads for large result files
//   - Custom endpoints for S3-compatible services
//   - Configurable prefix for multi-tenant isolation
package s3
